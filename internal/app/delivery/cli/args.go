package cli

// NormalizeArgs protects numeric arguments that start with a minus
// sign (a negative temperature like "-5") from being consumed as
// shorthand flags: flag parsing is terminated with "--" right before
// the first such argument.
func NormalizeArgs(args []string) []string {
	for i, arg := range args {
		if looksLikeNegativeNumber(arg) {
			normalized := make([]string, 0, len(args)+1)
			normalized = append(normalized, args[:i]...)
			normalized = append(normalized, "--")
			normalized = append(normalized, args[i:]...)
			return normalized
		}
	}
	return args
}

func looksLikeNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	next := s[1]
	return next == '.' || (next >= '0' && next <= '9')
}
