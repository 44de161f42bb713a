package constvars

const (
	UserAgent = "thermopost/1.0"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)
