package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("thermopost", pflag.ContinueOnError)
	flags.String("fhir-base-url", "", "")
	flags.String("patient-id", "", "")
	return flags
}

func TestNormalizeArgs(t *testing.T) {
	t.Run("negative temperature survives flag parsing", func(t *testing.T) {
		flags := newTestFlagSet()

		err := flags.Parse(NormalizeArgs([]string{"-5"}))

		assert.NoError(t, err)
		assert.Equal(t, []string{"-5"}, flags.Args())
	})

	t.Run("negative decimal after flags survives too", func(t *testing.T) {
		flags := newTestFlagSet()

		err := flags.Parse(NormalizeArgs([]string{"--patient-id", "12345", "-.5"}))

		assert.NoError(t, err)
		value, flagErr := flags.GetString("patient-id")
		assert.NoError(t, flagErr)
		assert.Equal(t, "12345", value)
		assert.Equal(t, []string{"-.5"}, flags.Args())
	})

	t.Run("flags and positive temperatures pass through unchanged", func(t *testing.T) {
		for _, args := range [][]string{
			nil,
			{"36.6"},
			{"+5"},
			{"--fhir-base-url", "http://localhost:8080/fhir", "36.6"},
		} {
			assert.Equal(t, args, NormalizeArgs(args))
		}
	})

	t.Run("real flags are still parsed as flags", func(t *testing.T) {
		flags := newTestFlagSet()

		err := flags.Parse(NormalizeArgs([]string{"--fhir-base-url", "http://localhost:8080/fhir"}))

		assert.NoError(t, err)
		value, flagErr := flags.GetString("fhir-base-url")
		assert.NoError(t, flagErr)
		assert.Equal(t, "http://localhost:8080/fhir", value)
		assert.Empty(t, flags.Args())
	})
}
