package utils

import "time"

const fhirInstantLayout = "2006-01-02T15:04:05Z"

// FormatFhirInstant renders t as a second-precision UTC FHIR instant
// (YYYY-MM-DDTHH:MM:SSZ).
func FormatFhirInstant(t time.Time) string {
	return t.UTC().Format(fhirInstantLayout)
}
