package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFhirInstant(t *testing.T) {
	instant := time.Date(2024, time.March, 5, 14, 30, 9, 123456789, time.FixedZone("UTC+7", 7*3600))

	formatted := FormatFhirInstant(instant)

	assert.Equal(t, "2024-03-05T07:30:09Z", formatted, "should convert to UTC and drop sub-second precision")
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`), formatted)
}
