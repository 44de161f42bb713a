package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	internalConfig := NewInternalConfig()

	assert.Equal(t, "https://hapi.fhir.org/baseR4", internalConfig.FHIR.BaseUrl)
	assert.Equal(t, "49410276", internalConfig.App.PatientID)
	assert.Equal(t, 2048, internalConfig.App.MaxPayloadSizeInBytes)
	assert.Equal(t, "info", internalConfig.Logger.Level)
}

func TestNewInternalConfigEnvOverrides(t *testing.T) {
	t.Setenv("FHIR_BASE_URL", "http://localhost:8080/fhir")
	t.Setenv("APP_PATIENT_ID", "12345")
	t.Setenv("APP_MAX_PAYLOAD_SIZE_IN_BYTES", "4096")

	internalConfig := NewInternalConfig()

	assert.Equal(t, "http://localhost:8080/fhir", internalConfig.FHIR.BaseUrl)
	assert.Equal(t, "12345", internalConfig.App.PatientID)
	assert.Equal(t, 4096, internalConfig.App.MaxPayloadSizeInBytes)
}

func TestNewInternalConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("APP_MAX_PAYLOAD_SIZE_IN_BYTES", "not-a-number")

	internalConfig := NewInternalConfig()

	assert.Equal(t, 2048, internalConfig.App.MaxPayloadSizeInBytes)
}
