package config

import (
	"thermopost/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

// NewInternalConfig builds the runtime configuration from the
// environment. The defaults reproduce the uploader's original
// hardcoded values, so with no environment set the behavior is
// unchanged.
func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", "development"),
			PatientID:             utils.GetEnvString("APP_PATIENT_ID", "49410276"),
			MaxPayloadSizeInBytes: utils.GetEnvInt("APP_MAX_PAYLOAD_SIZE_IN_BYTES", 2048),
		},
		FHIR: FHIR{
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "https://hapi.fhir.org/baseR4"),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "info"),
		},
	}
}
