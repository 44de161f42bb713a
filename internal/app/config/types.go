package config

type (
	InternalConfig struct {
		App    App
		FHIR   FHIR
		Logger Logger
	}
	App struct {
		Env                   string
		PatientID             string
		MaxPayloadSizeInBytes int
	}
	FHIR struct {
		BaseUrl string
	}
	Logger struct {
		Level string
	}
)
