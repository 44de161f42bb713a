package constvars

const (
	LoggingUploadIDKey    = "upload_id"
	LoggingTemperatureKey = "temperature_celsius"
	LoggingPayloadSizeKey = "payload_size"
	LoggingStatusCodeKey  = "status_code"
	LoggingFhirUrlKey     = "fhir_url"
)
