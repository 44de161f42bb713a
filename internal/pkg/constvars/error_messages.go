package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"finite":   ErrClientInvalidTemperature,
}

// Error messages for clients
const (
	ErrClientNoInput                       = "No input"
	ErrClientInvalidTemperature            = "Invalid temperature value."
	ErrClientPayloadTooLarge               = "JSON payload too long or formatting error."
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
)

// Error messages for developers
const (
	ErrDevReadInput         = "failed to read temperature from stdin"
	ErrDevValidationFailed  = "request validation failed"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevPayloadTooLarge   = "serialized Observation is %d bytes, limit is %d"
)
