package constvars

const (
	MethodPost = "POST"
)

const (
	MIMEApplicationFHIRJSON            = "application/fhir+json"
	MIMEApplicationFHIRJSONCharsetUTF8 = "application/fhir+json;charset=utf-8"
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"
)

const (
	StatusOK              = 200
	StatusMultipleChoices = 300
)
