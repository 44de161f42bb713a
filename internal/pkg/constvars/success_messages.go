package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// CLI messages
	PromptTemperature    = "Enter body temperature (e.g. 36.5): "
	NoticePostingTo      = "Posting Observation to %s\n"
	NoticeResponseCode   = "Server HTTP response code: %d\n"
	UploadSuccess        = "Observation uploaded successfully."
	UploadFailureGeneric = "Upload may have failed. Check server logs or response."
)
