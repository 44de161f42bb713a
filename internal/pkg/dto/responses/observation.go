package responses

type ObservationUpload struct {
	StatusCode int  `json:"status_code"`
	Uploaded   bool `json:"uploaded"`
}
