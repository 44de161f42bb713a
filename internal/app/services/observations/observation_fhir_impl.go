package observations

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"thermopost/internal/app/contracts"
	"thermopost/internal/pkg/constvars"
	"thermopost/internal/pkg/exceptions"
)

type observationFhirClient struct {
	BaseUrl   string
	UserAgent string
}

func NewObservationFhirClient(baseUrl string) contracts.ObservationFhirClient {
	return &observationFhirClient{
		BaseUrl:   ObservationEndpoint(baseUrl),
		UserAgent: constvars.UserAgent,
	}
}

// ObservationEndpoint joins the FHIR base URL with the Observation
// resource path.
func ObservationEndpoint(baseUrl string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(baseUrl, "/"), constvars.ResourceObservation)
}

func (c *observationFhirClient) URL() string {
	return c.BaseUrl
}

func (c *observationFhirClient) CreateObservation(ctx context.Context, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(payload))
	if err != nil {
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSONCharsetUTF8)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderUserAgent, c.UserAgent)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	// Only the status code matters to the caller; the body is left
	// unread whether the server accepted the resource or not.
	return resp.StatusCode, nil
}
