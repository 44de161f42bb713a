package contracts

import (
	"context"

	"thermopost/internal/pkg/dto/requests"
	"thermopost/internal/pkg/dto/responses"
)

type ObservationFhirClient interface {
	// CreateObservation POSTs the serialized Observation and returns
	// the HTTP status code. The response body is never read.
	CreateObservation(ctx context.Context, payload []byte) (int, error)
	URL() string
}

type ObservationUsecase interface {
	UploadBodyTemperature(ctx context.Context, request *requests.CreateBodyTemperature) (*responses.ObservationUpload, error)
	TargetURL() string
}
