package observations

import (
	"context"
	"fmt"
	"time"

	"thermopost/internal/app/config"
	"thermopost/internal/app/contracts"
	"thermopost/internal/pkg/constvars"
	"thermopost/internal/pkg/dto/requests"
	"thermopost/internal/pkg/dto/responses"
	"thermopost/internal/pkg/exceptions"
	"thermopost/internal/pkg/fhir_dto"
	"thermopost/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type observationUsecase struct {
	FhirClient     contracts.ObservationFhirClient
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewObservationUsecase(fhirClient contracts.ObservationFhirClient, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ObservationUsecase {
	return &observationUsecase{
		FhirClient:     fhirClient,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *observationUsecase) TargetURL() string {
	return uc.FhirClient.URL()
}

func (uc *observationUsecase) UploadBodyTemperature(ctx context.Context, request *requests.CreateBodyTemperature) (*responses.ObservationUpload, error) {
	uploadID := uuid.NewString()
	uc.Log.Info("observationUsecase.UploadBodyTemperature called",
		zap.String(constvars.LoggingUploadIDKey, uploadID),
		zap.Float64(constvars.LoggingTemperatureKey, request.TemperatureCelsius),
		zap.String(constvars.LoggingFhirUrlKey, uc.FhirClient.URL()),
	)

	observation := uc.buildObservation(request.TemperatureCelsius, time.Now())

	payload, err := json.Marshal(observation)
	if err != nil {
		uc.Log.Error("observationUsecase.UploadBodyTemperature failed to marshal Observation",
			zap.String(constvars.LoggingUploadIDKey, uploadID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	if len(payload) > uc.InternalConfig.App.MaxPayloadSizeInBytes {
		return nil, exceptions.ErrPayloadTooLarge(len(payload), uc.InternalConfig.App.MaxPayloadSizeInBytes)
	}

	statusCode, err := uc.FhirClient.CreateObservation(ctx, payload)
	if err != nil {
		uc.Log.Error("observationUsecase.UploadBodyTemperature error calling FhirClient.CreateObservation",
			zap.String(constvars.LoggingUploadIDKey, uploadID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("observationUsecase.UploadBodyTemperature finished",
		zap.String(constvars.LoggingUploadIDKey, uploadID),
		zap.Int(constvars.LoggingPayloadSizeKey, len(payload)),
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
	)

	return &responses.ObservationUpload{
		StatusCode: statusCode,
		Uploaded:   statusCode >= constvars.StatusOK && statusCode < constvars.StatusMultipleChoices,
	}, nil
}

func (uc *observationUsecase) buildObservation(temperatureCelsius float64, now time.Time) *fhir_dto.Observation {
	return &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		Status:       constvars.FhirObservationStatusFinal,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirCategorySystemObservation,
						Code:    constvars.FhirCategoryCodeVitalSigns,
						Display: constvars.FhirCategoryDisplayVitalSigns,
					},
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirCodeSystemLOINC,
					Code:    constvars.FhirCodeBodyTemperature,
					Display: constvars.FhirDisplayBodyTemperature,
				},
			},
			Text: constvars.FhirDisplayBodyTemperature,
		},
		Subject: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%s", constvars.ResourcePatient, uc.InternalConfig.App.PatientID),
		},
		EffectiveDateTime: utils.FormatFhirInstant(now),
		ValueQuantity: &fhir_dto.Quantity{
			Value:  fhir_dto.Decimal(temperatureCelsius),
			Unit:   constvars.FhirUnitDegreesCelsius,
			System: constvars.FhirUnitSystemUCUM,
			Code:   constvars.FhirUnitCodeCelsius,
		},
	}
}
