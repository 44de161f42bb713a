package exceptions

import (
	"fmt"

	"thermopost/internal/pkg/constvars"
)

var (
	// Input
	ErrNoInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientNoInput, constvars.ErrDevReadInput)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Payload
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientInvalidTemperature, constvars.ErrDevCannotMarshalJSON)
	}
	ErrPayloadTooLarge = func(size, limit int) *CustomError {
		return BuildNewCustomError(nil, constvars.ExitFailure, constvars.ErrClientPayloadTooLarge, fmt.Sprintf(constvars.ErrDevPayloadTooLarge, size, limit))
	}

	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.ExitFailure, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
)
