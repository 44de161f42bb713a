package fhir_dto

import (
	"fmt"
	"math"
	"strconv"
)

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// Decimal is a FHIR decimal rendered with exactly two digits after the
// decimal point, e.g. 36.5 encodes as 36.50.
type Decimal float64

func (d Decimal) MarshalJSON() ([]byte, error) {
	value := float64(d)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("cannot encode %v as a FHIR decimal", value)
	}
	return strconv.AppendFloat(nil, value, 'f', 2, 64), nil
}

type Quantity struct {
	Value  Decimal `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	System string  `json:"system,omitempty"`
	Code   string  `json:"code,omitempty"`
}
