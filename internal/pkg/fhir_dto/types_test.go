package fhir_dto

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestDecimalMarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		expected string
	}{
		{"half degree", 36.5, "36.50"},
		{"two places already", 37.25, "37.25"},
		{"integer", 40, "40.00"},
		{"zero", 0, "0.00"},
		{"negative", -0.5, "-0.50"},
		{"rounds extra places", 36.666, "36.67"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := json.Marshal(Decimal(tc.value))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, string(encoded))
		})
	}
}

func TestDecimalMarshalJSONRejectsNonFinite(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := json.Marshal(Decimal(value))
		assert.Error(t, err, "non-finite values must not encode")
	}
}

func TestQuantityMarshalJSON(t *testing.T) {
	quantity := &Quantity{
		Value:  Decimal(36.5),
		Unit:   "degrees C",
		System: "http://unitsofmeasure.org",
		Code:   "Cel",
	}

	encoded, err := json.Marshal(quantity)
	assert.NoError(t, err)
	assert.Contains(t, string(encoded), `"value":36.50`)
	assert.Contains(t, string(encoded), `"unit":"degrees C"`)
}
