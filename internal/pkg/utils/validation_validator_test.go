package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type finiteFixture struct {
	Value float64 `validate:"finite"`
}

func TestValidateStructFinite(t *testing.T) {
	t.Run("finite value passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&finiteFixture{Value: 36.5}))
	})

	t.Run("zero passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&finiteFixture{Value: 0}))
	})

	t.Run("NaN fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&finiteFixture{Value: math.NaN()}))
	})

	t.Run("positive infinity fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&finiteFixture{Value: math.Inf(1)}))
	})

	t.Run("negative infinity fails", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&finiteFixture{Value: math.Inf(-1)}))
	})
}
