package utils

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("finite", validateFinite)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateFinite(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
