package requests

type CreateBodyTemperature struct {
	TemperatureCelsius float64 `json:"temperature_celsius" validate:"finite"`
}
