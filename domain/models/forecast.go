package models

import "time"

// ForecastEntry is a single day of mock weather data. Entries are created
// fresh per request and never persisted; they carry no identity.
type ForecastEntry struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	TemperatureF int       `json:"temperatureF"`
	Summary      string    `json:"summary"`
}

// FahrenheitFromCelsius derives the Fahrenheit reading with the fixed
// linear formula F = 32 + C*9/5, rounded to the nearest degree.
func FahrenheitFromCelsius(c int) int {
	f := float64(c) * 9.0 / 5.0
	if f >= 0 {
		return 32 + int(f+0.5)
	}
	return 32 + int(f-0.5)
}
