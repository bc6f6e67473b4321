package queries

import "github.com/go-playground/validator/v10"

// validate is shared by all query types; queries are flat structs so the
// default struct-tag validation is all that is needed.
var validate = validator.New()

// GetForecastQuery asks for a number of days of mock weather data.
type GetForecastQuery struct {
	Days int `json:"days" validate:"gte=0,lte=366"`
}

// Validate validates the query
func (q GetForecastQuery) Validate() error {
	return validate.Struct(q)
}
