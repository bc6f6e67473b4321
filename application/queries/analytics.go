package queries

import (
	"bananalytics-backend/domain/models"
)

// GetAnalyticsSummaryQuery asks for the derived analytics aggregate plus
// the top-N production records and the full sales list for one year.
type GetAnalyticsSummaryQuery struct {
	Year int `json:"year" validate:"gte=1990,lte=2100"`
	TopN int `json:"top_n" validate:"gte=1,lte=100"`
}

// Validate validates the query
func (q GetAnalyticsSummaryQuery) Validate() error {
	return validate.Struct(q)
}

// GetAnalyticsSummaryResult is the aggregate plus its source collections.
// Production holds the top-N records by tons; the summary's total is the
// sum over exactly this truncated list, while TopProducingRegion is the
// arg-max over the full pre-truncation generation.
type GetAnalyticsSummaryResult struct {
	Summary    models.AnalyticsSummary   `json:"summary"`
	Production []models.ProductionRecord `json:"production"`
	Sales      []models.SalesRecord      `json:"sales"`
}

// GetProductionByYearQuery asks for production records for one year,
// optionally filtered to a single region.
type GetProductionByYearQuery struct {
	Year   int    `json:"year" validate:"gte=1990,lte=2100"`
	Region string `json:"region,omitempty"`
}

// Validate validates the query
func (q GetProductionByYearQuery) Validate() error {
	return validate.Struct(q)
}

// GetSalesByCountryQuery asks for the per-country sales list. It carries
// no parameters; the country list is fixed.
type GetSalesByCountryQuery struct{}

// Validate validates the query
func (q GetSalesByCountryQuery) Validate() error {
	return nil
}
