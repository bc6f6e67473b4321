package models

// ProductionRecord describes banana production for one region/month pair.
// Records are generated in bulk (regions x 12 months) per request.
type ProductionRecord struct {
	Region           string  `json:"region"`
	Year             int     `json:"year"`
	Month            int     `json:"month"`
	Tons             float64 `json:"tons"`
	QualityScore     float64 `json:"qualityScore"`     // bounded [3.0, 5.0]
	Variety          string  `json:"variety"`
	ExportPercentage float64 `json:"exportPercentage"` // bounded [20, 80]
}

// SalesRecord describes banana sales for one destination country.
type SalesRecord struct {
	Country      string  `json:"country"`
	TotalSales   float64 `json:"totalSales"`
	Units        int     `json:"units"`
	AveragePrice float64 `json:"averagePrice"` // bounded [1, 4]
	MarketShare  float64 `json:"marketShare"`  // bounded [5, 30]
}

// AnalyticsSummary is a derived aggregate over generated production and
// sales collections. All fields are pure deterministic reductions of the
// collections within a single response; no cross-request consistency is
// claimed.
type AnalyticsSummary struct {
	TotalProductionTons float64 `json:"totalProductionTons"`
	AverageQualityScore float64 `json:"averageQualityScore"`
	TotalRevenue        float64 `json:"totalRevenue"`
	CountryCount        int     `json:"countryCount"`
	TopProducingRegion  string  `json:"topProducingRegion"`
	TopVariety          string  `json:"topVariety"`
}
