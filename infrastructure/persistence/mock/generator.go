package mock

import (
	"math/rand/v2"
	"time"

	"bananalytics-backend/domain/models"
)

// Summaries is the fixed vocabulary for forecast summary labels.
var Summaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// Regions is the fixed list of producing regions. Production is generated
// as one record per region/month pair.
var Regions = []string{
	"Costa Rica", "Ecuador", "Colombia", "Guatemala", "Honduras", "Panama",
}

// Varieties is the fixed banana variety list.
var Varieties = []string{
	"Cavendish", "Gros Michel", "Lady Finger", "Red Dacca", "Plantain", "Manzano",
}

// Countries is the fixed destination country list for sales records.
var Countries = []string{
	"United States", "Germany", "Japan", "United Kingdom",
	"France", "Netherlands", "Canada", "China",
}

// GenerateForecast produces days entries dated tomorrow through day+days,
// each with an independent uniform temperature in [-20, 55) and a summary
// from the fixed vocabulary. Generation cannot fail.
func GenerateForecast(days int) []models.ForecastEntry {
	entries := make([]models.ForecastEntry, 0, days)
	now := time.Now()
	for i := 1; i <= days; i++ {
		c := rand.IntN(75) - 20
		entries = append(entries, models.ForecastEntry{
			Date:         now.AddDate(0, 0, i),
			TemperatureC: c,
			TemperatureF: models.FahrenheitFromCelsius(c),
			Summary:      Summaries[rand.IntN(len(Summaries))],
		})
	}
	return entries
}

// GenerateProduction produces one record per region/month pair for the
// given year, each numeric field drawn independently from its fixed range.
func GenerateProduction(year int) []models.ProductionRecord {
	records := make([]models.ProductionRecord, 0, len(Regions)*12)
	for _, region := range Regions {
		for month := 1; month <= 12; month++ {
			records = append(records, models.ProductionRecord{
				Region:           region,
				Year:             year,
				Month:            month,
				Tons:             500 + rand.Float64()*9500,
				QualityScore:     3.0 + rand.Float64()*2.0,
				Variety:          Varieties[rand.IntN(len(Varieties))],
				ExportPercentage: 20 + rand.Float64()*60,
			})
		}
	}
	return records
}

// GenerateSales produces exactly one record per fixed destination country.
func GenerateSales() []models.SalesRecord {
	records := make([]models.SalesRecord, 0, len(Countries))
	for _, country := range Countries {
		units := 10_000 + rand.IntN(990_000)
		price := 1 + rand.Float64()*3
		records = append(records, models.SalesRecord{
			Country:      country,
			TotalSales:   float64(units) * price,
			Units:        units,
			AveragePrice: price,
			MarketShare:  5 + rand.Float64()*25,
		})
	}
	return records
}
