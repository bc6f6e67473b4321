package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"bananalytics-backend/application/queries"
	querybus "bananalytics-backend/application/queries/bus"
	"bananalytics-backend/domain/models"
)

// DashboardHandler renders a server-side analytics dashboard as a single
// HTML page. It is a demo surface over the same queries the JSON endpoints
// use, not a replacement for a real frontend.
type DashboardHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetDashboard handles GET /api/analytics/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	year := intParam(r, "year", time.Now().Year())

	productionResult, err := h.queryBus.Ask(r.Context(), queries.GetProductionByYearQuery{Year: year})
	if err != nil {
		h.logger.Error("Failed to get production for dashboard", zap.Error(err))
		respondQueryError(w, h.logger, err)
		return
	}

	salesResult, err := h.queryBus.Ask(r.Context(), queries.GetSalesByCountryQuery{})
	if err != nil {
		h.logger.Error("Failed to get sales for dashboard", zap.Error(err))
		respondQueryError(w, h.logger, err)
		return
	}

	production := productionResult.([]models.ProductionRecord)
	sales := salesResult.([]models.SalesRecord)

	page := components.NewPage()
	page.PageTitle = "Banana Analytics"
	page.AddCharts(
		productionBarChart(year, production),
		salesPieChart(sales),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		h.logger.Error("Failed to render dashboard", zap.Error(err))
	}
}

// productionBarChart aggregates tons by region and renders them as a bar
// chart, preserving the fixed region order of the generation.
func productionBarChart(year int, records []models.ProductionRecord) *charts.Bar {
	totals := make(map[string]float64)
	var regions []string
	for _, rec := range records {
		if _, seen := totals[rec.Region]; !seen {
			regions = append(regions, rec.Region)
		}
		totals[rec.Region] += rec.Tons
	}

	data := make([]opts.BarData, 0, len(regions))
	for _, region := range regions {
		data = append(data, opts.BarData{Value: totals[region]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Banana production by region",
			Subtitle: "Tons, " + strconv.Itoa(year),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "400px",
		}),
	)
	bar.SetXAxis(regions).AddSeries("Tons", data)

	return bar
}

// salesPieChart renders per-country market share.
func salesPieChart(records []models.SalesRecord) *charts.Pie {
	data := make([]opts.PieData, 0, len(records))
	for _, rec := range records {
		data = append(data, opts.PieData{Name: rec.Country, Value: rec.MarketShare})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Market share by country",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "400px",
		}),
	)
	pie.AddSeries("Market share", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}%",
		}))

	return pie
}
