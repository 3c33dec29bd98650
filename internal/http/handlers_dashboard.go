package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"paisa/internal/report"
)

// Chart box matching the trend card on the dashboard screen.
const (
	chartWidth  = 280.0
	chartHeight = 120.0
)

type dashboardResponse struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Income    float64          `json:"income"`
	Expenses  float64          `json:"expenses"`
	Net       float64          `json:"net"`
	Breakdown []categoryJSON   `json:"breakdown"`
	Budget    budgetJSON       `json:"budget"`
	Trend     []trendPointJSON `json:"trend"`
	Chart     chartJSON        `json:"chart"`
}

type categoryJSON struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
	Count      int     `json:"count"`
}

type budgetJSON struct {
	Limit       float64 `json:"limit"`
	Utilization float64 `json:"utilization"`
	Remaining   float64 `json:"remaining"`
}

type trendPointJSON struct {
	Date   string  `json:"date"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type chartJSON struct {
	Width    float64            `json:"width"`
	Height   float64            `json:"height"`
	Points   []chartPointJSON   `json:"points"`
	Segments []chartSegmentJSON `json:"segments"`
}

type chartPointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type chartSegmentJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Angle float64 `json:"angle"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	key := dashboardCacheKey(year, int(month))
	if cached, ok := s.dashCache.Get(key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load transactions for dashboard", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to build dashboard")
		return
	}

	summary := s.engine.Summarize(txs, year, int(month))
	breakdown := s.engine.CategoryBreakdown(txs, year, int(month))
	trend := s.engine.TrendSeries(txs, time.Now())
	chart := report.BuildLineChart(trend, chartWidth, chartHeight)

	resp := dashboardResponse{
		Year:     year,
		Month:    int(month),
		Income:   summary.Income.Rupees(),
		Expenses: summary.Expenses.Rupees(),
		Net:      summary.Net.Rupees(),
		Budget: budgetJSON{
			Limit:       s.engine.Budget().Rupees(),
			Utilization: s.engine.BudgetUtilization(summary.Expenses),
			Remaining:   s.engine.Remaining(summary.Expenses).Rupees(),
		},
	}

	resp.Breakdown = make([]categoryJSON, 0, len(breakdown))
	for _, share := range breakdown {
		resp.Breakdown = append(resp.Breakdown, categoryJSON{
			Name:       share.Name,
			Amount:     share.Amount.Rupees(),
			Color:      share.Color,
			Percentage: share.Percentage,
			Count:      share.Count,
		})
	}

	resp.Trend = make([]trendPointJSON, 0, len(trend))
	for _, p := range trend {
		resp.Trend = append(resp.Trend, trendPointJSON{
			Date:   p.Date.String(),
			Label:  p.Label,
			Amount: p.Amount.Rupees(),
		})
	}

	resp.Chart = chartJSON{Width: chart.Width, Height: chart.Height}
	resp.Chart.Points = make([]chartPointJSON, 0, len(chart.Points))
	for _, p := range chart.Points {
		resp.Chart.Points = append(resp.Chart.Points, chartPointJSON{X: p.X, Y: p.Y})
	}
	resp.Chart.Segments = make([]chartSegmentJSON, 0, len(chart.Segments))
	for _, seg := range chart.Segments {
		resp.Chart.Segments = append(resp.Chart.Segments, chartSegmentJSON{X: seg.X, Y: seg.Y, Width: seg.Width, Angle: seg.Angle})
	}

	s.dashCache.Set(key, resp)
	writeJSON(w, http.StatusOK, resp)
}

func dashboardCacheKey(year, month int) string {
	return fmt.Sprintf("dashboard:%04d-%02d", year, month)
}

// invalidateDashboards drops every cached dashboard after a mutation. The
// cache is small, so a full flush is simpler than tracking affected months.
func (s *Server) invalidateDashboards() {
	s.dashCache.Flush()
}
