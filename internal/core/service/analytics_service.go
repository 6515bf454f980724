package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/pulseboard/dashboard-api/internal/api/metrics"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// DashboardCache abstracts the role-keyed payload cache (Redis). A nil cache
// is valid and simply regenerates on every call.
type DashboardCache interface {
	Get(ctx context.Context, key string) (*domain.DashboardData, bool, error)
	Set(ctx context.Context, key string, data *domain.DashboardData) error
}

type analyticsService struct {
	cache DashboardCache
	log   zerolog.Logger
}

// NewAnalyticsService returns an AnalyticsProvider backed by synthetic
// fixture data.
func NewAnalyticsService(cache DashboardCache, log zerolog.Logger) ports.AnalyticsProvider {
	return &analyticsService{cache: cache, log: log}
}

// DashboardFor returns the standard dashboard payload.
func (s *analyticsService) DashboardFor(ctx context.Context, role domain.Role) (*domain.DashboardData, error) {
	data, err := s.cached(ctx, "dashboard:"+string(role), generateDashboard)
	if err != nil {
		return nil, err
	}
	metrics.DashboardRequestsTotal.WithLabelValues(string(role), "standard").Inc()
	return data, nil
}

// DetailedFor returns the dashboard payload extended with analyst metrics.
func (s *analyticsService) DetailedFor(ctx context.Context, role domain.Role) (*domain.DashboardData, error) {
	data, err := s.cached(ctx, "dashboard:detailed:"+string(role), generateDetailedDashboard)
	if err != nil {
		return nil, err
	}
	metrics.DashboardRequestsTotal.WithLabelValues(string(role), "detailed").Inc()
	return data, nil
}

// ExportReport builds a report payload for the request.
func (s *analyticsService) ExportReport(_ context.Context, req domain.ReportRequest, generatedBy string) (*domain.Report, error) {
	format := req.Format
	if format == "" {
		format = "json"
	}
	report := &domain.Report{
		ReportType:  req.ReportType,
		DateRange:   req.DateRange,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		GeneratedBy: generatedBy,
		Data: []domain.ReportRow{
			{Date: "2024-01-01", Revenue: 4500, Orders: 125},
			{Date: "2024-01-02", Revenue: 3800, Orders: 98},
			{Date: "2024-01-03", Revenue: 5200, Orders: 156},
		},
	}
	metrics.ReportsExportedTotal.WithLabelValues(format).Inc()
	return report, nil
}

// cached wraps generate with a best-effort cache lookup. Cache failures are
// logged and degrade to regeneration, never to an error.
func (s *analyticsService) cached(ctx context.Context, key string, generate func() *domain.DashboardData) (*domain.DashboardData, error) {
	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache read failed")
		} else if ok {
			return data, nil
		}
	}

	data := generate()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache write failed")
		}
	}
	return data, nil
}

var (
	salesCategories = []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports"}
	demographicBins = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
)

func generateDashboard() *domain.DashboardData {
	now := time.Now()
	today := now.Format("2006-01-02")

	data := &domain.DashboardData{
		Metrics: []domain.MetricData{
			{Name: "Total Revenue", Value: 125000, Change: 12.5, ChangeType: domain.ChangeIncrease},
			{Name: "Active Users", Value: 8439, Change: -2.1, ChangeType: domain.ChangeDecrease},
			{Name: "Conversion Rate", Value: 3.42, Change: 0.8, ChangeType: domain.ChangeIncrease},
			{Name: "Avg. Order Value", Value: 89.32, Change: 5.2, ChangeType: domain.ChangeIncrease},
		},
	}

	// Line chart: daily revenue over the trailing 30 days.
	revenue := make([]domain.ChartDataPoint, 0, 30)
	base := now.AddDate(0, 0, -30)
	for i := 0; i < 30; i++ {
		revenue = append(revenue, domain.ChartDataPoint{
			Date:  base.AddDate(0, 0, i).Format("2006-01-02"),
			Value: float64(4000 + rand.IntN(1501) - 500),
		})
	}
	data.Charts = append(data.Charts, domain.ChartData{Title: "Daily Revenue", Type: "line", Data: revenue})

	// Bar chart: sales by category.
	sales := make([]domain.ChartDataPoint, 0, len(salesCategories))
	for _, cat := range salesCategories {
		sales = append(sales, domain.ChartDataPoint{
			Date:     today,
			Value:    float64(1000 + rand.IntN(4001)),
			Category: cat,
		})
	}
	data.Charts = append(data.Charts, domain.ChartData{Title: "Sales by Category", Type: "bar", Data: sales})

	// Pie chart: user demographics.
	demos := make([]domain.ChartDataPoint, 0, len(demographicBins))
	for _, bin := range demographicBins {
		demos = append(demos, domain.ChartDataPoint{
			Date:     today,
			Value:    float64(500 + rand.IntN(1501)),
			Category: bin,
		})
	}
	data.Charts = append(data.Charts, domain.ChartData{Title: "User Demographics", Type: "pie", Data: demos})

	return data
}

func generateDetailedDashboard() *domain.DashboardData {
	data := generateDashboard()
	data.Metrics = append(data.Metrics,
		domain.MetricData{Name: "Customer Lifetime Value", Value: 245.67, Change: 8.3, ChangeType: domain.ChangeIncrease},
		domain.MetricData{Name: "Churn Rate", Value: 5.2, Change: -1.1, ChangeType: domain.ChangeDecrease},
		domain.MetricData{Name: "Cost Per Acquisition", Value: 23.45, Change: 2.8, ChangeType: domain.ChangeIncrease},
	)
	return data
}
