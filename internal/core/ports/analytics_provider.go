package ports

import (
	"context"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
)

// AnalyticsProvider serves role-appropriate dashboard fixtures and report
// exports. Authorization happens before any of these are called; providers
// only shape data.
type AnalyticsProvider interface {
	// DashboardFor returns the standard dashboard payload.
	DashboardFor(ctx context.Context, role domain.Role) (*domain.DashboardData, error)

	// DetailedFor returns the dashboard payload extended with the metrics
	// reserved for analysts and above.
	DetailedFor(ctx context.Context, role domain.Role) (*domain.DashboardData, error)

	// ExportReport builds a report for the given request, attributing it to
	// generatedBy (the requesting user's display name).
	ExportReport(ctx context.Context, req domain.ReportRequest, generatedBy string) (*domain.Report, error)
}
