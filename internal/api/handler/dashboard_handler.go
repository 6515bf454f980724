package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// DashboardHandler serves the analytics read surface. Permission checks live
// in the middleware chain; by the time these run the caller is authorized.
type DashboardHandler struct {
	analytics ports.AnalyticsProvider
}

func NewDashboardHandler(analytics ports.AnalyticsProvider) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Dashboard returns the standard dashboard payload.
//
// @Summary      Dashboard overview
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardData
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	data, err := h.analytics.DashboardFor(c.Request().Context(), user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

// Detailed returns the dashboard payload extended with analyst-only metrics.
//
// @Summary      Detailed analytics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardData
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /analytics/detailed [get]
func (h *DashboardHandler) Detailed(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	data, err := h.analytics.DetailedFor(c.Request().Context(), user.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}

type exportReportRequest struct {
	ReportType string            `json:"report_type" validate:"required"`
	DateRange  map[string]string `json:"date_range"  validate:"required"`
	Format     string            `json:"format"      validate:"omitempty,oneof=json csv"`
}

type csvExportResponse struct {
	Message string         `json:"message"`
	Data    *domain.Report `json:"data"`
}

// ExportReport generates a report for managers and above.
//
// @Summary      Export a report
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      exportReportRequest  true  "Report parameters"
// @Success      200   {object}  domain.Report
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /reports/export [post]
func (h *DashboardHandler) ExportReport(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req exportReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	report, err := h.analytics.ExportReport(c.Request().Context(), domain.ReportRequest{
		ReportType: req.ReportType,
		DateRange:  req.DateRange,
		Format:     req.Format,
	}, user.FullName)
	if err != nil {
		return err
	}

	// CSV generation is stubbed; the payload ships as JSON with a marker.
	if req.Format == "csv" {
		return c.JSON(http.StatusOK, csvExportResponse{
			Message: "CSV export feature would be implemented here",
			Data:    report,
		})
	}
	return c.JSON(http.StatusOK, report)
}
