package domain

// ChangeType labels the direction of a metric's period-over-period delta.
const (
	ChangeIncrease = "increase"
	ChangeDecrease = "decrease"
)

// MetricData is a single headline figure on the dashboard.
type MetricData struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Change     float64 `json:"change"`
	ChangeType string  `json:"change_type"`
}

// ChartDataPoint is one sample in a chart series.
type ChartDataPoint struct {
	Date     string  `json:"date"`
	Value    float64 `json:"value"`
	Category string  `json:"category,omitempty"`
}

// ChartData is a titled series rendered as one chart.
type ChartData struct {
	Title string           `json:"title"`
	Type  string           `json:"type"` // "line", "bar", "pie"
	Data  []ChartDataPoint `json:"data"`
}

// DashboardData is the full payload behind the dashboard endpoints.
type DashboardData struct {
	Metrics []MetricData `json:"metrics"`
	Charts  []ChartData  `json:"charts"`
}

// ReportRequest describes an export job.
type ReportRequest struct {
	ReportType string            `json:"report_type"`
	DateRange  map[string]string `json:"date_range"`
	Format     string            `json:"format"`
}

// ReportRow is one line item in an exported report.
type ReportRow struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Report is the generated export payload.
type Report struct {
	ReportType  string            `json:"report_type"`
	DateRange   map[string]string `json:"date_range"`
	GeneratedAt string            `json:"generated_at"`
	GeneratedBy string            `json:"generated_by"`
	Data        []ReportRow       `json:"data"`
}
