package api

// Trend aggregation periods.
const (
	TrendPeriodDay   = "day"
	TrendPeriodWeek  = "week"
	TrendPeriodMonth = "month"
)

// StatsSummary is the /statistics/summary payload.
type StatsSummary struct {
	TotalCount    int     `json:"total_count"`
	TotalAmount   float64 `json:"total_amount"`
	IncomeCount   int     `json:"income_count"`
	IncomeAmount  float64 `json:"income_amount"`
	ExpenseCount  int     `json:"expense_count"`
	ExpenseAmount float64 `json:"expense_amount"`
	NetAmount     float64 `json:"net_amount"`
}

// CategoryStat is one row of the by-category breakdown.
type CategoryStat struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Icon       string  `json:"icon,omitempty"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryStatsResponse is the /statistics/by-category envelope.
type CategoryStatsResponse struct {
	Categories  []CategoryStat `json:"categories"`
	TotalAmount float64        `json:"total_amount"`
	TotalCount  int            `json:"total_count"`
}

// DailyStat is one day of the by-day breakdown.
type DailyStat struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// DailyStatsResponse is the /statistics/by-day envelope.
type DailyStatsResponse struct {
	Data      []DailyStat `json:"data"`
	StartDate string      `json:"start_date,omitempty"`
	EndDate   string      `json:"end_date,omitempty"`
}

// ProjectStat is one row of the by-project breakdown.
type ProjectStat struct {
	ProjectID    int64   `json:"project_id"`
	ProjectTitle string  `json:"project_title"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
}

// ProjectStatsResponse is the /statistics/by-project envelope.
type ProjectStatsResponse struct {
	Projects []ProjectStat `json:"projects"`
	Total    float64       `json:"total"`
}

// TrendPoint is one aggregated period of the trend breakdown.
type TrendPoint struct {
	Period  string  `json:"period"` // YYYY-MM-DD / YYYY-Www / YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// TrendResponse is the /statistics/trend envelope.
type TrendResponse struct {
	Data   []TrendPoint `json:"data"`
	Period string       `json:"period,omitempty"`
}
