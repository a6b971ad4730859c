package api

// Project status values.
const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
)

// Project представляет проект с бюджетом и привязанными записями.
type Project struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Title        string  `json:"title"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`
	Budget       float64 `json:"budget"`
	MemberCount  int     `json:"member_count"`
	TotalExpense float64 `json:"total_expense"`
	Status       string  `json:"status"` // ongoing / completed
	Description  string  `json:"description,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`

	// Detail-only computed fields and linked records.
	AvgExpense  float64  `json:"avg_expense,omitempty"`
	ExpenseRate float64  `json:"expense_rate,omitempty"`
	Records     []Record `json:"records,omitempty"`
}

// ProjectCreate is the create-project request body.
type ProjectCreate struct {
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	MemberCount int     `json:"member_count"`
	Description string  `json:"description,omitempty"`
}

// ProjectUpdate is the partial update-project request body.
type ProjectUpdate struct {
	Title       *string  `json:"title,omitempty"`
	StartDate   *string  `json:"start_date,omitempty"`
	EndDate     *string  `json:"end_date,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	MemberCount *int     `json:"member_count,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ProjectListResponse is the project list envelope.
// Projects are not paginated server-side; total is just the length.
type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
