package api

// Record types as the server knows them.
const (
	RecordTypeIncome  = "income"
	RecordTypeExpense = "expense"
)

// Record представляет одну запись о доходе или расходе.
// Поля *Name и ProjectTitle заполняются только детальными ответами.
type Record struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"user_id"`
	Type              string  `json:"type"` // income / expense
	CategoryID        int64   `json:"category_id"`
	CategoryItemID    int64   `json:"category_item_id"`
	Amount            float64 `json:"amount"`
	Date              string  `json:"date"` // YYYY-MM-DD
	Remark            string  `json:"remark,omitempty"`
	PaymentMethodID   *int64  `json:"payment_method_id,omitempty"`
	ProjectID         *int64  `json:"project_id,omitempty"`
	CategoryName      string  `json:"category_name,omitempty"`
	CategoryItemName  string  `json:"category_item_name,omitempty"`
	PaymentMethodName string  `json:"payment_method_name,omitempty"`
	ProjectTitle      string  `json:"project_title,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// RecordCreate is the create-record request body.
type RecordCreate struct {
	Type            string  `json:"type"`
	CategoryID      int64   `json:"category_id"`
	CategoryItemID  int64   `json:"category_item_id"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	Remark          string  `json:"remark,omitempty"`
	PaymentMethodID *int64  `json:"payment_method_id,omitempty"`
	ProjectID       *int64  `json:"project_id,omitempty"`
}

// RecordUpdate is the partial update-record request body.
// Nil fields are left untouched by the server.
type RecordUpdate struct {
	Type            *string  `json:"type,omitempty"`
	CategoryID      *int64   `json:"category_id,omitempty"`
	CategoryItemID  *int64   `json:"category_item_id,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	Date            *string  `json:"date,omitempty"`
	Remark          *string  `json:"remark,omitempty"`
	PaymentMethodID *int64   `json:"payment_method_id,omitempty"`
	ProjectID       *int64   `json:"project_id,omitempty"`
}

// RecordListResponse is the paginated record list envelope.
type RecordListResponse struct {
	Records    []Record `json:"records"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// RecordStats is the /records/stats/summary payload.
type RecordStats struct {
	TotalCount    int     `json:"total_count"`
	TotalAmount   float64 `json:"total_amount"`
	IncomeCount   int     `json:"income_count"`
	IncomeAmount  float64 `json:"income_amount"`
	ExpenseCount  int     `json:"expense_count"`
	ExpenseAmount float64 `json:"expense_amount"`
}
