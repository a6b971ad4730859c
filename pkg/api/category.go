package api

// Category представляет одну категорию первого уровня.
// Items заполняются только сгруппированным ответом /categories.
type Category struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"` // income / expense
	Icon      string         `json:"icon,omitempty"`
	SortOrder int            `json:"sort_order"`
	CreatedAt string         `json:"created_at,omitempty"`
	Items     []CategoryItem `json:"items,omitempty"`
}

// CategoryItem is a second-level category under one Category.
type CategoryItem struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	SortOrder  int    `json:"sort_order"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// PaymentMethod is one way of paying attached to expense records.
type PaymentMethod struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sort_order"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CategoryGroups is the grouped /categories response: both kinds at once,
// each category carrying its items.
type CategoryGroups struct {
	Expense []Category `json:"expense"`
	Income  []Category `json:"income"`
}

// CategoryCreate is the create-category request body.
type CategoryCreate struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sort_order"`
}

// CategoryItemCreate is the create-category-item request body.
type CategoryItemCreate struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	SortOrder  int    `json:"sort_order"`
}

// PaymentMethodCreate is the create-payment-method request body.
type PaymentMethodCreate struct {
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SortOrder int    `json:"sort_order"`
}
