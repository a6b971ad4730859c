package api

// AdminStats is the /admin/stats dashboard payload.
type AdminStats struct {
	UserCount     int `json:"user_count"`
	RecordCount   int `json:"record_count"`
	ProjectCount  int `json:"project_count"`
	CategoryCount int `json:"category_count"`
}

// UserUpdate is the admin partial user update body.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
