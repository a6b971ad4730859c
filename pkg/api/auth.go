package api

// User представляет снимок текущего пользователя
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	AccessToken string `json:"access_token"` // bearer token
	TokenType   string `json:"token_type"`   // всегда "bearer"
	User        *User  `json:"user,omitempty"`
}

// RegisterResponse представляет ответ на успешную регистрацию.
// Токена здесь нет: регистрация сама по себе не авторизует пользователя.
type RegisterResponse struct {
	Message string `json:"message"`
	IsAdmin bool   `json:"is_admin"`
	User    *User  `json:"user,omitempty"`
}

// MessageResponse is the generic acknowledgment body returned by
// mutation endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}
