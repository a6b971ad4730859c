package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// Register регистрирует нового пользователя.
// Тело запроса url-encoded, как того требует эндпоинт аутентификации.
func (c *Client) Register(ctx context.Context, username, password, inviteCode string) (*api.RegisterResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("invite_code", inviteCode)

	var resp api.RegisterResponse
	if err := c.doForm(ctx, "/auth/register", form, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp api.LoginResponse
	if err := c.doForm(ctx, "/auth/login", form, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает снимок текущего пользователя
func (c *Client) Me(ctx context.Context) (*api.User, error) {
	var resp api.User
	if err := c.doRequest(ctx, "GET", "/auth/me", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}

// Logout notifies the server; the server side is a no-op, local state
// is the session's responsibility.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, "POST", "/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// Refresh обновляет bearer token
func (c *Client) Refresh(ctx context.Context) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, "POST", "/auth/refresh", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}
