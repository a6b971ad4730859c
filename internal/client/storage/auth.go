// Package storage defines the durable client state: the bearer token
// and the last-known user snapshot, always stored and cleared together.
package storage

import (
	"context"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// AuthStorage is the lowest client storage layer.
type AuthStorage interface {
	// SaveAuth stores the session data, replacing whatever was there.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the stored session data.
	// Returns ErrAuthNotFound when nothing is stored.
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes token and user snapshot together (logout).
	// Returns ErrAuthNotFound when nothing was stored.
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated reports whether a non-expired token is stored.
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData объединяет обе хранимые ценности: токен и снимок
// пользователя. Они живут и умирают вместе, по отдельности
// не обновляются.
type AuthData struct {
	User      *api.User `json:"user,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt int64     `json:"expires_at,omitempty"` // unix seconds, 0 = unknown
}
