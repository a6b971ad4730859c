package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/xrs-b/MyLedger/internal/client/storage"
)

// Credentials adapts AuthStorage to the transport's CredentialSource.
// Токен читается из хранилища на каждый вызов, без кэширования,
// поэтому параллельные запросы не видят частичных записей.
type Credentials struct {
	store storage.AuthStorage
}

// NewCredentials создает адаптер над хранилищем сессии
func NewCredentials(store storage.AuthStorage) *Credentials {
	return &Credentials{store: store}
}

// Token returns the stored bearer token, empty when anonymous.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	auth, err := c.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read auth data: %w", err)
	}
	return auth.Token, nil
}

// Invalidate drops token and user snapshot together. Idempotent:
// clearing an already-empty session is success, so repeated 401
// teardowns cannot loop.
func (c *Credentials) Invalidate(ctx context.Context) error {
	if err := c.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}
