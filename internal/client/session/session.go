// Package session owns the authenticated-session lifecycle: login,
// registration, the current-user snapshot and teardown.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/internal/client/storage"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Result is the outcome every session action returns. Errors never
// propagate past the session boundary, only messages do.
type Result struct {
	Message string
	Success bool
}

// RegisterOutcome is the Result of Register plus what the server said.
// Регистрация не авторизует: токена в ответе сервера нет, сессия
// остаётся анонимной, логин выполняется отдельно.
type RegisterOutcome struct {
	Message string
	IsAdmin bool
	Success bool
}

// Session предоставляет функции авторизации
type Session struct {
	client *clientapi.Client
	store  storage.AuthStorage
	logger *slog.Logger

	mu   sync.Mutex
	user *api.User
	err  string
}

// New создает новую сессию над API клиентом и хранилищем
func New(client *clientapi.Client, store storage.AuthStorage) *Session {
	return &Session{
		client: client,
		store:  store,
		logger: slog.Default(),
	}
}

// Credentials returns the transport-facing credential source bound to
// the same storage this session writes.
func (s *Session) Credentials() *Credentials {
	return NewCredentials(s.store)
}

// Restore loads the persisted user snapshot into memory, so IsAdmin
// works right after process start without a network call.
func (s *Session) Restore(ctx context.Context) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil || auth.Token == "" {
		return
	}
	s.mu.Lock()
	s.user = auth.User
	s.mu.Unlock()
}

// Login выполняет аутентификацию пользователя.
// При неудаче прежнее состояние сессии не трогаем.
func (s *Session) Login(ctx context.Context, username, password string) Result {
	resp, err := s.client.Login(ctx, username, password)
	if err != nil {
		return s.fail(err, "login failed")
	}

	auth := &storage.AuthData{
		Token:     resp.AccessToken,
		User:      resp.User,
		ExpiresAt: tokenExpiry(resp.AccessToken),
	}
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		s.logger.Warn("failed to persist session", "error", err)
		return s.fail(err, "failed to persist session")
	}

	s.mu.Lock()
	s.user = resp.User
	s.err = ""
	s.mu.Unlock()

	return Result{Success: true}
}

// Register регистрирует нового пользователя.
// Состояние сессии не меняется, успех не означает авторизацию.
func (s *Session) Register(ctx context.Context, username, password, inviteCode string) RegisterOutcome {
	resp, err := s.client.Register(ctx, username, password, inviteCode)
	if err != nil {
		res := s.fail(err, "registration failed")
		return RegisterOutcome{Message: res.Message}
	}
	return RegisterOutcome{Success: true, IsAdmin: resp.IsAdmin, Message: resp.Message}
}

// FetchSelf refreshes the current-user snapshot. No-op when anonymous.
// Невалидный токен приводит к logout, а не к сырой ошибке наружу.
func (s *Session) FetchSelf(ctx context.Context) Result {
	auth, err := s.store.GetAuth(ctx)
	if err != nil || auth.Token == "" {
		return Result{Success: true}
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		s.logger.Warn("fetch self failed, forcing logout", "error", err)
		if logoutErr := s.Logout(ctx); logoutErr != nil {
			s.logger.Warn("forced logout failed", "error", logoutErr)
		}
		return s.fail(err, "session expired")
	}

	// Снимок заменяется целиком и сохраняется вместе с токеном
	auth.User = user
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		s.logger.Warn("failed to persist user snapshot", "error", err)
	}

	s.mu.Lock()
	s.user = user
	s.err = ""
	s.mu.Unlock()

	return Result{Success: true}
}

// Logout clears token and user snapshot unconditionally.
// Safe to call when already anonymous.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.store.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// IsAuthenticated держит инвариант: авторизован ⇔ токен не пуст.
func (s *Session) IsAuthenticated(ctx context.Context) bool {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		return false
	}
	return auth.Token != ""
}

// IsAdmin derives from the current snapshot, false without one.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.IsAdmin
}

// User returns the in-memory snapshot, nil when anonymous.
func (s *Session) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Err returns the last failure message, empty after a success.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// ClearErr сбрасывает сообщение об ошибке
func (s *Session) ClearErr() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Session) fail(err error, fallback string) Result {
	msg := apierr.MessageOr(err, fallback)
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	return Result{Success: false, Message: msg}
}

// tokenExpiry достает exp из JWT без проверки подписи: срок жизни
// нужен только для локальной диагностики, доверие к токену не к нам.
func tokenExpiry(token string) int64 {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return exp.Unix()
}
