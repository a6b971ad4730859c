// Package api implements the HTTP transport: one client that injects
// credentials, normalizes failures and tears the session down on 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

const basePath = "/api/v1"

// CredentialSource supplies the bearer token for outgoing requests.
// Token читается заново на каждый вызов, клиент его не кэширует.
// Invalidate must be idempotent: it is the 401 teardown path.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// Query holds request query parameters. Empty values are dropped at
// encode time, never sent as empty strings.
type Query map[string]string

func (q Query) encode() string {
	if len(q) == 0 {
		return ""
	}
	values := url.Values{}
	for key, value := range q {
		if value != "" {
			values.Set(key, value)
		}
	}
	return values.Encode()
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient     *http.Client
	creds          CredentialSource
	onUnauthorized func()
	logger         *slog.Logger
	baseURL        string
}

// Option configures a Client.
type Option func(*Client)

// WithCredentials attaches the token source used for the
// Authorization header and for the 401 teardown.
func WithCredentials(creds CredentialSource) Option {
	return func(c *Client) { c.creds = creds }
}

// WithUnauthorizedHook registers the redirect-to-login signal fired
// after a 401 teardown. The hook owner decides whether it applies
// (e.g. not when already at the login view).
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger overrides the default slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest выполняет JSON запрос
func (c *Client) doRequest(ctx context.Context, method, path string, query Query, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, query, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(ctx, req, result)
}

// doForm выполняет запрос с url-encoded телом (эндпоинты /auth)
func (c *Client) doForm(ctx context.Context, path string, form url.Values, result any) error {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(ctx, req, result)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query Query, body io.Reader) (*http.Request, error) {
	fullURL := c.baseURL + basePath + path
	if qs := query.encode(); qs != "" {
		fullURL += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return req, nil
}

// do performs the request, attaches credentials and normalizes the
// outcome. Every failure leaves here as an *apierr.Error.
func (c *Client) do(ctx context.Context, req *http.Request, result any) error {
	// Токен читаем заново на каждый вызов
	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to read credentials: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			"method", req.Method, "path", req.URL.Path, "error", err)
		return apierr.Network(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierr.Network(err)
	}

	c.logger.Debug("request completed",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody api.ErrorBody
		// Не-JSON тело не считаем фатальным, остаётся пустой ErrorBody
		_ = json.Unmarshal(respBody, &errBody)

		if resp.StatusCode == http.StatusUnauthorized {
			c.teardown(ctx)
		}
		return apierr.New(resp.StatusCode, errBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// teardown clears the stored credentials and signals the UI layer.
// Runs once per failing call; Invalidate itself is idempotent, so
// overlapping 401s cannot loop.
func (c *Client) teardown(ctx context.Context) {
	if c.creds != nil {
		if err := c.creds.Invalidate(ctx); err != nil {
			c.logger.Warn("failed to invalidate credentials", "error", err)
		}
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}
