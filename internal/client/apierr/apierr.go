// Package apierr carries the normalized error shape every transport
// failure is converted to before it reaches a store action.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// Kind classifies a normalized error.
type Kind int

const (
	KindUnknown    Kind = iota // любой прочий неуспешный статус
	KindValidation             // 4xx со структурированным detail
	KindAuth                   // 401, влечёт глобальный teardown сессии
	KindNotFound               // 404
	KindNetwork                // транспортный сбой, HTTP статуса нет
)

// String returns the kind name, for logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Error is the uniform {status, data} shape for every failed call.
// Status is zero for network-level failures.
type Error struct {
	cause  error
	Body   api.ErrorBody
	Kind   Kind
	Status int
}

func (e *Error) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("network error: %v", e.cause)
	}
	msg := extract(e.Body)
	if msg == "" {
		return fmt.Sprintf("server error (%d)", e.Status)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, msg)
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a normalized error from an HTTP status and parsed body.
func New(status int, body api.ErrorBody) *Error {
	e := &Error{Status: status, Body: body}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = KindAuth
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status >= 400 && status < 500:
		e.Kind = KindValidation
	default:
		e.Kind = KindUnknown
	}
	return e
}

// Network wraps a transport-level failure (DNS, timeout, canceled).
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, cause: err}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsAuth reports whether err is the 401 kind.
func IsAuth(err error) bool { return KindOf(err) == KindAuth }
