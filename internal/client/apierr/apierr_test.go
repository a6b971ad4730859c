package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xrs-b/MyLedger/pkg/api"
)

func TestNew_KindMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"not found", http.StatusNotFound, KindNotFound},
		{"validation", http.StatusUnprocessableEntity, KindValidation},
		{"bad request", http.StatusBadRequest, KindValidation},
		{"server error", http.StatusInternalServerError, KindUnknown},
		{"bad gateway", http.StatusBadGateway, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.status, api.ErrorBody{})
			assert.Equal(t, tt.want, err.Kind)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestNetwork(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network(cause)

	assert.Equal(t, KindNetwork, err.Kind)
	assert.Zero(t, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindAuth, KindOf(fmt.Errorf("wrapped: %w", New(401, api.ErrorBody{}))))
	assert.True(t, IsAuth(New(401, api.ErrorBody{})))
	assert.False(t, IsAuth(New(404, api.ErrorBody{})))
}

// Правило извлечения сообщения: скалярный detail, потом msg первого
// поля, потом локализованный type, потом message, потом fallback.
func TestMessageOr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "scalar detail",
			err:  New(400, api.ErrorBody{Detail: api.Detail{Text: "Incorrect username or password"}}),
			want: "Incorrect username or password",
		},
		{
			name: "field msg wins",
			err: New(422, api.ErrorBody{Detail: api.Detail{Fields: []api.FieldError{
				{Msg: "String should have at least 3 characters", Type: "string_too_short"},
			}}}),
			want: "String should have at least 3 characters",
		},
		{
			name: "known type mapped",
			err: New(422, api.ErrorBody{Detail: api.Detail{Fields: []api.FieldError{
				{Type: "missing"},
			}}}),
			want: "required field is missing",
		},
		{
			name: "unknown type shown as is",
			err: New(422, api.ErrorBody{Detail: api.Detail{Fields: []api.FieldError{
				{Type: "custom_rule"},
			}}}),
			want: "custom_rule",
		},
		{
			name: "message field",
			err:  New(500, api.ErrorBody{Message: "internal error"}),
			want: "internal error",
		},
		{
			name: "empty body falls back",
			err:  New(500, api.ErrorBody{}),
			want: "operation failed",
		},
		{
			name: "network gets fixed text",
			err:  Network(errors.New("dial tcp: timeout")),
			want: "network error, please try again",
		},
		{
			name: "foreign error falls back",
			err:  errors.New("something else"),
			want: "operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageOr(tt.err, "operation failed"))
		})
	}
}

// Сырые payload'ы не должны попадать в Error() без статуса и текста.
func TestError_String(t *testing.T) {
	assert.Equal(t, "server error (500)", New(500, api.ErrorBody{}).Error())
	assert.Equal(t, "server error (404): Record not found",
		New(404, api.ErrorBody{Detail: api.Detail{Text: "Record not found"}}).Error())
	assert.Contains(t, Network(errors.New("refused")).Error(), "network error")
}
