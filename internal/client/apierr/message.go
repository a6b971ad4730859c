package apierr

import (
	"errors"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// Known validation detail types mapped to display text.
// Незнакомый тип показываем как есть.
var typeText = map[string]string{
	"string_too_short": "value is too short",
	"string_too_long":  "value is too long",
	"value_error":      "invalid value",
	"missing":          "required field is missing",
	"invalid_email":    "invalid email address",
	"validation_error": "validation failed",
}

const genericMessage = "operation failed"

// Message extracts a short human-readable message from err.
// Network failures and foreign errors get a generic text; no raw
// payloads or stack traces leak through here.
func Message(err error) string {
	return MessageOr(err, genericMessage)
}

// MessageOr is Message with a caller-supplied fallback, used by store
// actions that want an operation-specific failure text.
func MessageOr(err error, fallback string) string {
	var e *Error
	if !errors.As(err, &e) {
		return fallback
	}
	if e.Kind == KindNetwork {
		return "network error, please try again"
	}
	if msg := extract(e.Body); msg != "" {
		return msg
	}
	return fallback
}

// extract применяет правило извлечения detail:
// скаляр → как есть; массив → msg первого элемента, иначе его type
// через таблицу; затем поле message тела.
func extract(body api.ErrorBody) string {
	if body.Detail.Text != "" {
		return body.Detail.Text
	}
	if len(body.Detail.Fields) > 0 {
		first := body.Detail.Fields[0]
		if first.Msg != "" {
			return first.Msg
		}
		if first.Type != "" {
			if text, ok := typeText[first.Type]; ok {
				return text
			}
			return first.Type
		}
	}
	return body.Message
}
