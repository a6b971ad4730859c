package api

import "encoding/json"

// ErrorBody is the error payload the server attaches to non-success
// responses. The detail field comes in two shapes: a plain string or a
// structured validation array.
type ErrorBody struct {
	Detail  Detail `json:"detail"`
	Message string `json:"message,omitempty"`
}

// Detail decodes both shapes of the error detail.
// Either Text is set (scalar detail) or Fields is (validation array).
type Detail struct {
	Text   string
	Fields []FieldError
}

// FieldError is one entry of a structured validation detail.
type FieldError struct {
	Msg  string `json:"msg"`
	Type string `json:"type"`
	Loc  []any  `json:"loc,omitempty"`
}

// UnmarshalJSON принимает как скалярный detail, так и массив ошибок валидации
func (d *Detail) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		d.Text = s
		return nil
	}

	var fields []FieldError
	if err := json.Unmarshal(data, &fields); err == nil {
		d.Fields = fields
		return nil
	}

	// Неизвестная форма: не считаем это ошибкой, сообщение возьмёт fallback
	return nil
}

// MarshalJSON keeps round-trips symmetric, mostly for tests.
func (d Detail) MarshalJSON() ([]byte, error) {
	if len(d.Fields) > 0 {
		return json.Marshal(d.Fields)
	}
	return json.Marshal(d.Text)
}

// Empty reports whether the detail carries no information at all.
func (d Detail) Empty() bool {
	return d.Text == "" && len(d.Fields) == 0
}
