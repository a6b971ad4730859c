package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Сервер присылает detail то строкой, то массивом ошибок валидации.
func TestDetail_UnmarshalScalar(t *testing.T) {
	var body ErrorBody
	err := json.Unmarshal([]byte(`{"detail": "Incorrect username or password"}`), &body)
	require.NoError(t, err)

	assert.Equal(t, "Incorrect username or password", body.Detail.Text)
	assert.Empty(t, body.Detail.Fields)
	assert.False(t, body.Detail.Empty())
}

func TestDetail_UnmarshalValidationArray(t *testing.T) {
	raw := `{"detail": [
		{"msg": "String should have at least 3 characters", "type": "string_too_short", "loc": ["body", "username"]},
		{"msg": "Field required", "type": "missing", "loc": ["body", "password"]}
	]}`

	var body ErrorBody
	err := json.Unmarshal([]byte(raw), &body)
	require.NoError(t, err)

	require.Len(t, body.Detail.Fields, 2)
	assert.Equal(t, "String should have at least 3 characters", body.Detail.Fields[0].Msg)
	assert.Equal(t, "string_too_short", body.Detail.Fields[0].Type)
	assert.Equal(t, "missing", body.Detail.Fields[1].Type)
	assert.Empty(t, body.Detail.Text)
}

// Неизвестная форма detail не должна ронять разбор всего тела.
func TestDetail_UnmarshalUnknownShape(t *testing.T) {
	var body ErrorBody
	err := json.Unmarshal([]byte(`{"detail": {"weird": true}, "message": "fallback"}`), &body)
	require.NoError(t, err)

	assert.True(t, body.Detail.Empty())
	assert.Equal(t, "fallback", body.Message)
}

func TestDetail_MarshalRoundTrip(t *testing.T) {
	original := ErrorBody{Detail: Detail{Text: "not found"}}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ErrorBody
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Detail.Text, decoded.Detail.Text)
}
