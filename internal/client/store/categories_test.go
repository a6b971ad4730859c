package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/pkg/api"
)

func TestCategories_FetchAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.CategoryGroups{
			Expense: []api.Category{{
				ID: 1, Name: "Food", Type: api.RecordTypeExpense,
				Items: []api.CategoryItem{{ID: 10, Name: "Groceries", CategoryID: 1}},
			}},
			Income: []api.Category{{ID: 2, Name: "Salary", Type: api.RecordTypeIncome}},
		})
	})
	mux.HandleFunc("/api/v1/categories/payment-methods", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]api.PaymentMethod{{ID: 1, Name: "Cash"}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	categories := NewCategories(clientapi.NewClient(server.URL))
	ctx := context.Background()

	require.True(t, categories.FetchAll(ctx).Success)
	require.True(t, categories.FetchPaymentMethods(ctx).Success)

	require.Len(t, categories.Expense(), 1)
	assert.Equal(t, "Food", categories.Expense()[0].Name)
	require.Len(t, categories.Expense()[0].Items, 1)
	require.Len(t, categories.Income(), 1)
	require.Len(t, categories.PaymentMethods(), 1)

	assert.Equal(t, categories.Expense(), categories.ByType(api.RecordTypeExpense))
	assert.Equal(t, categories.Income(), categories.ByType(api.RecordTypeIncome))
	assert.Nil(t, categories.ByType("bogus"))
	assert.False(t, categories.Loading())
}

func TestCategories_FetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	categories := NewCategories(clientapi.NewClient(server.URL))
	result := categories.FetchAll(context.Background())
	require.False(t, result.Success)
	assert.Equal(t, "failed to load categories", result.Message)
	assert.Equal(t, result.Message, categories.Err())
}
