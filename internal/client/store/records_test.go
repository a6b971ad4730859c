package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// recordsHandler отдаёт две страницы записей из фиксированного набора.
func recordsHandler(t *testing.T, records []api.Record) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/records", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
		if size < 1 {
			size = 20
		}

		start := (page - 1) * size
		end := start + size
		if start > len(records) {
			start = len(records)
		}
		if end > len(records) {
			end = len(records)
		}

		totalPages := (len(records) + size - 1) / size
		if totalPages < 1 {
			totalPages = 1
		}
		_ = json.NewEncoder(w).Encode(api.RecordListResponse{
			Records:    records[start:end],
			Total:      len(records),
			Page:       page,
			PageSize:   size,
			TotalPages: totalPages,
		})
	})
	return mux
}

func TestRecords_DerivedTotals(t *testing.T) {
	// Доход 100, расходы 25 и 15: на первой странице видно 100 и 25
	all := []api.Record{
		{ID: 1, Type: api.RecordTypeIncome, Amount: 100, Date: "2026-08-01"},
		{ID: 2, Type: api.RecordTypeExpense, Amount: 25, Date: "2026-08-02"},
		{ID: 3, Type: api.RecordTypeExpense, Amount: 15, Date: "2026-08-03"},
	}
	server := httptest.NewServer(recordsHandler(t, all))
	defer server.Close()

	records := NewRecords(clientapi.NewClient(server.URL))
	records.SetPageSize(2)
	ctx := context.Background()

	require.True(t, records.Refresh(ctx).Success)
	assert.Equal(t, 100.0, records.IncomeAmount())
	assert.Equal(t, 25.0, records.ExpenseAmount())

	// Итоги считаются только по загруженным страницам
	require.True(t, records.LoadMore(ctx).Success)
	assert.Equal(t, 100.0, records.IncomeAmount())
	assert.Equal(t, 40.0, records.ExpenseAmount())
}

func TestRecords_CreateRefreshesList(t *testing.T) {
	created := false
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/records", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			created = true
			var in api.RecordCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, 42.5, in.Amount)
			_ = json.NewEncoder(w).Encode(api.Record{ID: 9, Type: in.Type, Amount: in.Amount})
			return
		}
		resp := api.RecordListResponse{Page: 1, PageSize: 20, TotalPages: 1}
		if created {
			resp.Records = []api.Record{{ID: 9, Type: api.RecordTypeExpense, Amount: 42.5}}
			resp.Total = 1
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	records := NewRecords(clientapi.NewClient(server.URL))
	ctx := context.Background()

	result := records.Create(ctx, api.RecordCreate{
		Type:           api.RecordTypeExpense,
		CategoryID:     1,
		CategoryItemID: 2,
		Amount:         42.5,
		Date:           "2026-08-30",
	})
	require.True(t, result.Success, result.Message)
	assert.Equal(t, int64(9), result.Data.ID)

	// Список — то, что сервер вернул после мутации
	items := records.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 42.5, items[0].Amount)
}

func TestRecords_FetchStats(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/records/stats/summary", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		_ = json.NewEncoder(w).Encode(api.RecordStats{
			TotalCount:    3,
			IncomeAmount:  100,
			ExpenseAmount: 40,
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	records := NewRecords(clientapi.NewClient(server.URL))
	require.Nil(t, records.Stats())

	result := records.FetchStats(context.Background(), map[string]string{"start_date": "2026-08-01"})
	require.True(t, result.Success, result.Message)
	require.NotNil(t, records.Stats())
	assert.Equal(t, 100.0, records.Stats().IncomeAmount)
}
