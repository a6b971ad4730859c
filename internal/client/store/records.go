package store

import (
	"context"
	"fmt"
	"sync"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Records is the collection of income/expense records with the full
// filter key set and derived totals.
type Records struct {
	*Collection[api.Record]
	client *clientapi.Client

	mu    sync.Mutex
	stats *api.RecordStats
}

// NewRecords создает коллекцию записей
func NewRecords(client *clientapi.Client) *Records {
	r := &Records{client: client}
	r.Collection = New[api.Record]("records", recordResource{client: client}, func(rec api.Record) int64 {
		return rec.ID
	})
	return r
}

// Create создает запись и перечитывает список
func (r *Records) Create(ctx context.Context, in api.RecordCreate) DataResult[api.Record] {
	return r.Collection.Create(ctx, in)
}

// Update обновляет запись и перечитывает список
func (r *Records) Update(ctx context.Context, id int64, in api.RecordUpdate) DataResult[api.Record] {
	return r.Collection.Update(ctx, id, in)
}

// IncomeAmount sums income amounts over the loaded pages only: it is
// not the server-side total, just what infinite scroll has fetched.
func (r *Records) IncomeAmount() float64 {
	return r.sumByType(api.RecordTypeIncome)
}

// ExpenseAmount sums expense amounts over the loaded pages only.
func (r *Records) ExpenseAmount() float64 {
	return r.sumByType(api.RecordTypeExpense)
}

func (r *Records) sumByType(recordType string) float64 {
	var sum float64
	for _, rec := range r.Items() {
		if rec.Type == recordType {
			sum += rec.Amount
		}
	}
	return sum
}

// FetchStats загружает сводку /records/stats/summary по фильтрам дат
func (r *Records) FetchStats(ctx context.Context, query map[string]string) DataResult[api.RecordStats] {
	stats, err := r.client.RecordStats(ctx, clientapi.Query(query))
	if err != nil {
		return DataResult[api.RecordStats]{Message: apierr.MessageOr(err, "failed to load record stats")}
	}

	r.mu.Lock()
	r.stats = stats
	r.mu.Unlock()
	return DataResult[api.RecordStats]{Success: true, Data: *stats}
}

// Stats returns the last fetched summary, nil before FetchStats.
func (r *Records) Stats() *api.RecordStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// recordResource adapts the typed record endpoints to Resource.
type recordResource struct {
	client *clientapi.Client
}

func (r recordResource) List(ctx context.Context, query map[string]string) (Page[api.Record], error) {
	resp, err := r.client.ListRecords(ctx, clientapi.Query(query))
	if err != nil {
		return Page[api.Record]{}, err
	}
	return Page[api.Record]{
		Items:      resp.Records,
		Total:      resp.Total,
		Page:       resp.Page,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}, nil
}

func (r recordResource) Get(ctx context.Context, id int64) (api.Record, error) {
	rec, err := r.client.GetRecord(ctx, id)
	if err != nil {
		return api.Record{}, err
	}
	return *rec, nil
}

func (r recordResource) Create(ctx context.Context, data any) (api.Record, error) {
	in, ok := data.(api.RecordCreate)
	if !ok {
		return api.Record{}, fmt.Errorf("unexpected create payload %T", data)
	}
	rec, err := r.client.CreateRecord(ctx, in)
	if err != nil {
		return api.Record{}, err
	}
	return *rec, nil
}

func (r recordResource) Update(ctx context.Context, id int64, data any) (api.Record, error) {
	in, ok := data.(api.RecordUpdate)
	if !ok {
		return api.Record{}, fmt.Errorf("unexpected update payload %T", data)
	}
	rec, err := r.client.UpdateRecord(ctx, id, in)
	if err != nil {
		return api.Record{}, err
	}
	return *rec, nil
}

func (r recordResource) Delete(ctx context.Context, id int64) error {
	return r.client.DeleteRecord(ctx, id)
}
