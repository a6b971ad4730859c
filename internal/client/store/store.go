// Package store implements the reactive collection pattern shared by
// every list-backed resource: filter state, a pagination cursor,
// infinite scroll and mutations that re-read the server.
package store

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/xrs-b/MyLedger/internal/client/apierr"
)

// Canonical filter keys. Empty values are never sent to the server.
const (
	FilterType            = "type"
	FilterCategoryID      = "category_id"
	FilterCategoryItemID  = "category_item_id"
	FilterPaymentMethodID = "payment_method_id"
	FilterProjectID       = "project_id"
	FilterStartDate       = "start_date"
	FilterEndDate         = "end_date"
	FilterStatus          = "status"
)

const defaultPageSize = 20

// Page is one server page of a listed resource.
type Page[T any] struct {
	Items      []T
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// Resource is the API surface a collection is instantiated over.
// Create/Update take the resource's wire DTO; the typed store wrappers
// keep the public surface honest.
type Resource[T any] interface {
	List(ctx context.Context, query map[string]string) (Page[T], error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, data any) (T, error)
	Update(ctx context.Context, id int64, data any) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Result is the outcome of a store action. Actions never panic and
// never let a transport error escape: failures become messages.
type Result struct {
	Message string
	Success bool
}

// DataResult is a Result carrying the fetched or mutated entity.
type DataResult[T any] struct {
	Data    T
	Message string
	Success bool
}

// Pagination is the cursor recomputed from every applied list response.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// Collection держит список, его фильтры и курсор пагинации.
// Порядок элементов всегда серверный: клиент не сортирует и не
// дедуплицирует.
type Collection[T any] struct {
	res    Resource[T]
	idOf   func(T) int64
	logger *slog.Logger
	name   string

	mu       sync.Mutex
	items    []T
	current  *T
	filters  map[string]string
	page     int
	pageSize int
	total    int
	totPages int
	inflight int
	gen      uint64
	err      string
}

// New creates a collection over res. name shows up in fallback
// failure messages ("failed to load records").
func New[T any](name string, res Resource[T], idOf func(T) int64) *Collection[T] {
	return &Collection[T]{
		res:      res,
		idOf:     idOf,
		name:     name,
		logger:   slog.Default(),
		filters:  map[string]string{},
		page:     1,
		pageSize: defaultPageSize,
		totPages: 1,
	}
}

// SetPageSize overrides the default page size of 20.
func (c *Collection[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	c.mu.Lock()
	c.pageSize = size
	c.mu.Unlock()
}

// SetFilters merges partial filter updates and resets the cursor to
// page 1. An empty value clears its key. Не запускает загрузку:
// вызывающий сам делает Refresh.
func (c *Collection[T]) SetFilters(partial map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, value := range partial {
		if value == "" {
			delete(c.filters, key)
			continue
		}
		c.filters[key] = value
	}
	c.page = 1
	c.gen++
}

// ClearFilters wipes every filter key and resets the cursor.
func (c *Collection[T]) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = map[string]string{}
	c.page = 1
	c.gen++
}

// Filters returns a copy of the current filter set.
func (c *Collection[T]) Filters() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		out[k] = v
	}
	return out
}

// Items returns the loaded collection in server order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Current returns the detail entity, if one is loaded.
func (c *Collection[T]) Current() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		var zero T
		return zero, false
	}
	return *c.current, true
}

// ClearCurrent drops the detail entity (navigating away).
func (c *Collection[T]) ClearCurrent() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// Pagination returns the current cursor.
func (c *Collection[T]) Pagination() Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Pagination{Page: c.page, PageSize: c.pageSize, Total: c.total, TotalPages: c.totPages}
}

// HasMore reports whether further pages exist past the loaded ones.
func (c *Collection[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page < c.totPages
}

// Loading is true while any action is in flight.
func (c *Collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Err returns the last failure message, empty after a success.
func (c *Collection[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// ClearErr сбрасывает сообщение об ошибке
func (c *Collection[T]) ClearErr() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

// Refresh forces page 1 and replaces the collection with the page-1
// result, discarding everything loadMore had appended.
func (c *Collection[T]) Refresh(ctx context.Context) Result {
	c.mu.Lock()
	c.page = 1
	c.gen++
	gen := c.gen
	query := c.queryLocked(1)
	c.inflight++
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, false)
}

// LoadMore appends the next page in server order. No-op when the last
// page is already loaded or a fetch is in flight: без запроса,
// коллекция не меняется.
func (c *Collection[T]) LoadMore(ctx context.Context) Result {
	c.mu.Lock()
	if c.inflight > 0 || c.page >= c.totPages {
		c.mu.Unlock()
		return Result{Success: true}
	}
	c.page++
	gen := c.gen
	query := c.queryLocked(c.page)
	c.inflight++
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, true)
}

// FetchOne loads the detail entity independently of the collection.
func (c *Collection[T]) FetchOne(ctx context.Context, id int64) DataResult[T] {
	c.track(1)
	entity, err := c.res.Get(ctx, id)
	c.track(-1)
	if err != nil {
		return DataResult[T]{Message: c.fail(err, "failed to load "+c.name+" detail")}
	}

	c.mu.Lock()
	c.current = &entity
	c.err = ""
	c.mu.Unlock()
	return DataResult[T]{Success: true, Data: entity}
}

// Create performs the mutation then re-reads the server: список и
// его итоги — всегда то, что сервер вернул следующим чтением.
func (c *Collection[T]) Create(ctx context.Context, data any) DataResult[T] {
	c.track(1)
	created, err := c.res.Create(ctx, data)
	c.track(-1)
	if err != nil {
		return DataResult[T]{Message: c.fail(err, "failed to create "+c.name)}
	}

	c.Refresh(ctx)
	return DataResult[T]{Success: true, Data: created}
}

// Update performs the mutation, refreshes the list and re-fetches the
// detail entity when it was the one updated.
func (c *Collection[T]) Update(ctx context.Context, id int64, data any) DataResult[T] {
	c.track(1)
	updated, err := c.res.Update(ctx, id, data)
	c.track(-1)
	if err != nil {
		return DataResult[T]{Message: c.fail(err, "failed to update "+c.name)}
	}

	c.Refresh(ctx)
	if cur, ok := c.Current(); ok && c.idOf(cur) == id {
		c.FetchOne(ctx, id)
	}
	return DataResult[T]{Success: true, Data: updated}
}

// Delete performs the mutation, clears the detail entity when it was
// the deleted one, and refreshes the list.
func (c *Collection[T]) Delete(ctx context.Context, id int64) Result {
	c.track(1)
	err := c.res.Delete(ctx, id)
	c.track(-1)
	if err != nil {
		return Result{Message: c.fail(err, "failed to delete "+c.name)}
	}

	c.mu.Lock()
	if c.current != nil && c.idOf(*c.current) == id {
		c.current = nil
	}
	c.mu.Unlock()

	c.Refresh(ctx)
	return Result{Success: true}
}

// fetch performs a list read and applies it unless a newer filter
// change or refresh has superseded this request's generation.
func (c *Collection[T]) fetch(ctx context.Context, gen uint64, query map[string]string, appendPage bool) Result {
	page, err := c.res.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--

	if err != nil {
		c.err = apierr.MessageOr(err, "failed to load "+c.name)
		return Result{Message: c.err}
	}

	if gen != c.gen {
		// Устаревший ответ: фильтры успели смениться, отбрасываем целиком
		c.logger.Debug("discarding stale list response", "collection", c.name)
		return Result{Success: true}
	}

	c.page = page.Page
	if page.PageSize > 0 {
		c.pageSize = page.PageSize
	}
	c.total = page.Total
	c.totPages = page.TotalPages
	if c.totPages < 1 {
		c.totPages = 1
	}

	if appendPage {
		c.items = append(c.items, page.Items...)
	} else {
		c.items = page.Items
	}
	c.err = ""

	return Result{Success: true}
}

// queryLocked builds the outgoing query: filters plus cursor, empty
// values already absent. Caller holds c.mu.
func (c *Collection[T]) queryLocked(page int) map[string]string {
	query := make(map[string]string, len(c.filters)+2)
	for key, value := range c.filters {
		if value != "" {
			query[key] = value
		}
	}
	query["page"] = strconv.Itoa(page)
	query["page_size"] = strconv.Itoa(c.pageSize)
	return query
}

func (c *Collection[T]) track(delta int) {
	c.mu.Lock()
	c.inflight += delta
	c.mu.Unlock()
}

func (c *Collection[T]) fail(err error, fallback string) string {
	msg := apierr.MessageOr(err, fallback)
	c.mu.Lock()
	c.err = msg
	c.mu.Unlock()
	return msg
}
