package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

type thing struct {
	ID   int64
	Name string
}

// fakeResource скриптует постраничные ответы и пишет полученные query.
type fakeResource struct {
	mu      sync.Mutex
	pages   map[string]Page[thing] // ключ — значение query["page"]
	queries []map[string]string
	listErr error
	deleted []int64
	release chan struct{} // если не nil, List ждёт сигнала
}

func (f *fakeResource) List(ctx context.Context, query map[string]string) (Page[thing], error) {
	f.mu.Lock()
	copied := make(map[string]string, len(query))
	for k, v := range query {
		copied[k] = v
	}
	f.queries = append(f.queries, copied)
	release := f.release
	f.release = nil
	f.mu.Unlock()

	if release != nil {
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return Page[thing]{}, f.listErr
	}
	page, ok := f.pages[query["page"]]
	if !ok {
		return Page[thing]{Page: 1, PageSize: 20, TotalPages: 1}, nil
	}
	return page, nil
}

func (f *fakeResource) Get(ctx context.Context, id int64) (thing, error) {
	return thing{ID: id, Name: "detail"}, nil
}

func (f *fakeResource) Create(ctx context.Context, data any) (thing, error) {
	return thing{ID: 100, Name: "created"}, nil
}

func (f *fakeResource) Update(ctx context.Context, id int64, data any) (thing, error) {
	return thing{ID: id, Name: "updated"}, nil
}

func (f *fakeResource) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeResource) lastQuery() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return nil
	}
	return f.queries[len(f.queries)-1]
}

func (f *fakeResource) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func twoPages() map[string]Page[thing] {
	return map[string]Page[thing]{
		"1": {
			Items:      []thing{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
			Total:      3, Page: 1, PageSize: 2, TotalPages: 2,
		},
		"2": {
			Items:      []thing{{ID: 3, Name: "c"}},
			Total:      3, Page: 2, PageSize: 2, TotalPages: 2,
		},
	}
}

func TestCollection_RefreshReplacesItems(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	result := c.Refresh(ctx)
	require.True(t, result.Success)

	items := c.Items()
	require.Len(t, items, 2)
	// Порядок элементов серверный
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)

	p := c.Pagination()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, c.HasMore())
}

func TestCollection_LoadMoreAppendsInOrder(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	require.True(t, c.Refresh(ctx).Success)
	require.True(t, c.LoadMore(ctx).Success)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{items[0].ID, items[1].ID, items[2].ID})
	assert.False(t, c.HasMore())

	// Последняя страница загружена: LoadMore без запроса
	calls := res.listCalls()
	require.True(t, c.LoadMore(ctx).Success)
	assert.Equal(t, calls, res.listCalls())
}

func TestCollection_RefreshDiscardsAppendedPages(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	c.Refresh(ctx)
	c.LoadMore(ctx)
	require.Len(t, c.Items(), 3)

	c.Refresh(ctx)
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 1, c.Pagination().Page)
}

func TestCollection_SetFiltersResetsCursor(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	c.Refresh(ctx)
	c.LoadMore(ctx)
	require.Equal(t, 2, c.Pagination().Page)

	c.SetFilters(map[string]string{"type": "expense"})
	assert.Equal(t, 1, c.Pagination().Page)

	c.Refresh(ctx)
	query := res.lastQuery()
	assert.Equal(t, "expense", query["type"])
	assert.Equal(t, "1", query["page"])

	// Пустое значение удаляет ключ, а не шлёт пустую строку
	c.SetFilters(map[string]string{"type": ""})
	c.Refresh(ctx)
	_, present := res.lastQuery()["type"]
	assert.False(t, present)
	assert.Empty(t, c.Filters())
}

func TestCollection_FiltersReturnsCopy(t *testing.T) {
	res := &fakeResource{}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })

	c.SetFilters(map[string]string{"status": "ongoing"})
	filters := c.Filters()
	filters["status"] = "tampered"
	assert.Equal(t, "ongoing", c.Filters()["status"])
}

// Мутация перечитывает сервер, а не патчит список локально.
func TestCollection_CreateTriggersRefresh(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	result := c.Create(ctx, "payload")
	require.True(t, result.Success)
	assert.Equal(t, int64(100), result.Data.ID)

	// Единственный List-вызов — refresh после мутации, с page=1
	require.Equal(t, 1, res.listCalls())
	assert.Equal(t, "1", res.lastQuery()["page"])
	assert.Len(t, c.Items(), 2)
}

func TestCollection_UpdateRefetchesCurrent(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	c.FetchOne(ctx, 2)
	cur, ok := c.Current()
	require.True(t, ok)
	require.Equal(t, int64(2), cur.ID)

	result := c.Update(ctx, 2, "payload")
	require.True(t, result.Success)

	cur, ok = c.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), cur.ID)
}

func TestCollection_DeleteClearsMatchingCurrent(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	c.FetchOne(ctx, 1)
	require.True(t, c.Delete(ctx, 1).Success)
	_, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, []int64{1}, res.deleted)

	// Чужой id текущую сущность не трогает
	c.FetchOne(ctx, 2)
	require.True(t, c.Delete(ctx, 3).Success)
	_, ok = c.Current()
	assert.True(t, ok)
}

func TestCollection_ErrorsBecomeMessages(t *testing.T) {
	res := &fakeResource{
		listErr: apierr.New(500, api.ErrorBody{Message: "internal error"}),
	}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	result := c.Refresh(ctx)
	require.False(t, result.Success)
	assert.Equal(t, "internal error", result.Message)
	assert.Equal(t, "internal error", c.Err())

	// Чужая ошибка без тела — fallback с именем коллекции
	res.mu.Lock()
	res.listErr = errors.New("boom")
	res.mu.Unlock()
	result = c.Refresh(ctx)
	assert.Equal(t, "failed to load things", result.Message)

	// Успех сбрасывает сообщение
	res.mu.Lock()
	res.listErr = nil
	res.mu.Unlock()
	require.True(t, c.Refresh(ctx).Success)
	assert.Empty(t, c.Err())
}

// Ответ, запрошенный до смены фильтров, не должен применяться.
func TestCollection_StaleResponseDiscarded(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	release := make(chan struct{})
	res.mu.Lock()
	res.release = release
	res.mu.Unlock()

	done := make(chan Result)
	go func() {
		done <- c.Refresh(ctx)
	}()

	// Дожидаемся, пока запрос повиснет в List, и меняем фильтры
	for res.listCalls() == 0 {
		time.Sleep(time.Millisecond)
	}
	c.SetFilters(map[string]string{"type": "income"})
	close(release)

	result := <-done
	assert.True(t, result.Success)
	// Устаревшая страница отброшена целиком
	assert.Empty(t, c.Items())
	assert.False(t, c.Loading())
}

func TestCollection_LoadMoreNoopWhileInflight(t *testing.T) {
	res := &fakeResource{pages: twoPages()}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })
	ctx := context.Background()

	c.Refresh(ctx)

	release := make(chan struct{})
	res.mu.Lock()
	res.release = release
	res.mu.Unlock()

	done := make(chan Result)
	go func() {
		done <- c.LoadMore(ctx)
	}()
	for !c.Loading() {
		time.Sleep(time.Millisecond)
	}

	// Параллельный LoadMore не шлёт второй запрос
	calls := res.listCalls()
	require.True(t, c.LoadMore(ctx).Success)
	assert.Equal(t, calls, res.listCalls())

	close(release)
	require.True(t, (<-done).Success)
	assert.Len(t, c.Items(), 3)
}

func TestCollection_SetPageSize(t *testing.T) {
	res := &fakeResource{}
	c := New[thing]("things", res, func(v thing) int64 { return v.ID })

	c.SetPageSize(50)
	c.Refresh(context.Background())
	assert.Equal(t, "50", res.lastQuery()["page_size"])

	// Нулевой и отрицательный размер игнорируются
	c.SetPageSize(0)
	assert.Equal(t, 50, c.Pagination().PageSize)
}
