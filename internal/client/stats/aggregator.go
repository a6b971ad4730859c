// Package stats fans out the read-only statistics views and exposes
// the derived metrics computed from the last fetched summary.
package stats

import (
	"context"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Filter keys shared by every statistics view except the trend.
const (
	FilterStartDate  = "start_date"
	FilterEndDate    = "end_date"
	FilterType       = "type"
	FilterCategoryID = "category_id"
)

// Aggregator держит сводку, разбивки и общий набор фильтров.
type Aggregator struct {
	client *clientapi.Client

	mu         sync.Mutex
	summary    *api.StatsSummary
	categories []api.CategoryStat
	daily      []api.DailyStat
	projects   []api.ProjectStat
	trend      []api.TrendPoint
	filters    map[string]string
	inflight   int
	err        string
}

// New создает агрегатор статистики
func New(client *clientapi.Client) *Aggregator {
	return &Aggregator{
		client:  client,
		filters: map[string]string{},
	}
}

// SetFilters merges partial filter updates. Не запускает загрузку.
func (a *Aggregator) SetFilters(partial map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for key, value := range partial {
		if value == "" {
			delete(a.filters, key)
			continue
		}
		a.filters[key] = value
	}
}

// ClearFilters wipes the shared filter set.
func (a *Aggregator) ClearFilters() {
	a.mu.Lock()
	a.filters = map[string]string{}
	a.mu.Unlock()
}

// LoadAll issues the four filtered views concurrently. The loading
// flag covers the whole batch and drops only once every request has
// settled; a failed sibling never aborts the others.
func (a *Aggregator) LoadAll(ctx context.Context) {
	query := a.query()

	a.track(1)
	defer a.track(-1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := a.client.StatsSummary(gctx, query)
		if err != nil {
			a.fail(err, "failed to load statistics")
			return nil
		}
		a.mu.Lock()
		a.summary = summary
		a.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		resp, err := a.client.StatsByCategory(gctx, query)
		if err != nil {
			a.fail(err, "failed to load category statistics")
			return nil
		}
		a.mu.Lock()
		a.categories = resp.Categories
		a.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		resp, err := a.client.StatsByDay(gctx, query)
		if err != nil {
			a.fail(err, "failed to load daily statistics")
			return nil
		}
		a.mu.Lock()
		a.daily = resp.Data
		a.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		resp, err := a.client.StatsByProject(gctx, query)
		if err != nil {
			a.fail(err, "failed to load project statistics")
			return nil
		}
		a.mu.Lock()
		a.projects = resp.Projects
		a.mu.Unlock()
		return nil
	})

	// Горутины сами не возвращают ошибок, ждём пока все не завершатся
	_ = g.Wait()
}

// FetchTrend loads the trend view. Independent of the shared filters.
func (a *Aggregator) FetchTrend(ctx context.Context, period string) {
	a.track(1)
	defer a.track(-1)

	resp, err := a.client.StatsTrend(ctx, period)
	if err != nil {
		a.fail(err, "failed to load trend")
		return
	}

	a.mu.Lock()
	a.trend = resp.Data
	a.mu.Unlock()
}

// Summary returns the last fetched summary, nil before a load.
func (a *Aggregator) Summary() *api.StatsSummary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.summary
}

// Categories returns the last fetched by-category rows.
func (a *Aggregator) Categories() []api.CategoryStat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.categories
}

// Daily returns the last fetched by-day rows.
func (a *Aggregator) Daily() []api.DailyStat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.daily
}

// Projects returns the last fetched by-project rows.
func (a *Aggregator) Projects() []api.ProjectStat {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.projects
}

// Trend returns the last fetched trend points.
func (a *Aggregator) Trend() []api.TrendPoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.trend
}

// NetAmount is income minus expense of the last summary, zero
// before one is fetched.
func (a *Aggregator) NetAmount() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.summary == nil {
		return 0
	}
	return a.summary.IncomeAmount - a.summary.ExpenseAmount
}

// ExpenseRate is expense/income*100 of the last summary, rounded to
// one decimal place; zero when income is not positive.
func (a *Aggregator) ExpenseRate() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.summary == nil || a.summary.IncomeAmount <= 0 {
		return 0
	}
	rate := a.summary.ExpenseAmount / a.summary.IncomeAmount * 100
	return math.Round(rate*10) / 10
}

// Loading is true while the batch or a trend fetch is in flight.
func (a *Aggregator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inflight > 0
}

// Err returns the last failure message among the settled requests.
func (a *Aggregator) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// ClearErr сбрасывает сообщение об ошибке
func (a *Aggregator) ClearErr() {
	a.mu.Lock()
	a.err = ""
	a.mu.Unlock()
}

func (a *Aggregator) query() clientapi.Query {
	a.mu.Lock()
	defer a.mu.Unlock()
	query := clientapi.Query{}
	for key, value := range a.filters {
		if value != "" {
			query[key] = value
		}
	}
	return query
}

func (a *Aggregator) track(delta int) {
	a.mu.Lock()
	a.inflight += delta
	a.mu.Unlock()
}

func (a *Aggregator) fail(err error, fallback string) {
	msg := apierr.MessageOr(err, fallback)
	a.mu.Lock()
	a.err = msg
	a.mu.Unlock()
}
