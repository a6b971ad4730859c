package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Admin bundles the administrative collections and dashboard stats.
// Endpoints require an admin token; a 403 surfaces as a plain failure
// message like any other error.
type Admin struct {
	Users   *Collection[api.User]
	Records *Collection[api.Record]
	client  *clientapi.Client

	mu    sync.Mutex
	stats *api.AdminStats
	err   string
}

// NewAdmin создает административные коллекции
func NewAdmin(client *clientapi.Client) *Admin {
	return &Admin{
		client: client,
		Users: New[api.User]("users", adminUserResource{client: client}, func(u api.User) int64 {
			return u.ID
		}),
		Records: New[api.Record]("records", adminRecordResource{client: client}, func(r api.Record) int64 {
			return r.ID
		}),
	}
}

// FetchStats загружает сводку панели администратора
func (a *Admin) FetchStats(ctx context.Context) DataResult[api.AdminStats] {
	stats, err := a.client.AdminStats(ctx)
	if err != nil {
		msg := apierr.MessageOr(err, "failed to load admin stats")
		a.mu.Lock()
		a.err = msg
		a.mu.Unlock()
		return DataResult[api.AdminStats]{Message: msg}
	}

	a.mu.Lock()
	a.stats = stats
	a.err = ""
	a.mu.Unlock()
	return DataResult[api.AdminStats]{Success: true, Data: *stats}
}

// Stats returns the last fetched dashboard stats, nil before a fetch.
func (a *Admin) Stats() *api.AdminStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Err returns the last failure of the stats fetch; collection errors
// live on the collections themselves.
func (a *Admin) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// UpdateUser обновляет пользователя и перечитывает список
func (a *Admin) UpdateUser(ctx context.Context, id int64, in api.UserUpdate) DataResult[api.User] {
	return a.Users.Update(ctx, id, in)
}

// adminUserResource adapts /admin/users. Сервер отдаёт голый массив
// без итогов, поэтому курсор выводим из заполненности страницы:
// неполная страница считается последней.
type adminUserResource struct {
	client *clientapi.Client
}

func (r adminUserResource) List(ctx context.Context, query map[string]string) (Page[api.User], error) {
	users, err := r.client.AdminUsers(ctx, clientapi.Query(query))
	if err != nil {
		return Page[api.User]{}, err
	}

	page, _ := strconv.Atoi(query["page"])
	if page < 1 {
		page = 1
	}
	size, _ := strconv.Atoi(query["page_size"])
	if size < 1 {
		size = defaultPageSize
	}

	totalPages := page
	if len(users) == size {
		totalPages = page + 1
	}

	return Page[api.User]{
		Items:      users,
		Total:      (page-1)*size + len(users), // lower bound, server keeps the real total to itself
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

func (r adminUserResource) Get(ctx context.Context, id int64) (api.User, error) {
	return api.User{}, fmt.Errorf("admin user detail endpoint does not exist")
}

func (r adminUserResource) Create(ctx context.Context, data any) (api.User, error) {
	return api.User{}, fmt.Errorf("users are created through registration")
}

func (r adminUserResource) Update(ctx context.Context, id int64, data any) (api.User, error) {
	in, ok := data.(api.UserUpdate)
	if !ok {
		return api.User{}, fmt.Errorf("unexpected update payload %T", data)
	}
	user, err := r.client.AdminUpdateUser(ctx, id, in)
	if err != nil {
		return api.User{}, err
	}
	return *user, nil
}

func (r adminUserResource) Delete(ctx context.Context, id int64) error {
	return r.client.AdminDeleteUser(ctx, id)
}

// adminRecordResource adapts /admin/records, same envelope as the
// user-scoped record list.
type adminRecordResource struct {
	client *clientapi.Client
}

func (r adminRecordResource) List(ctx context.Context, query map[string]string) (Page[api.Record], error) {
	resp, err := r.client.AdminRecords(ctx, clientapi.Query(query))
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

func (r adminRecordResource) Get(ctx context.Context, id int64) (api.Record, error) {
	return api.Record{}, fmt.Errorf("admin record detail endpoint does not exist")
}

func (r adminRecordResource) Create(ctx context.Context, data any) (api.Record, error) {
	return api.Record{}, fmt.Errorf("records are created by their owners")
}

func (r adminRecordResource) Update(ctx context.Context, id int64, data any) (api.Record, error) {
	return api.Record{}, fmt.Errorf("records are updated by their owners")
}

func (r adminRecordResource) Delete(ctx context.Context, id int64) error {
	return r.client.AdminDeleteRecord(ctx, id)
}
