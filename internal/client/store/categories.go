package store

import (
	"context"
	"sync"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/apierr"
	"github.com/xrs-b/MyLedger/pkg/api"
)

// Categories holds the grouped category tree and payment methods.
// Справочник не пагинируется и не фильтруется, поэтому это не
// Collection, а простое реактивное хранилище.
type Categories struct {
	client *clientapi.Client

	mu             sync.Mutex
	groups         api.CategoryGroups
	paymentMethods []api.PaymentMethod
	inflight       int
	err            string
}

// NewCategories создает хранилище справочника категорий
func NewCategories(client *clientapi.Client) *Categories {
	return &Categories{client: client}
}

// FetchAll загружает все категории с подкатегориями
func (c *Categories) FetchAll(ctx context.Context) Result {
	c.track(1)
	groups, err := c.client.Categories(ctx)
	c.track(-1)
	if err != nil {
		return Result{Message: c.fail(err, "failed to load categories")}
	}

	c.mu.Lock()
	c.groups = *groups
	c.err = ""
	c.mu.Unlock()
	return Result{Success: true}
}

// FetchPaymentMethods загружает способы оплаты
func (c *Categories) FetchPaymentMethods(ctx context.Context) Result {
	c.track(1)
	methods, err := c.client.PaymentMethods(ctx)
	c.track(-1)
	if err != nil {
		return Result{Message: c.fail(err, "failed to load payment methods")}
	}

	c.mu.Lock()
	c.paymentMethods = methods
	c.err = ""
	c.mu.Unlock()
	return Result{Success: true}
}

// Expense returns the loaded expense categories.
func (c *Categories) Expense() []api.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups.Expense
}

// Income returns the loaded income categories.
func (c *Categories) Income() []api.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups.Income
}

// ByType returns categories of one kind, nil for an unknown kind.
func (c *Categories) ByType(categoryType string) []api.Category {
	switch categoryType {
	case api.RecordTypeExpense:
		return c.Expense()
	case api.RecordTypeIncome:
		return c.Income()
	default:
		return nil
	}
}

// PaymentMethods returns the loaded payment methods.
func (c *Categories) PaymentMethods() []api.PaymentMethod {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paymentMethods
}

// Loading is true while a fetch is in flight.
func (c *Categories) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Err returns the last failure message.
func (c *Categories) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Categories) track(delta int) {
	c.mu.Lock()
	c.inflight += delta
	c.mu.Unlock()
}

func (c *Categories) fail(err error, fallback string) string {
	msg := apierr.MessageOr(err, fallback)
	c.mu.Lock()
	c.err = msg
	c.mu.Unlock()
	return msg
}
