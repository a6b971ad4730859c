package api

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// Categories возвращает все категории, сгруппированные по виду,
// каждая вместе со своими подкатегориями.
func (c *Client) Categories(ctx context.Context) (*api.CategoryGroups, error) {
	var resp api.CategoryGroups
	if err := c.doRequest(ctx, "GET", "/categories", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("categories request failed: %w", err)
	}
	return &resp, nil
}

// ListCategories возвращает плоский список категорий одного вида.
// Пустой categoryType означает все категории.
func (c *Client) ListCategories(ctx context.Context, categoryType string) ([]api.Category, error) {
	var resp []api.Category
	query := Query{"type": categoryType}
	if err := c.doRequest(ctx, "GET", "/categories/list", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories request failed: %w", err)
	}
	return resp, nil
}

// CategoryItems возвращает подкатегории, опционально одной категории.
// Нулевой categoryID означает все подкатегории.
func (c *Client) CategoryItems(ctx context.Context, categoryID int64) ([]api.CategoryItem, error) {
	query := Query{}
	if categoryID != 0 {
		query["category_id"] = fmt.Sprintf("%d", categoryID)
	}
	var resp []api.CategoryItem
	if err := c.doRequest(ctx, "GET", "/categories/items", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("category items request failed: %w", err)
	}
	return resp, nil
}

// PaymentMethods возвращает список способов оплаты
func (c *Client) PaymentMethods(ctx context.Context) ([]api.PaymentMethod, error) {
	var resp []api.PaymentMethod
	if err := c.doRequest(ctx, "GET", "/categories/payment-methods", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("payment methods request failed: %w", err)
	}
	return resp, nil
}
