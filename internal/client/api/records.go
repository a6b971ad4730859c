package api

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// ListRecords возвращает страницу записей по текущим фильтрам
func (c *Client) ListRecords(ctx context.Context, query Query) (*api.RecordListResponse, error) {
	var resp api.RecordListResponse
	if err := c.doRequest(ctx, "GET", "/records", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list records request failed: %w", err)
	}
	return &resp, nil
}

// GetRecord возвращает детали одной записи
func (c *Client) GetRecord(ctx context.Context, id int64) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/records/%d", id)
	if err := c.doRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get record request failed: %w", err)
	}
	return &resp, nil
}

// CreateRecord создает запись
func (c *Client) CreateRecord(ctx context.Context, in api.RecordCreate) (*api.Record, error) {
	var resp api.Record
	if err := c.doRequest(ctx, "POST", "/records", nil, in, &resp); err != nil {
		return nil, fmt.Errorf("create record request failed: %w", err)
	}
	return &resp, nil
}

// UpdateRecord частично обновляет запись
func (c *Client) UpdateRecord(ctx context.Context, id int64, in api.RecordUpdate) (*api.Record, error) {
	var resp api.Record
	path := fmt.Sprintf("/records/%d", id)
	if err := c.doRequest(ctx, "PUT", path, nil, in, &resp); err != nil {
		return nil, fmt.Errorf("update record request failed: %w", err)
	}
	return &resp, nil
}

// DeleteRecord удаляет запись
func (c *Client) DeleteRecord(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/records/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete record request failed: %w", err)
	}
	return nil
}

// RecordStats возвращает сводку по записям за период
func (c *Client) RecordStats(ctx context.Context, query Query) (*api.RecordStats, error) {
	var resp api.RecordStats
	if err := c.doRequest(ctx, "GET", "/records/stats/summary", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("record stats request failed: %w", err)
	}
	return &resp, nil
}
