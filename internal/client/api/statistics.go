package api

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// StatsSummary возвращает сводную статистику по фильтрам
func (c *Client) StatsSummary(ctx context.Context, query Query) (*api.StatsSummary, error) {
	var resp api.StatsSummary
	if err := c.doRequest(ctx, "GET", "/statistics/summary", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats summary request failed: %w", err)
	}
	return &resp, nil
}

// StatsByCategory возвращает разбивку по категориям
func (c *Client) StatsByCategory(ctx context.Context, query Query) (*api.CategoryStatsResponse, error) {
	var resp api.CategoryStatsResponse
	if err := c.doRequest(ctx, "GET", "/statistics/by-category", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats by category request failed: %w", err)
	}
	return &resp, nil
}

// StatsByDay возвращает разбивку по дням
func (c *Client) StatsByDay(ctx context.Context, query Query) (*api.DailyStatsResponse, error) {
	var resp api.DailyStatsResponse
	if err := c.doRequest(ctx, "GET", "/statistics/by-day", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats by day request failed: %w", err)
	}
	return &resp, nil
}

// StatsByProject возвращает разбивку по проектам
func (c *Client) StatsByProject(ctx context.Context, query Query) (*api.ProjectStatsResponse, error) {
	var resp api.ProjectStatsResponse
	if err := c.doRequest(ctx, "GET", "/statistics/by-project", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats by project request failed: %w", err)
	}
	return &resp, nil
}

// StatsTrend возвращает тренд за период day/week/month.
// Тренд не зависит от общего набора фильтров.
func (c *Client) StatsTrend(ctx context.Context, period string) (*api.TrendResponse, error) {
	var resp api.TrendResponse
	query := Query{"period": period}
	if err := c.doRequest(ctx, "GET", "/statistics/trend", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("stats trend request failed: %w", err)
	}
	return &resp, nil
}
