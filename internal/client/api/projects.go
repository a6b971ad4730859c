package api

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// ListProjects возвращает список проектов, опционально по статусу
func (c *Client) ListProjects(ctx context.Context, query Query) (*api.ProjectListResponse, error) {
	var resp api.ProjectListResponse
	if err := c.doRequest(ctx, "GET", "/projects", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list projects request failed: %w", err)
	}
	return &resp, nil
}

// GetProject возвращает детали проекта вместе со связанными записями
func (c *Client) GetProject(ctx context.Context, id int64) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.doRequest(ctx, "GET", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get project request failed: %w", err)
	}
	return &resp, nil
}

// CreateProject создает проект
func (c *Client) CreateProject(ctx context.Context, in api.ProjectCreate) (*api.Project, error) {
	var resp api.Project
	if err := c.doRequest(ctx, "POST", "/projects", nil, in, &resp); err != nil {
		return nil, fmt.Errorf("create project request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProject частично обновляет проект
func (c *Client) UpdateProject(ctx context.Context, id int64, in api.ProjectUpdate) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.doRequest(ctx, "PUT", path, nil, in, &resp); err != nil {
		return nil, fmt.Errorf("update project request failed: %w", err)
	}
	return &resp, nil
}

// DeleteProject удаляет проект
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/projects/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("delete project request failed: %w", err)
	}
	return nil
}

// CompleteProject переводит проект в статус completed
func (c *Client) CompleteProject(ctx context.Context, id int64) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/projects/%d/complete", id)
	if err := c.doRequest(ctx, "POST", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("complete project request failed: %w", err)
	}
	return &resp, nil
}

// ReopenProject возвращает проект в статус ongoing
func (c *Client) ReopenProject(ctx context.Context, id int64) (*api.Project, error) {
	var resp api.Project
	path := fmt.Sprintf("/projects/%d/reopen", id)
	if err := c.doRequest(ctx, "POST", path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("reopen project request failed: %w", err)
	}
	return &resp, nil
}
