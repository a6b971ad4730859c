package api

import (
	"context"
	"fmt"

	"github.com/xrs-b/MyLedger/pkg/api"
)

// Административные эндпоинты. Все требуют is_admin, иначе сервер
// отвечает 403, который нормализуется как обычная ошибка валидации.

// AdminStats возвращает сводку панели администратора
func (c *Client) AdminStats(ctx context.Context) (*api.AdminStats, error) {
	var resp api.AdminStats
	if err := c.doRequest(ctx, "GET", "/admin/stats", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin stats request failed: %w", err)
	}
	return &resp, nil
}

// AdminUsers возвращает страницу пользователей.
// Сервер не сообщает общее количество, только содержимое страницы.
func (c *Client) AdminUsers(ctx context.Context, query Query) ([]api.User, error) {
	var resp []api.User
	if err := c.doRequest(ctx, "GET", "/admin/users", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin users request failed: %w", err)
	}
	return resp, nil
}

// AdminUpdateUser обновляет пользователя
func (c *Client) AdminUpdateUser(ctx context.Context, id int64, in api.UserUpdate) (*api.User, error) {
	var resp api.User
	path := fmt.Sprintf("/admin/users/%d", id)
	if err := c.doRequest(ctx, "PUT", path, nil, in, &resp); err != nil {
		return nil, fmt.Errorf("admin update user request failed: %w", err)
	}
	return &resp, nil
}

// AdminDeleteUser удаляет пользователя
func (c *Client) AdminDeleteUser(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/admin/users/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("admin delete user request failed: %w", err)
	}
	return nil
}

// AdminRecords возвращает страницу записей всех пользователей
func (c *Client) AdminRecords(ctx context.Context, query Query) (*api.RecordListResponse, error) {
	var resp api.RecordListResponse
	if err := c.doRequest(ctx, "GET", "/admin/records", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin records request failed: %w", err)
	}
	return &resp, nil
}

// AdminDeleteRecord удаляет любую запись
func (c *Client) AdminDeleteRecord(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/admin/records/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("admin delete record request failed: %w", err)
	}
	return nil
}

// AdminProjects возвращает страницу проектов всех пользователей
func (c *Client) AdminProjects(ctx context.Context, query Query) ([]api.Project, error) {
	var resp []api.Project
	if err := c.doRequest(ctx, "GET", "/admin/projects", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin projects request failed: %w", err)
	}
	return resp, nil
}

// AdminDeleteProject удаляет любой проект
func (c *Client) AdminDeleteProject(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/admin/projects/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("admin delete project request failed: %w", err)
	}
	return nil
}

// AdminCategories возвращает список категорий, опционально по виду
func (c *Client) AdminCategories(ctx context.Context, categoryType string) ([]api.Category, error) {
	var resp []api.Category
	query := Query{"type": categoryType}
	if err := c.doRequest(ctx, "GET", "/admin/categories", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin categories request failed: %w", err)
	}
	return resp, nil
}

// AdminCreateCategory создает категорию
func (c *Client) AdminCreateCategory(ctx context.Context, in api.CategoryCreate) (*api.Category, error) {
	var resp api.Category
	if err := c.doRequest(ctx, "POST", "/admin/categories", nil, in, &resp); err != nil {
		return nil, fmt.Errorf("admin create category request failed: %w", err)
	}
	return &resp, nil
}

// AdminDeleteCategory удаляет категорию
func (c *Client) AdminDeleteCategory(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/admin/categories/%d", id)
	if err := c.doRequest(ctx, "DELETE", path, nil, nil, nil); err != nil {
		return fmt.Errorf("admin delete category request failed: %w", err)
	}
	return nil
}

// AdminPaymentMethods возвращает способы оплаты
func (c *Client) AdminPaymentMethods(ctx context.Context) ([]api.PaymentMethod, error) {
	var resp []api.PaymentMethod
	if err := c.doRequest(ctx, "GET", "/admin/payment-methods", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("admin payment methods request failed: %w", err)
	}
	return resp, nil
}
