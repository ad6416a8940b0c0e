package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"TaskBoardService/models"
)

// ListCategories sends GET /category. The service answers 404 when there
// are no categories; that is returned as an empty list.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := c.list(ctx, "/category", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListUsers sends GET /user, with the same empty-list handling as
// ListCategories.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := c.list(ctx, "/user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateCategory sends POST /category and returns the generated id.
func (c *Client) CreateCategory(ctx context.Context, name string) (int64, error) {
	raw, err := c.do(ctx, http.MethodPost, "/category", map[string]any{"category": name})
	if err != nil {
		return 0, err
	}
	var body struct {
		ID *int64 `json:"id"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.ID == nil {
		return 0, ErrInvalidCreateResponse
	}
	return *body.ID, nil
}

func (c *Client) list(ctx context.Context, path string, dst any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
