package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"TaskBoardService/models"
	"TaskBoardService/validation"
)

// CreateTask sends POST /task and returns the generated id. The server does
// not echo the task; read it back with GetTask.
func (c *Client) CreateTask(ctx context.Context, fields map[string]any) (int64, error) {
	raw, err := c.do(ctx, http.MethodPost, "/task", fields)
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

// GetTask sends GET /task/{id}.
func (c *Client) GetTask(ctx context.Context, id int64) (models.Task, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/task/%d", id), nil)
	if err != nil {
		return models.Task{}, err
	}
	return decodeTask(raw)
}

// ListTasks sends GET /task. The list keeps the server order, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	raw, err := c.do(ctx, http.MethodGet, "/task", nil)
	if err != nil {
		return nil, err
	}
	return decodeTasks(raw), nil
}

// UpdateTask sends PUT /task/{id} with the fields in patch.
//
// patch is normalized first and never modified in place: a completed flag
// is turned into a status (true means Completed, false keeps whatever
// status the patch carries) and dropped, and an empty due_date is sent as
// null so that the column is cleared.
func (c *Client) UpdateTask(ctx context.Context, id int64, patch map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/task/%d", id), NormalizePatch(patch))
	return err
}

// DeleteTask sends DELETE /task/{id} and returns the removed id.
func (c *Client) DeleteTask(ctx context.Context, id int64) (int64, error) {
	if _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", id), nil); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateAndReload creates a task and reads the canonical record back.
func (c *Client) CreateAndReload(ctx context.Context, fields map[string]any) (models.TaskView, error) {
	id, err := c.CreateTask(ctx, fields)
	if err != nil {
		return models.TaskView{}, err
	}
	t, err := c.GetTask(ctx, id)
	if err != nil {
		return models.TaskView{}, fmt.Errorf("failed to fetch created task: %w", err)
	}
	return t.View(), nil
}

// UpdateAndReload updates a task and reads the canonical record back. A
// task deleted between the two calls surfaces as models.ErrNotFound.
func (c *Client) UpdateAndReload(ctx context.Context, id int64, patch map[string]any) (models.TaskView, error) {
	if err := c.UpdateTask(ctx, id, patch); err != nil {
		return models.TaskView{}, err
	}
	t, err := c.GetTask(ctx, id)
	if err != nil {
		return models.TaskView{}, fmt.Errorf("failed to fetch updated task: %w", err)
	}
	return t.View(), nil
}

// NormalizePatch returns a copy of patch fit for the wire.
func NormalizePatch(patch map[string]any) map[string]any {
	body := make(map[string]any, len(patch))
	for k, v := range patch {
		body[k] = v
	}
	if v, ok := body["completed"]; ok {
		if done, ok := v.(bool); ok && done {
			body[validation.FieldStatus] = string(models.StatusCompleted)
		}
		delete(body, "completed")
	}
	if v, ok := body[validation.FieldDueDate]; ok {
		if s, ok := v.(string); ok && s == "" {
			body[validation.FieldDueDate] = nil
		}
	}
	return body
}
