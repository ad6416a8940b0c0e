package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"TaskBoardService/models"
)

// ErrInvalidTask is returned when a single-task read does not carry the
// fields of a task.
var ErrInvalidTask = errors.New("invalid task")

// ErrInvalidCreateResponse is returned when a create answers without an id.
var ErrInvalidCreateResponse = errors.New("invalid create response")

// APIError is a non-2xx answer. Messages holds the {error} text or every
// {errors:[{msg}]} entry, in order.
type APIError struct {
	StatusCode int
	Messages   []string
}

func newAPIError(status int, raw []byte) *APIError {
	e := &APIError{StatusCode: status}
	var body struct {
		Error  json.RawMessage `json:"error"`
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	if json.Unmarshal(raw, &body) != nil {
		return e
	}
	var msg string
	if len(body.Error) > 0 && json.Unmarshal(body.Error, &msg) == nil && msg != "" {
		e.Messages = append(e.Messages, msg)
	} else if len(body.Error) > 0 && string(body.Error) != "null" {
		// development servers may send a raw error object
		e.Messages = append(e.Messages, string(body.Error))
	}
	for _, item := range body.Errors {
		e.Messages = append(e.Messages, item.Msg)
	}
	return e
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return http.StatusText(e.StatusCode)
	}
	return strings.Join(e.Messages, "; ")
}

// Is lets errors.Is match the service's error taxonomy: 404 is
// models.ErrNotFound, 409 is models.ErrConflict.
func (e *APIError) Is(target error) bool {
	switch target {
	case models.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case models.ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}
