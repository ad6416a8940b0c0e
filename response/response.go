// Package response contains the JSON bodies the service writes and the
// mapping from errors to HTTP statuses.
package response

import (
	"errors"
	"net/http"

	"TaskBoardService/models"
	"TaskBoardService/validation"
)

// RedactedMessage replaces raw errors outside development.
const RedactedMessage = "Server error"

// Message is the acknowledgement body of a write that returns no entity.
type Message struct {
	Message string `json:"message"`
}

// Created is the body of a successful create: only the generated id.
type Created struct {
	ID int64 `json:"id"`
}

// Deleted acknowledges a delete and names the removed id.
type Deleted struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ErrorItem is one validation message.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ValidationFailure is the body of a 400 caused by field rules.
type ValidationFailure struct {
	Errors []ErrorItem `json:"errors"`
}

// Failure is the body of every other error.
type Failure struct {
	Error string `json:"error"`
}

// NewValidationFailure converts collected field errors into a body.
func NewValidationFailure(errs validation.Errors) ValidationFailure {
	items := make([]ErrorItem, len(errs))
	for i, fe := range errs {
		items[i] = ErrorItem{Msg: fe.Msg}
	}
	return ValidationFailure{Errors: items}
}

// Status maps an error to its HTTP status:
// validation and empty updates are 400, a missing row 404, a unique key
// collision 409 and anything else 500.
func Status(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs), errors.Is(err, models.ErrNoUpdates):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Redact returns the raw error text in development and RedactedMessage
// everywhere else.
func Redact(err error, isDev bool) string {
	if isDev {
		return err.Error()
	}
	return RedactedMessage
}
