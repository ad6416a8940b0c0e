package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"TaskBoardService/models"
	"TaskBoardService/validation"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validation.Errors{{Field: "title", Msg: "bad"}}, http.StatusBadRequest},
		{models.ErrNoUpdates, http.StatusBadRequest},
		{fmt.Errorf("task 3: %w", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: duplicate", models.ErrConflict), http.StatusConflict},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Status(tt.err), tt.err.Error())
	}
}

func TestRedact(t *testing.T) {
	err := errors.New("dial tcp: connection refused")
	assert.Equal(t, err.Error(), Redact(err, true))
	assert.Equal(t, RedactedMessage, Redact(err, false))
}

func TestNewValidationFailure(t *testing.T) {
	body := NewValidationFailure(validation.Errors{{Field: "title", Msg: "a"}, {Field: "status", Msg: "b"}})
	assert.Equal(t, ValidationFailure{Errors: []ErrorItem{{Msg: "a"}, {Msg: "b"}}}, body)
}
