// Package validation contains the field rules for task input.
//
// The same engine backs two callers: the HTTP handlers, where it is the only
// gate that can deny a write, and the client form, where it gives advisory
// feedback before any request is sent. Every rule is checked independently
// and all violations are collected.
package validation

import (
	"encoding/json"
	"math"
	"strings"

	"TaskBoardService/models"

	"github.com/go-playground/validator/v10"
)

// Field names in the canonical order in which they are checked and persisted.
const (
	FieldUserID      = "user_id"
	FieldCategoryID  = "category_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
	FieldPriority    = "priority"
	FieldStatus      = "status"
)

// TaskFields is the canonical field order.
var TaskFields = []string{
	FieldUserID,
	FieldCategoryID,
	FieldTitle,
	FieldDescription,
	FieldDueDate,
	FieldPriority,
	FieldStatus,
}

const (
	MsgUserID      = "User ID must be a positive integer"
	MsgCategoryID  = "Category ID must be a positive integer"
	MsgTitle       = "Title must be a string between 1 and 255 characters"
	MsgDescription = "Description must be a string"
	MsgDueDate     = "Due date must be a valid date in YYYY-MM-DD format"
	MsgPriority    = "Priority must be one of: Low, Medium, High"
	MsgStatus      = "Status must be one of: Pending, In Progress, Completed"
)

// Engine checks candidate task fields.
type Engine struct {
	validate *validator.Validate
}

// New returns an Engine with the task specific tags registered.
func New() *Engine {
	v := validator.New()
	v.RegisterValidation("priority", PriorityValidator)
	v.RegisterValidation("taskstatus", StatusValidator)
	return &Engine{validate: v}
}

// PriorityValidator accepts Low, Medium and High.
func PriorityValidator(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).Valid()
}

// StatusValidator accepts Pending, In Progress and Completed.
func StatusValidator(fl validator.FieldLevel) bool {
	return models.Status(fl.Field().String()).Valid()
}

// Create validates the fields of a new task. user_id, category_id and
// title are mandatory.
func (e *Engine) Create(fields map[string]any) error {
	return e.check(fields, true)
}

// Update validates a partial update. Every field is optional, but an update
// without any field fails with models.ErrNoUpdates.
func (e *Engine) Update(fields map[string]any) error {
	if len(fields) == 0 {
		return models.ErrNoUpdates
	}
	return e.check(fields, false)
}

func (e *Engine) check(fields map[string]any, create bool) error {
	var errs Errors
	for _, name := range TaskFields {
		v, present := fields[name]
		if !present && !(create && required(name)) {
			continue
		}
		if msg := e.rule(name, v, present); msg != "" {
			errs = append(errs, FieldError{Field: name, Msg: msg})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func required(name string) bool {
	return name == FieldUserID || name == FieldCategoryID || name == FieldTitle
}

// rule returns the message for a violated rule, or "" when v passes.
func (e *Engine) rule(name string, v any, present bool) string {
	switch name {
	case FieldUserID, FieldCategoryID:
		n, ok := Int(v)
		if !present || !ok || e.validate.Var(n, "gt=0") != nil {
			if name == FieldUserID {
				return MsgUserID
			}
			return MsgCategoryID
		}
	case FieldTitle:
		s, ok := v.(string)
		if !present || !ok || e.validate.Var(strings.TrimSpace(s), "min=1,max=255") != nil {
			return MsgTitle
		}
	case FieldDescription:
		if _, ok := v.(string); !ok && v != nil {
			return MsgDescription
		}
	case FieldDueDate:
		if v == nil {
			return ""
		}
		s, ok := v.(string)
		if !ok || e.validate.Var(s, "datetime="+models.DateLayout) != nil {
			return MsgDueDate
		}
	case FieldPriority:
		s, ok := v.(string)
		if !ok || e.validate.Var(s, "priority") != nil {
			return MsgPriority
		}
	case FieldStatus:
		s, ok := v.(string)
		if !ok || e.validate.Var(s, "taskstatus") != nil {
			return MsgStatus
		}
	}
	return ""
}

// Int converts a decoded JSON value to an integer. It accepts json.Number
// and Go integer and float kinds holding an integral value.
func Int(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatInt(f)
	case float64:
		return floatInt(n)
	case float32:
		return floatInt(float64(n))
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func floatInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
