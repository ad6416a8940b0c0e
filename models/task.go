// Package models contains the data models for the application to be used in request handling
// and by the client-side cache.
package models

import "time"

// Priority is the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every accepted priority in display order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Status is the workflow state of a task. It is the only persisted
// source of truth for completion.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every accepted status in workflow order.
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

const (
	// DateLayout is the date-only wire format of a due date.
	DateLayout = "2006-01-02"
	// TimestampLayout is fixed width so that view timestamps compare lexically.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Task represents a persisted task as it travels on the wire.
// Task has the following properties:
// - ID: server assigned, immutable.
// - UserID, CategoryID: owners of the task, nil once the owner row is gone.
// - Title: 1 to 255 characters after trimming.
// - Description: optional free text.
// - DueDate: optional date in YYYY-MM-DD form.
// - Priority, Status: closed enums, defaulted to Medium and Pending on create.
// - CreatedAt, UpdatedAt: set by the persistence layer.
//
// Completion is read from Status; see TaskView.
type Task struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	CategoryID  *int64    `json:"category_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskView is the client-side shape of a task. Completed is derived from
// Status every time a TaskView is built and is never sent to the server.
type TaskView struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	CategoryID  *int64   `json:"category_id"`
	UserID      *int64   `json:"user_id"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	CreatedAt   string   `json:"created_at"`
}

// View projects a canonical task into its client view.
func (t Task) View() TaskView {
	v := TaskView{
		ID:         t.ID,
		Title:      t.Title,
		CategoryID: t.CategoryID,
		UserID:     t.UserID,
		Completed:  t.Status == StatusCompleted,
		Priority:   t.Priority,
		Status:     t.Status,
	}
	if t.Description != nil {
		v.Description = *t.Description
	}
	if t.DueDate != nil {
		v.DueDate = *t.DueDate
	}
	if !t.CreatedAt.IsZero() {
		v.CreatedAt = t.CreatedAt.UTC().Format(TimestampLayout)
	}
	return v
}
