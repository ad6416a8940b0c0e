package validation

import (
	"fmt"
	"strconv"
	"strings"

	"TaskBoardService/models"
)

// MaxTitleLen is the longest accepted title after trimming.
const MaxTitleLen = 255

// Form is the editable client view of a task. Every input is kept as the
// user typed it; Fields converts it to wire fields.
type Form struct {
	Title       string
	Description string
	DueDate     string
	CategoryID  string
	UserID      string
	Completed   bool
	Priority    models.Priority
}

// FormErrors maps a form field to its advisory message.
type FormErrors map[string]string

// FormFromTask fills a form for editing an existing task.
func FormFromTask(t models.TaskView) Form {
	f := Form{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Completed:   t.Status == models.StatusCompleted,
		Priority:    t.Priority,
	}
	if t.CategoryID != nil {
		f.CategoryID = strconv.FormatInt(*t.CategoryID, 10)
	}
	if t.UserID != nil {
		f.UserID = strconv.FormatInt(*t.UserID, 10)
	}
	if f.Priority == "" {
		f.Priority = models.PriorityMedium
	}
	return f
}

// Form runs the advisory client checks. They are allowed to differ from the
// server rules; only the server can deny a write.
func (e *Engine) Form(f Form) FormErrors {
	errs := FormErrors{}
	title := strings.TrimSpace(f.Title)
	switch {
	case title == "":
		errs[FieldTitle] = "Title is required"
	case e.validate.Var(title, fmt.Sprintf("max=%d", MaxTitleLen)) != nil:
		errs[FieldTitle] = fmt.Sprintf("Title must be %d characters or less", MaxTitleLen)
	}
	if f.CategoryID == "" {
		errs[FieldCategoryID] = "Category is required"
	}
	if f.UserID == "" {
		errs[FieldUserID] = "User is required"
	}
	if f.DueDate != "" && e.validate.Var(f.DueDate, "datetime="+models.DateLayout) != nil {
		errs[FieldDueDate] = "Invalid date"
	}
	if e.validate.Var(string(f.Priority), "priority") != nil {
		errs[FieldPriority] = "Invalid priority"
	}
	return errs
}

// Fields converts the form into wire fields. The completed checkbox is
// sent as a status, since the server stores nothing else.
func (f Form) Fields() map[string]any {
	fields := map[string]any{
		FieldTitle:       f.Title,
		FieldDescription: f.Description,
		FieldPriority:    string(f.Priority),
		FieldStatus:      string(models.StatusPending),
	}
	if f.Completed {
		fields[FieldStatus] = string(models.StatusCompleted)
	}
	if f.DueDate != "" {
		fields[FieldDueDate] = f.DueDate
	}
	if f.CategoryID != "" {
		fields[FieldCategoryID] = idValue(f.CategoryID)
	}
	if f.UserID != "" {
		fields[FieldUserID] = idValue(f.UserID)
	}
	return fields
}

// idValue keeps unparsable input as text so the server reports it.
func idValue(s string) any {
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		return n
	}
	return s
}
