package commands

import (
	"TaskBoardService/models"
	"TaskBoardService/validation"
)

// CreateTaskCommand represents a command to create a task. It is built from
// fields that already passed validation.Engine.Create.
type CreateTaskCommand struct {
	UserID      int64
	CategoryID  int64
	Title       string
	Description *string
	DueDate     *string
	Priority    models.Priority
	Status      models.Status
}

// NewCreateTaskCommand applies the server defaults: priority Medium and
// status Pending.
func NewCreateTaskCommand(f Fields) CreateTaskCommand {
	cmd := CreateTaskCommand{
		Priority: models.PriorityMedium,
		Status:   models.StatusPending,
	}
	cmd.UserID, _ = validation.Int(f[validation.FieldUserID])
	cmd.CategoryID, _ = validation.Int(f[validation.FieldCategoryID])
	cmd.Title, _ = f[validation.FieldTitle].(string)
	if s, ok := f[validation.FieldDescription].(string); ok {
		cmd.Description = &s
	}
	if s, ok := f[validation.FieldDueDate].(string); ok {
		cmd.DueDate = &s
	}
	if s, ok := f[validation.FieldPriority].(string); ok {
		cmd.Priority = models.Priority(s)
	}
	if s, ok := f[validation.FieldStatus].(string); ok {
		cmd.Status = models.Status(s)
	}
	return cmd
}

// UpdateTaskCommand represents a command to update a subset of a task's
// columns. Changes maps a column name to its new value; a nil value sets
// the column to NULL. Columns not in Changes are left untouched.
type UpdateTaskCommand struct {
	ID      int64
	Changes map[string]any
}

// NewUpdateTaskCommand keeps only known task columns from validated fields.
// Unknown keys are dropped, so a body made only of unknown keys yields an
// empty change set that persistence rejects.
func NewUpdateTaskCommand(id int64, f Fields) UpdateTaskCommand {
	changes := make(map[string]any, len(f))
	for _, name := range validation.TaskFields {
		v, ok := f[name]
		if !ok {
			continue
		}
		switch name {
		case validation.FieldUserID, validation.FieldCategoryID:
			n, _ := validation.Int(v)
			changes[name] = n
		default:
			changes[name] = v
		}
	}
	return UpdateTaskCommand{ID: id, Changes: changes}
}

// DeleteTaskCommand represents a command to delete a task.
type DeleteTaskCommand struct {
	ID int64 `json:"id"`
}
