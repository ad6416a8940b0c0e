package commands

import "strings"

// CreateCategoryCommand represents a command to create a category.
type CreateCategoryCommand struct {
	Category string
}

// NewCreateCategoryCommand builds the command from fields that passed
// validation.Engine.Category. The stored name is trimmed.
func NewCreateCategoryCommand(f Fields) CreateCategoryCommand {
	name, _ := f["category"].(string)
	return CreateCategoryCommand{Category: strings.TrimSpace(name)}
}
