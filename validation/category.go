package validation

import "strings"

// MsgCategory is reported for a missing, empty or oversized category name.
const MsgCategory = "Category must be a non-empty string with a max of 255 characters"

// Category validates the body of a new category.
func (e *Engine) Category(fields map[string]any) error {
	s, ok := fields["category"].(string)
	if !ok || e.validate.Var(strings.TrimSpace(s), "min=1,max=255") != nil {
		return Errors{{Field: "category", Msg: MsgCategory}}
	}
	return nil
}
