package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"TaskBoardService/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var errs Errors
	require.ErrorAs(t, err, &errs)
	return errs.Messages()
}

func TestCreateRequiredFields(t *testing.T) {
	err := New().Create(map[string]any{})
	assert.Equal(t, []string{MsgUserID, MsgCategoryID, MsgTitle}, messages(t, err))
}

func TestCreateValid(t *testing.T) {
	err := New().Create(map[string]any{
		"user_id":     json.Number("1"),
		"category_id": json.Number("2"),
		"title":       "Buy milk",
		"description": "two litres",
		"due_date":    "2024-02-29",
		"priority":    "High",
		"status":      "In Progress",
	})
	assert.NoError(t, err)
}

func TestCreateCollectsEveryViolation(t *testing.T) {
	err := New().Create(map[string]any{
		"user_id":     json.Number("0"),
		"category_id": json.Number("1.5"),
		"title":       "   ",
		"description": json.Number("3"),
		"due_date":    "2023-02-30",
		"priority":    "Urgent",
		"status":      "Done",
	})
	assert.Equal(t, []string{
		MsgUserID,
		MsgCategoryID,
		MsgTitle,
		MsgDescription,
		MsgDueDate,
		MsgPriority,
		MsgStatus,
	}, messages(t, err))
}

func TestTitleBounds(t *testing.T) {
	tests := []struct {
		name  string
		title any
		ok    bool
	}{
		{"empty", "", false},
		{"blank", " \t ", false},
		{"one char", "a", true},
		{"padded", "  a  ", true},
		{"max", strings.Repeat("x", 255), true},
		{"max after trim", "  " + strings.Repeat("x", 255) + "  ", true},
		{"too long", strings.Repeat("x", 256), false},
		{"not a string", json.Number("5"), false},
		{"null", nil, false},
	}
	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Update(map[string]any{"title": tt.title})
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, []string{MsgTitle}, messages(t, err))
			}
		})
	}
}

func TestDueDate(t *testing.T) {
	tests := []struct {
		due any
		ok  bool
	}{
		{"2024-01-05", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-1-5", false},
		{"05/01/2024", false},
		{"2024-01-05T00:00:00Z", false},
		{"", false},
		{nil, true},
		{json.Number("20240105"), false},
	}
	v := New()
	for _, tt := range tests {
		err := v.Update(map[string]any{"due_date": tt.due})
		if tt.ok {
			assert.NoError(t, err, "%v", tt.due)
		} else {
			assert.Equal(t, []string{MsgDueDate}, messages(t, err), "%v", tt.due)
		}
	}
}

func TestIDs(t *testing.T) {
	tests := []struct {
		id any
		ok bool
	}{
		{json.Number("1"), true},
		{json.Number("42"), true},
		{json.Number("3.0"), true},
		{int64(7), true},
		{float64(7), true},
		{json.Number("0"), false},
		{json.Number("-1"), false},
		{json.Number("2.5"), false},
		{"1", false},
		{true, false},
		{nil, false},
	}
	v := New()
	for _, tt := range tests {
		err := v.Update(map[string]any{"user_id": tt.id, "category_id": tt.id})
		if tt.ok {
			assert.NoError(t, err, "%v", tt.id)
		} else {
			assert.Equal(t, []string{MsgUserID, MsgCategoryID}, messages(t, err), "%v", tt.id)
		}
	}
}

func TestEnums(t *testing.T) {
	v := New()
	for _, p := range models.Priorities {
		assert.NoError(t, v.Update(map[string]any{"priority": string(p)}))
	}
	for _, s := range models.Statuses {
		assert.NoError(t, v.Update(map[string]any{"status": string(s)}))
	}
	assert.Equal(t, []string{MsgPriority}, messages(t, v.Update(map[string]any{"priority": "low"})))
	assert.Equal(t, []string{MsgStatus}, messages(t, v.Update(map[string]any{"status": "completed"})))
	assert.Equal(t, []string{MsgStatus}, messages(t, v.Update(map[string]any{"status": nil})))
}

func TestUpdateEmpty(t *testing.T) {
	assert.ErrorIs(t, New().Update(map[string]any{}), models.ErrNoUpdates)
	assert.ErrorIs(t, New().Update(nil), models.ErrNoUpdates)
}

func TestUpdateUnknownFieldsPass(t *testing.T) {
	// unknown keys are not checked here; persistence drops them
	assert.NoError(t, New().Update(map[string]any{"completed": true}))
}

func TestDescriptionMayBeClearedOrLong(t *testing.T) {
	v := New()
	assert.NoError(t, v.Update(map[string]any{"description": nil}))
	assert.NoError(t, v.Update(map[string]any{"description": strings.Repeat("d", 10000)}))
}

func TestErrorsString(t *testing.T) {
	errs := Errors{{Field: "title", Msg: "a"}, {Field: "status", Msg: "b"}}
	assert.Equal(t, "a; b", errs.Error())
}

func TestCategory(t *testing.T) {
	v := New()
	assert.NoError(t, v.Category(map[string]any{"category": " Work "}))
	for _, bad := range []any{nil, "", "   ", strings.Repeat("c", 256), json.Number("1")} {
		err := v.Category(map[string]any{"category": bad})
		assert.Equal(t, []string{MsgCategory}, messages(t, err), "%v", bad)
	}
}
