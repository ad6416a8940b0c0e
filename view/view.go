// Package view derives what a task list shows from cached tasks: a filter
// on the completed flag, a sort, and grouping by category.
package view

import (
	"fmt"
	"sort"

	"TaskBoardService/models"
)

// Filter selects tasks by their completed flag.
type Filter string

const (
	All       Filter = "all"
	Active    Filter = "active"
	Completed Filter = "completed"
)

// SortKey selects the ordering inside the projection.
type SortKey string

const (
	ByCreated SortKey = "created"
	ByDue     SortKey = "due"
)

// ParseFilter accepts all, active and completed.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case All, Active, Completed:
		return f, nil
	}
	return "", fmt.Errorf("unknown filter %q: want all, active or completed", s)
}

// ParseSortKey accepts created (or creation) and due.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "created", "creation":
		return ByCreated, nil
	case "due":
		return ByDue, nil
	}
	return "", fmt.Errorf("unknown sort key %q: want created or due", s)
}

// Group is the tasks of one category. CategoryID is nil for tasks without
// a category.
type Group struct {
	CategoryID *int64
	Tasks      []models.TaskView
}

// Keep reports whether t passes f.
func (f Filter) Keep(t models.TaskView) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	}
	return true
}

// Project filters, sorts and groups tasks. tasks is not modified.
//
// Both sort keys compare strings: created_at as rendered, and due_date with
// a missing date as "" so that undated tasks come first. The sort is
// stable, so ties keep their input order. Groups come out in the order in
// which their category is first met in the sorted sequence.
func Project(tasks []models.TaskView, f Filter, key SortKey) []Group {
	kept := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		if f.Keep(t) {
			kept = append(kept, t)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if key == ByDue {
			return kept[i].DueDate < kept[j].DueDate
		}
		return kept[i].CreatedAt < kept[j].CreatedAt
	})

	var (
		groups []Group
		index  = map[int64]int{}
		none   = -1
	)
	for _, t := range kept {
		var at int
		if t.CategoryID == nil {
			if none < 0 {
				none = len(groups)
				groups = append(groups, Group{})
			}
			at = none
		} else {
			i, ok := index[*t.CategoryID]
			if !ok {
				i = len(groups)
				index[*t.CategoryID] = i
				id := *t.CategoryID
				groups = append(groups, Group{CategoryID: &id})
			}
			at = i
		}
		groups[at].Tasks = append(groups[at].Tasks, t)
	}
	return groups
}

// Uncategorized labels the group of tasks without a category.
const Uncategorized = "Uncategorized"

// NoDueDate is shown in place of a missing due date.
const NoDueDate = "—"

// Label names a group: the category name when known, "Category N"
// otherwise.
func Label(g Group, names map[int64]string) string {
	if g.CategoryID == nil {
		return Uncategorized
	}
	if name, ok := names[*g.CategoryID]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Category %d", *g.CategoryID)
}

// DueLabel renders a due date for display.
func DueLabel(t models.TaskView) string {
	if t.DueDate == "" {
		return NoDueDate
	}
	return t.DueDate
}

// CategoryNames indexes categories by id for Label.
func CategoryNames(categories []models.Category) map[int64]string {
	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Category
	}
	return names
}
