package view

import (
	"fmt"
	"testing"

	"TaskBoardService/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cat(id int64) *int64 { return &id }

func task(id int64, category *int64, due, created string, status models.Status) models.TaskView {
	return models.TaskView{
		ID:         id,
		CategoryID: category,
		DueDate:    due,
		CreatedAt:  created,
		Status:     status,
		Completed:  status == models.StatusCompleted,
	}
}

func flatten(groups []Group) []int64 {
	var out []int64
	for _, g := range groups {
		for _, t := range g.Tasks {
			out = append(out, t.ID)
		}
	}
	return out
}

func TestActiveByDue(t *testing.T) {
	tasks := []models.TaskView{
		task(1, nil, "2024-01-05", "", models.StatusPending),
		task(2, nil, "", "", models.StatusCompleted),
		task(3, nil, "2024-01-01", "", models.StatusPending),
	}
	groups := Project(tasks, Active, ByDue)
	require.Len(t, groups, 1)
	var dues []string
	for _, tv := range groups[0].Tasks {
		dues = append(dues, tv.DueDate)
	}
	assert.Equal(t, []string{"2024-01-01", "2024-01-05"}, dues)
}

func TestFilters(t *testing.T) {
	tasks := []models.TaskView{
		task(1, cat(1), "", "a", models.StatusPending),
		task(2, cat(1), "", "b", models.StatusInProgress),
		task(3, cat(2), "", "c", models.StatusCompleted),
	}
	for _, g := range Project(tasks, Active, ByCreated) {
		for _, tv := range g.Tasks {
			assert.False(t, tv.Completed)
		}
	}
	for _, g := range Project(tasks, Completed, ByCreated) {
		for _, tv := range g.Tasks {
			assert.True(t, tv.Completed)
		}
	}
	assert.ElementsMatch(t, []int64{1, 2, 3}, flatten(Project(tasks, All, ByCreated)))
	assert.Equal(t, []int64{1, 2}, flatten(Project(tasks, Active, ByCreated)))
	assert.Equal(t, []int64{3}, flatten(Project(tasks, Completed, ByCreated)))
}

func TestUndatedFirst(t *testing.T) {
	tasks := []models.TaskView{
		task(1, nil, "2024-01-01", "", models.StatusPending),
		task(2, nil, "", "", models.StatusPending),
		task(3, nil, "2023-12-31", "", models.StatusPending),
	}
	assert.Equal(t, []int64{2, 3, 1}, flatten(Project(tasks, All, ByDue)))
}

func TestGroupOrderFollowsFirstSeen(t *testing.T) {
	// created ascending: 10(cat 5), 11(none), 12(cat 2), 13(cat 5), 14(none)
	tasks := []models.TaskView{
		task(13, cat(5), "", "2024-01-04T00:00:00.000Z", models.StatusPending),
		task(12, cat(2), "", "2024-01-03T00:00:00.000Z", models.StatusPending),
		task(14, nil, "", "2024-01-05T00:00:00.000Z", models.StatusPending),
		task(10, cat(5), "", "2024-01-01T00:00:00.000Z", models.StatusPending),
		task(11, nil, "", "2024-01-02T00:00:00.000Z", models.StatusPending),
	}
	groups := Project(tasks, All, ByCreated)
	require.Len(t, groups, 3)

	assert.Equal(t, int64(5), *groups[0].CategoryID)
	assert.Equal(t, []int64{10, 13}, flatten(groups[:1]))
	assert.Nil(t, groups[1].CategoryID)
	assert.Equal(t, []int64{11, 14}, flatten(groups[1:2]))
	assert.Equal(t, int64(2), *groups[2].CategoryID)
	assert.Equal(t, []int64{12}, flatten(groups[2:]))
}

func TestGroupingCompleteAndStable(t *testing.T) {
	var tasks []models.TaskView
	for i := int64(0); i < 30; i++ {
		var c *int64
		if i%4 != 0 {
			c = cat(i % 3)
		}
		due := ""
		if i%5 != 0 {
			due = fmt.Sprintf("2024-01-0%d", 1+i%3)
		}
		status := models.StatusPending
		if i%2 == 0 {
			status = models.StatusCompleted
		}
		tasks = append(tasks, task(i, c, due, "same", status))
	}
	input := append([]models.TaskView{}, tasks...)

	for _, f := range []Filter{All, Active, Completed} {
		kept := 0
		for _, tv := range tasks {
			if f.Keep(tv) {
				kept++
			}
		}
		for _, key := range []SortKey{ByCreated, ByDue} {
			groups := Project(tasks, f, key)
			got := flatten(groups)
			assert.Len(t, got, kept)

			seen := map[int64]bool{}
			for _, id := range got {
				assert.False(t, seen[id], "task %d in two groups", id)
				seen[id] = true
			}
		}
	}
	assert.Equal(t, input, tasks, "input is not reordered")

	// equal keys keep input order inside each group
	assert.Equal(t, []int64{1, 7, 3, 9, 5}, flatten(Project(tasks[:10], Active, ByCreated)))
}

func TestEmpty(t *testing.T) {
	assert.Empty(t, Project(nil, All, ByDue))
}

func TestParse(t *testing.T) {
	f, err := ParseFilter("active")
	require.NoError(t, err)
	assert.Equal(t, Active, f)
	_, err = ParseFilter("done")
	assert.Error(t, err)

	k, err := ParseSortKey("creation")
	require.NoError(t, err)
	assert.Equal(t, ByCreated, k)
	k, err = ParseSortKey("due")
	require.NoError(t, err)
	assert.Equal(t, ByDue, k)
	_, err = ParseSortKey("title")
	assert.Error(t, err)
}

func TestLabels(t *testing.T) {
	names := CategoryNames([]models.Category{{ID: 1, Category: "Home"}})
	assert.Equal(t, Uncategorized, Label(Group{}, names))
	assert.Equal(t, "Home", Label(Group{CategoryID: cat(1)}, names))
	assert.Equal(t, "Category 7", Label(Group{CategoryID: cat(7)}, names))

	assert.Equal(t, NoDueDate, DueLabel(models.TaskView{}))
	assert.Equal(t, "2024-01-01", DueLabel(models.TaskView{DueDate: "2024-01-01"}))
}
