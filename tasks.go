package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"TaskBoardService/client"
	"TaskBoardService/models"
	"TaskBoardService/repository"
	"TaskBoardService/taskstore"
	"TaskBoardService/validation"
	"TaskBoardService/view"

	"github.com/spf13/cobra"
)

func newTasksCmd(opts *rootOptions) *cobra.Command {
	var apiURL string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Work with the tasks of a running service",
	}
	cmd.PersistentFlags().StringVar(&apiURL, "api", "", "service URL (default from API_URL)")

	connect := func() (*client.Client, error) {
		cfg, err := opts.load()
		if err != nil {
			return nil, err
		}
		if apiURL != "" {
			return client.New(apiURL), nil
		}
		return client.New(cfg.APIURL), nil
	}

	cmd.AddCommand(
		newTasksListCmd(connect),
		newTasksAddCmd(connect),
		newTasksUpdateCmd(connect),
		newTasksDeleteCmd(connect),
	)
	return cmd
}

type connectFunc func() (*client.Client, error)

func newTasksListCmd(connect connectFunc) *cobra.Command {
	var filter, sortKey string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show tasks grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := view.ParseFilter(filter)
			if err != nil {
				return err
			}
			key, err := view.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			c, err := connect()
			if err != nil {
				return err
			}
			store := taskstore.New(c)
			if _, err := store.EnsureLoaded(cmd.Context()); err != nil {
				return err
			}
			categories, err := c.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			printGroups(cmd.OutOrStdout(), view.Project(store.Items(), f, key), view.CategoryNames(categories))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(view.All), "all, active or completed")
	cmd.Flags().StringVar(&sortKey, "sort", string(view.ByCreated), "created or due")
	return cmd
}

func printGroups(w io.Writer, groups []view.Group, names map[int64]string) {
	if len(groups) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%s\n", view.Label(g, names))
		for _, t := range g.Tasks {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] #%d %s (%s, %s) due %s\n", mark, t.ID, t.Title, t.Priority, t.Status, view.DueLabel(t))
		}
	}
}

func newTasksAddCmd(connect connectFunc) *cobra.Command {
	var (
		form     validation.Form
		priority string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form.Priority = models.Priority(priority)
			if errs := validation.New().Form(form); len(errs) > 0 {
				return formError(errs)
			}
			c, err := connect()
			if err != nil {
				return err
			}
			t, err := taskstore.New(c).Create(cmd.Context(), form.Fields())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d %q (%s, %s)\n", t.ID, t.Title, t.Priority, t.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Title, "title", "", "task title")
	cmd.Flags().StringVar(&form.Description, "description", "", "task description")
	cmd.Flags().StringVar(&form.DueDate, "due", "", "due date, YYYY-MM-DD")
	cmd.Flags().StringVar(&form.UserID, "user", "", "user id")
	cmd.Flags().StringVar(&form.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar(&priority, "priority", string(models.PriorityMedium), "Low, Medium or High")
	cmd.Flags().BoolVar(&form.Completed, "completed", false, "create the task as completed")
	return cmd
}

func newTasksUpdateCmd(connect connectFunc) *cobra.Command {
	var (
		title, description, due, priority, status string
		userID, categoryID                        int64
		completed                                 bool
	)
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change some fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := map[string]any{}
			set := func(flag, field string, v any) {
				if cmd.Flags().Changed(flag) {
					patch[field] = v
				}
			}
			set("title", validation.FieldTitle, title)
			set("description", validation.FieldDescription, description)
			set("due", validation.FieldDueDate, due)
			set("priority", validation.FieldPriority, priority)
			set("status", validation.FieldStatus, status)
			set("user", validation.FieldUserID, userID)
			set("category", validation.FieldCategoryID, categoryID)
			set("completed", "completed", completed)

			if err := validation.New().Update(client.NormalizePatch(patch)); err != nil {
				return err
			}
			c, err := connect()
			if err != nil {
				return err
			}
			id := repository.ParseID(args[0])
			t, err := updateTask(cmd.Context(), taskstore.New(c), id, patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d %q (%s, %s) due %s\n", t.ID, t.Title, t.Priority, t.Status, view.DueLabel(t))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&due, "due", "", "new due date, YYYY-MM-DD, empty to clear")
	cmd.Flags().StringVar(&priority, "priority", "", "Low, Medium or High")
	cmd.Flags().StringVar(&status, "status", "", "Pending, In Progress or Completed")
	cmd.Flags().Int64Var(&userID, "user", 0, "new user id")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "new category id")
	cmd.Flags().BoolVar(&completed, "completed", false, "mark the task completed")
	return cmd
}

// updateTask loads the cache first so the updated entry replaces its
// cached copy.
func updateTask(ctx context.Context, store *taskstore.Store, id int64, patch map[string]any) (models.TaskView, error) {
	if _, err := store.EnsureLoaded(ctx); err != nil {
		return models.TaskView{}, err
	}
	return store.Update(ctx, id, patch)
}

func newTasksDeleteCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect()
			if err != nil {
				return err
			}
			id := repository.ParseID(args[0])
			if err := taskstore.New(c).Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}

// formError joins advisory messages in field order.
func formError(errs validation.FormErrors) error {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return fieldRank(keys[i]) < fieldRank(keys[j]) })
	msgs := make([]string, len(keys))
	for i, k := range keys {
		msgs[i] = errs[k]
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldRank(field string) int {
	for i, f := range validation.TaskFields {
		if f == field {
			return i
		}
	}
	return len(validation.TaskFields)
}
