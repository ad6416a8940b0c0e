package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"TaskBoardService/commands"
	"TaskBoardService/models"
	"TaskBoardService/validation"
)

const taskColumns = "id, user_id, category_id, title, description, due_date, priority, status, created_at, updated_at"

// TaskRepository stores tasks in the tasks table.
type TaskRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewTaskRepository creates a task repository over db.
func NewTaskRepository(db *sql.DB, d Dialect) *TaskRepository {
	return &TaskRepository{db: db, dialect: d}
}

// Create inserts a new task in a single statement and returns its generated id.
//
// Returns:
// - int64: the id of the inserted row.
// - error: An error if the SQL statement execution fails.
func (r *TaskRepository) Create(ctx context.Context, cmd commands.CreateTaskCommand) (int64, error) {
	query := "INSERT INTO tasks (user_id, category_id, title, description, due_date, priority, status) VALUES (" +
		strings.Join(r.dialect.placeholders(7), ", ") + ")"
	args := []any{
		cmd.UserID,
		cmd.CategoryID,
		cmd.Title,
		nullable(cmd.Description),
		nullable(cmd.DueDate),
		string(cmd.Priority),
		string(cmd.Status),
	}

	if r.dialect.returning {
		var id int64
		if err := r.db.QueryRowContext(ctx, query+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert task: %w", classify(err))
		}
		return id, nil
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", classify(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to retrieve the last inserted ID: %w", err)
	}
	return id, nil
}

// Get retrieves a task by id.
//
// Returns:
// - *models.Task: the canonical persisted task.
// - error: models.ErrNotFound when no row has this id, or a wrapped driver error.
func (r *TaskRepository) Get(ctx context.Context, id int64) (*models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = " + r.dialect.Placeholder(1)
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan row into Task struct: %w", err)
	}
	return task, nil
}

// List retrieves every task, newest first. Rows created within the same
// clock tick fall back to descending id.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row into Task struct: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update in a single statement. Only the columns in
// cmd.Changes are written.
//
// Returns:
// - error: models.ErrNoUpdates when cmd carries no known column,
// models.ErrNotFound when no row was affected, or a wrapped driver error.
func (r *TaskRepository) Update(ctx context.Context, cmd commands.UpdateTaskCommand) error {
	query, args, err := BuildUpdate(r.dialect, "tasks", validation.TaskFields, cmd.Changes, cmd.ID)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to execute SQL statement: %w", classify(err))
	}
	return requireAffected(res, cmd.ID)
}

// Delete removes a task by id. Categories and users are never touched.
//
// Returns:
// - error: models.ErrNotFound when no row was affected, or a wrapped driver error.
func (r *TaskRepository) Delete(ctx context.Context, cmd commands.DeleteTaskCommand) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = "+r.dialect.Placeholder(1), cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to execute SQL statement: %w", err)
	}
	return requireAffected(res, cmd.ID)
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*models.Task, error) {
	var (
		t           models.Task
		userID      sql.NullInt64
		categoryID  sql.NullInt64
		description sql.NullString
		dueDate     sql.NullTime
		priority    string
		status      string
	)
	err := s.Scan(&t.ID, &userID, &categoryID, &t.Title, &description, &dueDate,
		&priority, &status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		t.UserID = &userID.Int64
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if description.Valid {
		t.Description = &description.String
	}
	if dueDate.Valid {
		d := dueDate.Time.Format(models.DateLayout)
		t.DueDate = &d
	}
	t.Priority = models.Priority(priority)
	t.Status = models.Status(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return &t, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
