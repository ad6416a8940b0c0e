package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"TaskBoardService/commands"
	"TaskBoardService/models"
)

// CategoryRepository lists and creates categories.
type CategoryRepository struct {
	db      *sql.DB
	dialect Dialect
}

// NewCategoryRepository creates a category repository over db.
func NewCategoryRepository(db *sql.DB, d Dialect) *CategoryRepository {
	return &CategoryRepository{db: db, dialect: d}
}

// List returns every category ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, category, created_at FROM categories ORDER BY category ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Category, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row into Category struct: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// Create inserts a category. A name that already exists yields an error
// wrapping models.ErrConflict.
func (r *CategoryRepository) Create(ctx context.Context, cmd commands.CreateCategoryCommand) (int64, error) {
	query := "INSERT INTO categories (category) VALUES (" + r.dialect.Placeholder(1) + ")"
	if r.dialect.returning {
		var id int64
		if err := r.db.QueryRowContext(ctx, query+" RETURNING id", cmd.Category).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert category: %w", classify(err))
		}
		return id, nil
	}
	res, err := r.db.ExecContext(ctx, query, cmd.Category)
	if err != nil {
		return 0, fmt.Errorf("failed to insert category: %w", classify(err))
	}
	return res.LastInsertId()
}

// Get returns one category, or an error wrapping models.ErrNotFound.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.db.QueryRowContext(ctx, "SELECT id, category, created_at FROM categories WHERE id = "+r.dialect.Placeholder(1), id).
		Scan(&c.ID, &c.Category, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to scan row into Category struct: %w", err)
	}
	return &c, nil
}

// Delete removes a category. Tasks that referenced it keep existing with a
// NULL category_id.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = "+r.dialect.Placeholder(1), id)
	if err != nil {
		return fmt.Errorf("failed to execute SQL statement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %d: %w", id, models.ErrNotFound)
	}
	return nil
}
