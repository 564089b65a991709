// Package postgres implements the task store against a PostgreSQL database
// through the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

const uniqueViolationCode = "23505" // PostgreSQL unique violation error code

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewPostgresTaskStore(db *sql.DB, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// isUniqueViolation checks if the given error is a PostgreSQL unique
// constraint violation, such as a duplicate primary key.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// EnsureSchema applies the tasks table schema idempotently.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			status TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, title, description, status) VALUES ($1, $2, $3, $4)",
		task.ID, task.Title, task.Description, task.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrTaskExists
		}
		return fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.DebugContext(ctx, "task created", slog.String("task_id", task.ID))
	return nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, status FROM tasks")
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Status); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate task rows: %w", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, status FROM tasks WHERE id = $1",
		id).Scan(&task.ID, &task.Title, &task.Description, &task.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return &task, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *PostgresTaskStore) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	var task domain.Task
	err := s.db.QueryRowContext(ctx,
		"UPDATE tasks SET status = $1 WHERE id = $2 RETURNING id, title, description, status",
		status, id).Scan(&task.ID, &task.Title, &task.Description, &task.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.DebugContext(ctx, "task status updated",
		slog.String("task_id", id), slog.String("status", status))
	return &task, nil
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}

	s.logger.DebugContext(ctx, "task deleted", slog.String("task_id", id))
	return nil
}
