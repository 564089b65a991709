package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sqlitelib "modernc.org/sqlite"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// SQLite extended result codes for primary key and unique constraint
// violations.
const (
	constraintPrimaryKeyCode = 1555 // SQLITE_CONSTRAINT_PRIMARYKEY
	constraintUniqueCode     = 2067 // SQLITE_CONSTRAINT_UNIQUE
)

// SQLiteTaskStore implements the store.TaskStore interface
// using a file-backed SQLite database as the storage backend.
type SQLiteTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteTaskStore creates a new SQLite implementation of the TaskStore
// interface. It accepts a database connection that should be initialized and
// managed by the caller. If logger is nil, the default logger is used.
func NewSQLiteTaskStore(db *sql.DB, logger *slog.Logger) *SQLiteTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &SQLiteTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure SQLiteTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*SQLiteTaskStore)(nil)

// isConstraintViolation checks if the given error is a SQLite primary key or
// unique constraint violation.
func isConstraintViolation(err error) bool {
	var sqliteErr *sqlitelib.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == constraintPrimaryKeyCode || code == constraintUniqueCode
	}
	return false
}

// Create implements store.TaskStore.Create
func (s *SQLiteTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tasks (id, title, description, status) VALUES (?, ?, ?, ?)",
		task.ID, task.Title, task.Description, task.Status)
	if err != nil {
		if isConstraintViolation(err) {
			return store.ErrTaskExists
		}
		return fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.DebugContext(ctx, "task created", slog.String("task_id", task.ID))
	return nil
}

// List implements store.TaskStore.List
func (s *SQLiteTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
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
func (s *SQLiteTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, description, status FROM tasks WHERE id = ?",
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
// The update and the read of the resulting row are a single RETURNING
// statement, so a concurrent writer cannot interleave between them.
func (s *SQLiteTaskStore) UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error) {
	var task domain.Task
	err := s.db.QueryRowContext(ctx,
		"UPDATE tasks SET status = ? WHERE id = ? RETURNING id, title, description, status",
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
func (s *SQLiteTaskStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
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
