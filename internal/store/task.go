// Package store defines the persistence interfaces and sentinel errors
// shared by all storage backends.
package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskStore defines the persistence operations for tasks.
// Implementations perform each operation as a single statement against the
// backing store; not-found conditions are reported with ErrTaskNotFound.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrTaskExists if a task with the same ID already exists.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves all tasks. Order is unspecified.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// UpdateStatus replaces the status of the task with the given ID and
	// returns the updated record.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Task, error)

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
