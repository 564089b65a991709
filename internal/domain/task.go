package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Task-specific validation errors. All wrap ErrValidation so callers can
// classify them with errors.Is.
var (
	// ErrTaskIDEmpty is returned when a task ID is empty.
	ErrTaskIDEmpty = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)

	// ErrTaskTitleEmpty is returned when a task's title is empty.
	ErrTaskTitleEmpty = fmt.Errorf("%w: task title cannot be empty", ErrValidation)

	// ErrTaskDescriptionEmpty is returned when a task's description is empty.
	ErrTaskDescriptionEmpty = fmt.Errorf("%w: task description cannot be empty", ErrValidation)

	// ErrTaskStatusEmpty is returned when a task's status is empty.
	ErrTaskStatusEmpty = fmt.Errorf("%w: task status cannot be empty", ErrValidation)
)

// DefaultTaskStatus is assigned to tasks created without an explicit status.
const DefaultTaskStatus = "pending"

// Task represents a single unit of work tracked by the service.
// The ID is an opaque string assigned at creation and never changes.
// Status is a free-form non-empty string; no enumeration is enforced.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// NewTask creates a new Task with the given title, description, and status.
// It generates a new UUID string for the task ID and defaults the status to
// DefaultTaskStatus when none is supplied.
// Returns an error if validation fails.
func NewTask(title, description, status string) (*Task, error) {
	if status == "" {
		status = DefaultTaskStatus
	}

	task := &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrTaskIDEmpty
	}

	if t.Title == "" {
		return ErrTaskTitleEmpty
	}

	if t.Description == "" {
		return ErrTaskDescriptionEmpty
	}

	if t.Status == "" {
		return ErrTaskStatusEmpty
	}

	return nil
}
