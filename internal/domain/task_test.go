package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("generates unique ids", func(t *testing.T) {
		t.Parallel()

		first, err := NewTask("Write report", "Quarterly numbers", "")
		require.NoError(t, err)
		second, err := NewTask("Write report", "Quarterly numbers", "")
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)

		_, err = uuid.Parse(first.ID)
		assert.NoError(t, err)
	})

	t.Run("defaults status to pending", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask("Write report", "Quarterly numbers", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultTaskStatus, task.Status)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask("Write report", "Quarterly numbers", "in-progress")
		require.NoError(t, err)
		assert.Equal(t, "in-progress", task.Status)
	})

	tests := []struct {
		name        string
		title       string
		description string
		wantErr     error
	}{
		{name: "empty title", title: "", description: "desc", wantErr: ErrTaskTitleEmpty},
		{name: "empty description", title: "title", description: "", wantErr: ErrTaskDescriptionEmpty},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewTask(tt.title, tt.description, "")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	task := &Task{ID: "id", Title: "title", Description: "desc", Status: "pending"}
	require.NoError(t, task.Validate())

	task.Status = ""
	assert.ErrorIs(t, task.Validate(), ErrTaskStatusEmpty)

	task.Status = "pending"
	task.ID = ""
	assert.ErrorIs(t, task.Validate(), ErrTaskIDEmpty)
}
