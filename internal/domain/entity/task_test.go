package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatus_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskStatusPending.Valid())
	assert.True(t, TaskStatusInProgress.Valid())
	assert.True(t, TaskStatusCompleted.Valid())

	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("PENDIENTE").Valid())
}

func TestTaskPatch_Empty(t *testing.T) {
	t.Parallel()

	var nilPatch *TaskPatch
	assert.True(t, nilPatch.Empty())
	assert.True(t, (&TaskPatch{}).Empty())

	title := "refactor billing"
	assert.False(t, (&TaskPatch{Title: &title}).Empty())

	status := TaskStatusCompleted
	assert.False(t, (&TaskPatch{Status: &status}).Empty())
}
