package usecase

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data required to create a task.
// Status is optional and defaults to pending when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus
}

// UpdateTaskInput is a partial update. Nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// TaskUsecase defines the owner-scoped task operations.
type TaskUsecase interface {
	// List returns all tasks owned by the given user, newest first,
	// each with its comments preloaded.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// Create stores a new task owned by the given user.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)

	// Update applies a partial update to a task. Only the owner may
	// update; an update with no fields set is rejected.
	Update(ctx context.Context, callerID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)

	// Delete removes a task together with its comments. Only the owner
	// may delete.
	Delete(ctx context.Context, callerID, taskID uuid.UUID) error
}
