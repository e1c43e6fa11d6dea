package repository

import (
	"context"
	"errors"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
type TaskRepository interface {
	// FindByOwner retrieves every task owned by the given user, newest
	// first, with comments (newest first) and comment authors loaded.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error)

	// FindByID retrieves a single task without its comments.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// FindByIDWithComments retrieves a single task with comments and
	// comment authors loaded, newest comment first.
	FindByIDWithComments(ctx context.Context, id uuid.UUID) (*entity.Task, error)

	// Create persists a new task entity to the storage.
	Create(ctx context.Context, task *entity.Task) error

	// Update applies the non-nil patch fields to the stored task.
	Update(ctx context.Context, id uuid.UUID, patch *entity.TaskPatch) error

	// Delete removes the task. Its comments must be removed in the same
	// operation; callers run it inside a transaction together with
	// CommentRepository.DeleteByTask.
	Delete(ctx context.Context, id uuid.UUID) error
}
