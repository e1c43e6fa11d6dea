package repository

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the standard operations for comment persistence.
// Comments are immutable; there is deliberately no update operation.
type CommentRepository interface {
	// FindByTask retrieves every comment on the given task, newest first,
	// with the author identity loaded.
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.Comment, error)

	// Create persists a new comment and loads the author identity back
	// onto the entity.
	Create(ctx context.Context, comment *entity.Comment) error

	// DeleteByTask removes every comment on the given task. Used by the
	// task delete transaction to guarantee no orphaned comments remain.
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error
}
