package usecase

import (
	"context"

	"taskboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to add a comment to a task.
type CreateCommentInput struct {
	Content string
}

// CommentUsecase defines the comment operations. Comments are immutable
// once created and any authenticated user may comment on any task.
type CommentUsecase interface {
	// ListByTask returns the comments of a task, newest first, with the
	// author identity attached to each.
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.Comment, error)

	// Create adds a comment to a task. Content is trimmed before the
	// length check.
	Create(ctx context.Context, authorID, taskID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)
}
