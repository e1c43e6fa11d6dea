package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxCommentLength = 1000

// commentService implements the CommentUsecase interface.
type commentService struct {
	taskRepo    repository.TaskRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TaskRepo    repository.TaskRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		taskRepo:    params.TaskRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByTask returns the comments of a task, newest first.
func (srv *commentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*entity.Comment, error) {
	srv.log(ctx).Debug("Listing comments", slog.Any("taskID", taskID))

	if _, err := srv.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	comments, err := srv.commentRepo.FindByTask(ctx, taskID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Create adds a comment to a task on behalf of the authenticated user.
// Any authenticated user may comment, not only the task owner.
func (srv *commentService) Create(ctx context.Context, authorID, taskID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Debug("Creating comment", slog.Any("taskID", taskID), slog.Any("authorID", authorID))

	content := strings.TrimSpace(input.Content)
	if content == "" || utf8.RuneCountInString(content) > maxCommentLength {
		return nil, domainerrors.NewValidationError("Validation failed", []domainerrors.FieldError{
			{Field: "contenido", Message: "contenido must be between 1 and 1000 characters"},
		})
	}

	if _, err := srv.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return nil, errors.Wrap(err, "failed to find task")
	}

	comment := &entity.Comment{
		Content:  content,
		TaskID:   taskID,
		AuthorID: authorID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.Any("taskID", taskID), slog.Any("error", err))

		// The repository maps a foreign key violation to ErrTaskNotFound
		// when the task was deleted between the existence check and the insert.
		if errors.Is(err, domainerrors.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task deleted concurrently")
		}

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", comment.ID), slog.Any("taskID", taskID))

	return comment, nil
}
