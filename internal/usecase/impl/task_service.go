package impl

import (
	"context"
	"log/slog"

	deliverycontext "taskboard/internal/delivery/context"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	logger    *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		logger:    params.Logger,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all tasks owned by the given user, newest first.
func (srv *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	srv.log(ctx).Debug("Listing tasks", slog.Any("ownerID", ownerID))

	// Single query operation - use direct repository instance
	tasks, err := srv.taskRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list tasks", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tasks")
	}

	return tasks, nil
}

// Create stores a new task owned by the given user. An empty status
// defaults to pending.
func (srv *taskService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	srv.log(ctx).Debug("Creating task", slog.Any("ownerID", ownerID))

	status := input.Status
	if status == "" {
		status = entity.TaskStatusPending
	}
	if !status.Valid() {
		return nil, domainerrors.NewValidationError("Validation failed", []domainerrors.FieldError{
			{Field: "estado", Message: "estado must be one of pendiente, en_progreso, completada"},
		})
	}

	task := &entity.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerID:     ownerID,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create task")
	}

	srv.log(ctx).Info("Task created", slog.Any("taskID", task.ID), slog.Any("ownerID", ownerID))

	return task, nil
}

// Update applies a partial update to a task owned by the caller.
// Check order matters: existence first, then ownership, then whether
// the patch carries anything at all.
func (srv *taskService) Update(ctx context.Context, callerID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	srv.log(ctx).Debug("Updating task", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

	if err := srv.authorizeOwner(ctx, callerID, taskID); err != nil {
		return nil, err
	}

	patch := &entity.TaskPatch{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	if patch.Empty() {
		return nil, errors.Wrap(domainerrors.ErrEmptyUpdate, "update patch carries no fields")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domainerrors.NewValidationError("Validation failed", []domainerrors.FieldError{
			{Field: "estado", Message: "estado must be one of pendiente, en_progreso, completada"},
		})
	}

	if err := srv.taskRepo.Update(ctx, taskID, patch); err != nil {
		srv.log(ctx).Error("Failed to update task", slog.Any("taskID", taskID), slog.Any("error", err))

		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTaskNotFound, "task deleted during update")
		}

		return nil, errors.Wrap(err, "failed to update task")
	}

	updated, err := srv.taskRepo.FindByIDWithComments(ctx, taskID)
	if err != nil {
		srv.log(ctx).Error("Failed to reload task after update", slog.Any("taskID", taskID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to reload task after update")
	}

	srv.log(ctx).Info("Task updated", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

	return updated, nil
}

// Delete removes a task and its comments in one transaction.
func (srv *taskService) Delete(ctx context.Context, callerID, taskID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting task", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

	if err := srv.authorizeOwner(ctx, callerID, taskID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		commentRepo := repoFactory.CommentRepo()
		taskRepo := repoFactory.TaskRepo()

		if err := commentRepo.DeleteByTask(ctx, taskID); err != nil {
			return errors.Wrap(err, "failed to delete task comments")
		}

		if err := taskRepo.Delete(ctx, taskID); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				return errors.Wrap(domainerrors.ErrTaskNotFound, "task deleted concurrently")
			}

			return errors.Wrap(err, "failed to delete task")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute task delete transaction", slog.Any("taskID", taskID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute task delete transaction")
	}

	srv.log(ctx).Info("Task deleted", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

	return nil
}

// authorizeOwner loads the task and verifies the caller owns it.
func (srv *taskService) authorizeOwner(ctx context.Context, callerID, taskID uuid.UUID) error {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return errors.Wrap(domainerrors.ErrTaskNotFound, "task not found")
		}

		return errors.Wrap(err, "failed to find task")
	}

	if task.OwnerID != callerID {
		srv.log(ctx).Warn("Ownership check failed", slog.Any("taskID", taskID), slog.Any("callerID", callerID))

		return errors.Wrap(domainerrors.ErrForbidden, "task belongs to another user")
	}

	return nil
}
