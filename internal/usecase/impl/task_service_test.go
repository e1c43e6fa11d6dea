package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/domain/repository"
	mockRepo "taskboard/internal/mocks/repository"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// taskServiceFixtures holds all test dependencies for task service tests.
type taskServiceFixtures struct {
	service   usecase.TaskUsecase
	txManager *mockRepo.MockTransactionManager
	taskRepo  *mockRepo.MockTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	taskRepo := mockRepo.NewMockTaskRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewTaskService(TaskServiceParams{
		TxManager: txManager,
		TaskRepo:  taskRepo,
		Logger:    logger,
	})

	return taskServiceFixtures{
		service:   service,
		txManager: txManager,
		taskRepo:  taskRepo,
	}
}

func TestTaskService_List_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	tasks := []*entity.Task{
		{ID: uuid.New(), Title: "Second task", OwnerID: ownerID},
		{ID: uuid.New(), Title: "First task", OwnerID: ownerID},
	}

	fx.taskRepo.EXPECT().FindByOwner(ctx, ownerID).Return(tasks, nil)

	result, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, tasks, result)
}

func TestTaskService_Create_DefaultsToPending(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Run(func(ctx context.Context, task *entity.Task) {
			task.ID = uuid.New()
		}).
		Return(nil)

	task, err := fx.service.Create(ctx, ownerID, &usecase.CreateTaskInput{
		Title:       "Write spec",
		Description: "Draft the design doc",
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, entity.TaskStatusPending, task.Status)
	assert.Equal(t, ownerID, task.OwnerID)
}

func TestTaskService_Create_ExplicitStatus(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.taskRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Task")).
		Return(nil)

	task, err := fx.service.Create(ctx, ownerID, &usecase.CreateTaskInput{
		Title:       "Write spec",
		Description: "Draft the design doc",
		Status:      entity.TaskStatusInProgress,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
}

func TestTaskService_Create_InvalidStatus(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()

	task, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateTaskInput{
		Title:       "Write spec",
		Description: "Draft the design doc",
		Status:      entity.TaskStatus("archived"),
	})

	require.Error(t, err)
	assert.Nil(t, task)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "estado", validationErr.Fields()[0].Field)
}

func TestTaskService_Update_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(nil, repository.ErrTaskNotFound)

	title := "New title"
	task, err := fx.service.Update(ctx, uuid.New(), taskID, &usecase.UpdateTaskInput{Title: &title})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_Update_Forbidden(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: uuid.New()}

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)

	title := "New title"
	task, err := fx.service.Update(ctx, uuid.New(), taskID, &usecase.UpdateTaskInput{Title: &title})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTaskService_Update_EmptyPatch(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	callerID := uuid.New()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: callerID}

	// Ownership is checked before the empty-patch rejection
	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)

	task, err := fx.service.Update(ctx, callerID, taskID, &usecase.UpdateTaskInput{})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyUpdate))
}

func TestTaskService_Update_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	callerID := uuid.New()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: callerID, Title: "Old title"}

	title := "New title"
	status := entity.TaskStatusCompleted
	updated := &entity.Task{ID: taskID, OwnerID: callerID, Title: title, Status: status}

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)
	fx.taskRepo.EXPECT().
		Update(ctx, taskID, mock.AnythingOfType("*entity.TaskPatch")).
		Run(func(ctx context.Context, id uuid.UUID, patch *entity.TaskPatch) {
			require.NotNil(t, patch.Title)
			assert.Equal(t, title, *patch.Title)
			assert.Nil(t, patch.Description)
			require.NotNil(t, patch.Status)
			assert.Equal(t, status, *patch.Status)
		}).
		Return(nil)
	fx.taskRepo.EXPECT().FindByIDWithComments(ctx, taskID).Return(updated, nil)

	task, err := fx.service.Update(ctx, callerID, taskID, &usecase.UpdateTaskInput{
		Title:  &title,
		Status: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, task)
}

func TestTaskService_Update_DeleteRace(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	callerID := uuid.New()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: callerID}

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)

	// A concurrent delete lands between the ownership check and the update
	title := "New title"
	fx.taskRepo.EXPECT().
		Update(ctx, taskID, mock.AnythingOfType("*entity.TaskPatch")).
		Return(repository.ErrTaskNotFound)

	task, err := fx.service.Update(ctx, callerID, taskID, &usecase.UpdateTaskInput{Title: &title})

	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}

func TestTaskService_Delete_Success(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	callerID := uuid.New()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: callerID}

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTaskRepo := mockRepo.NewMockTaskRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().TaskRepo().Return(mockTaskRepo)
			mockFactory.EXPECT().CommentRepo().Return(mockCommentRepo)

			// Comments go first so the cascade leaves no orphans
			mockCommentRepo.EXPECT().DeleteByTask(ctx, taskID).Return(nil)
			mockTaskRepo.EXPECT().Delete(ctx, taskID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, callerID, taskID)

	require.NoError(t, err)
}

func TestTaskService_Delete_Forbidden(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()
	stored := &entity.Task{ID: taskID, OwnerID: uuid.New()}

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(stored, nil)

	err := fx.service.Delete(ctx, uuid.New(), taskID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTaskService_Delete_NotFound(t *testing.T) {
	fx := createTestTaskService(t)

	ctx := context.Background()
	taskID := uuid.New()

	fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(nil, repository.ErrTaskNotFound)

	err := fx.service.Delete(ctx, uuid.New(), taskID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTaskNotFound))
}
