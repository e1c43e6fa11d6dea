package handler

import (
	"log/slog"
	"net/http"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/response"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for task-related handlers.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler.
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3,max=200"`
	Descripcion string `json:"descripcion" validate:"required,min=10,max=2000"`
	Estado      string `json:"estado" validate:"omitempty,oneof=pendiente en_progreso completada"`
}

// UpdateTaskRequest represents the request body for a partial task
// update. Absent fields stay untouched.
type UpdateTaskRequest struct {
	Titulo      *string `json:"titulo" validate:"omitempty,min=3,max=200"`
	Descripcion *string `json:"descripcion" validate:"omitempty,min=10,max=2000"`
	Estado      *string `json:"estado" validate:"omitempty,oneof=pendiente en_progreso completada"`
}

// List handles listing the caller's tasks with their comments.
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskUC.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toTaskDTOs(tasks), "")
}

// Create handles creating a task owned by the caller.
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind task input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	task, err := h.taskUC.Create(c.Request().Context(), userID, &usecase.CreateTaskInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
		Status:      entity.TaskStatus(req.Estado),
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toTaskDTO(task, false), "Task created successfully")
}

// Update handles a partial update of a task owned by the caller.
func (h *TaskHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind task input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.UpdateTaskInput{
		Title:       req.Titulo,
		Description: req.Descripcion,
	}
	if req.Estado != nil {
		status := entity.TaskStatus(*req.Estado)
		input.Status = &status
	}

	task, err := h.taskUC.Update(c.Request().Context(), userID, taskID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toTaskDTO(task, true), "Task updated successfully")
}

// Delete handles deleting a task owned by the caller.
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.taskUC.Delete(c.Request().Context(), userID, taskID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.KeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("user ID missing from request context")
	}

	return userID, nil
}

// parseID parses the :id path parameter as a UUID.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WrapMessage("failed to parse id path parameter")
	}

	return id, nil
}
