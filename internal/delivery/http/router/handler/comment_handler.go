package handler

import (
	"log/slog"
	"net/http"

	"taskboard/internal/delivery/http/response"
	domainerrors "taskboard/internal/domain/errors"
	"taskboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
	Logger    *slog.Logger
}

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
	logger    *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler.
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
		logger:    params.Logger,
	}
}

// CreateCommentRequest represents the request body for adding a comment.
// Length limits are enforced after trimming, in the service layer.
type CreateCommentRequest struct {
	Contenido string `json:"contenido" validate:"required"`
}

// ListByTask handles listing the comments of a task.
func (h *CommentHandler) ListByTask(c echo.Context) error {
	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListByTask(c.Request().Context(), taskID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCommentDTOs(comments), "")
}

// Create handles adding a comment to a task on behalf of the caller.
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	taskID, err := parseID(c)
	if err != nil {
		return err
	}

	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("failed to bind comment input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentUC.Create(c.Request().Context(), userID, taskID, &usecase.CreateCommentInput{
		Content: req.Contenido,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toCommentDTO(comment), "Comment created successfully")
}
