package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCommentTestHandler(t *testing.T) (*CommentHandler, *mockUC.MockCommentUsecase) {
	commentUC := mockUC.NewMockCommentUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC, Logger: logger})

	return h, commentUC
}

func TestCommentHandler_ListByTask_Success(t *testing.T) {
	h, commentUC := newCommentTestHandler(t)
	taskID := uuid.New()
	author := &entity.User{ID: uuid.New(), Name: "Ana Gómez", Email: "ana@x.com"}

	e := newTestEcho()
	e.GET("/api/tasks/:id/comments", h.ListByTask, asUser(uuid.New()))

	comments := []*entity.Comment{
		{ID: uuid.New(), Content: "Looks good to me", TaskID: taskID, AuthorID: author.ID, Author: author},
	}
	commentUC.EXPECT().ListByTask(mock.Anything, taskID).Return(comments, nil)

	rec, body := doJSON(e, http.MethodGet, "/api/tasks/"+taskID.String()+"/comments", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 1)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Looks good to me", first["contenido"])
	assert.Equal(t, taskID.String(), first["tareaId"])

	usuario, ok := first["usuario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana Gómez", usuario["nombre"])
}

func TestCommentHandler_ListByTask_InvalidID(t *testing.T) {
	h, _ := newCommentTestHandler(t)

	e := newTestEcho()
	e.GET("/api/tasks/:id/comments", h.ListByTask, asUser(uuid.New()))

	rec, body := doJSON(e, http.MethodGet, "/api/tasks/not-a-uuid/comments", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestCommentHandler_ListByTask_TaskNotFound(t *testing.T) {
	h, commentUC := newCommentTestHandler(t)
	taskID := uuid.New()

	e := newTestEcho()
	e.GET("/api/tasks/:id/comments", h.ListByTask, asUser(uuid.New()))

	commentUC.EXPECT().ListByTask(mock.Anything, taskID).Return(nil, domainerrors.ErrTaskNotFound)

	rec, body := doJSON(e, http.MethodGet, "/api/tasks/"+taskID.String()+"/comments", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Task not found", body["message"])
}

func TestCommentHandler_Create_Success(t *testing.T) {
	h, commentUC := newCommentTestHandler(t)
	taskID := uuid.New()
	userID := uuid.New()

	e := newTestEcho()
	e.POST("/api/tasks/:id/comments", h.Create, asUser(userID))

	commentUC.EXPECT().
		Create(mock.Anything, userID, taskID, &usecase.CreateCommentInput{Content: "Looks good to me"}).
		Return(&entity.Comment{
			ID:       uuid.New(),
			Content:  "Looks good to me",
			TaskID:   taskID,
			AuthorID: userID,
			Author:   &entity.User{ID: userID, Name: "Ana Gómez", Email: "ana@x.com"},
		}, nil)

	rec, body := doJSON(e, http.MethodPost, "/api/tasks/"+taskID.String()+"/comments",
		`{"contenido":"Looks good to me"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Looks good to me", data["contenido"])
	assert.Equal(t, userID.String(), data["usuarioId"])
}

func TestCommentHandler_Create_MissingContent(t *testing.T) {
	h, _ := newCommentTestHandler(t)
	taskID := uuid.New()

	e := newTestEcho()
	e.POST("/api/tasks/:id/comments", h.Create, asUser(uuid.New()))

	rec, body := doJSON(e, http.MethodPost, "/api/tasks/"+taskID.String()+"/comments", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	fieldErrors, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrors, 1)

	first, ok := fieldErrors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "contenido", first["field"])
}
