package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body := renderError(t, domainerrors.ErrTaskNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Task not found", body["message"])
	assert.NotContains(t, body, "errors")
}

func TestErrorMiddleware_WrappedAppError(t *testing.T) {
	wrapped := errors.Wrap(domainerrors.ErrForbidden, "task belongs to another user")

	rec, body := renderError(t, wrapped)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, body["success"])
	// The wrap context never leaks; only the domain message is served
	assert.Equal(t, "You do not have permission to modify this resource", body["message"])
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	validationErr := domainerrors.NewValidationError("Validation failed", []domainerrors.FieldError{
		{Field: "titulo", Message: "titulo must be at least 3 characters"},
		{Field: "descripcion", Message: "descripcion is required"},
	})

	rec, body := renderError(t, validationErr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])

	fieldErrors, ok := body["errors"].([]any)
	require.True(t, ok)
	require.Len(t, fieldErrors, 2)

	first, ok := fieldErrors[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "titulo", first["field"])
}

func TestErrorMiddleware_DatabaseErrorLoggedAtBoundary(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to create task")
	NewErrorMiddleware(logger).HandleHTTPError(dbErr, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")

	// The failure detail lands in the log, not in the response
	assert.Contains(t, logBuf.String(), "DATABASE_EXECUTE_FAILED")
	assert.Contains(t, logBuf.String(), "failed to create task")
}

func TestErrorMiddleware_ClientErrorNotLogged(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, nil))

	NewErrorMiddleware(logger).HandleHTTPError(domainerrors.ErrTaskNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, logBuf.String())
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	// Internals never leak to the client
	assert.Equal(t, "Internal server error", body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
