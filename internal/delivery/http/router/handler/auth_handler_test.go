package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/validator"
	"taskboard/internal/domain/entity"
	domainerrors "taskboard/internal/domain/errors"
	mockUC "taskboard/internal/mocks/usecase"
	"taskboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an echo instance wired the same way the real
// server is: request validator plus the envelope error handler.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var parsed map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &parsed)

	return rec, parsed
}

func newAuthTestHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: logger})

	return h, authUC
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, authUC := newAuthTestHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	registered := &entity.User{
		ID:           uuid.New(),
		Name:         "Ana Gómez",
		Email:        "ana@x.com",
		PasswordHash: "hashed_password",
	}
	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Ana Gómez",
			Email:    "ana@x.com",
			Password: "secret1",
		}).
		Return(registered, nil)

	rec, body := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"nombre":"Ana Gómez","email":"ana@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", data["email"])
	assert.Equal(t, "Ana Gómez", data["nombre"])

	// The hash never appears anywhere in the payload
	assert.NotContains(t, rec.Body.String(), "hashed_password")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h, _ := newAuthTestHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	rec, body := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"nombre":"A","email":"not-an-email","password":"123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])

	// Every offending field is enumerated
	fieldErrors, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Len(t, fieldErrors, 3)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, authUC := newAuthTestHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)

	authUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrDuplicateEmail)

	rec, body := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"nombre":"Ana Gómez","email":"ana@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email is already registered", body["message"])
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, authUC := newAuthTestHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	user := &entity.User{ID: uuid.New(), Name: "Ana Gómez", Email: "ana@x.com"}
	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ana@x.com", Password: "secret1"}).
		Return(&usecase.LoginOutput{Token: "signed-token", User: user}, nil)

	rec, body := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ana@x.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])

	usuario, ok := data["usuario"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ana@x.com", usuario["email"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newAuthTestHandler(t)
	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, body := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ana@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", body["message"])
}
