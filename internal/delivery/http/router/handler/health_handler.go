package handler

import (
	"net/http"

	"taskboard/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "")
}

// Index returns a short description of the API surface.
func Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"name": "taskboard API",
		"endpoints": map[string]string{
			"auth":     "/api/auth",
			"tasks":    "/api/tasks",
			"comments": "/api/tasks/:id/comments",
		},
	}, "")
}
