package handler

import (
	"net/http"

	"sweetshop/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// APIVersion is reported by the welcome document.
const APIVersion = "1.0.0"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Welcome describes the API at the root path.
func Welcome(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome to Sweet Shop Management System API",
		"version": APIVersion,
	})
}
