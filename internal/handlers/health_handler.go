package handlers

import (
	"net/http"
	"time"

	"itapay-admin/internal/backend"
	"itapay-admin/internal/dto"
	"itapay-admin/internal/errors"

	"github.com/labstack/echo/v4"
)

// BackendStatus reports the state of the backend circuit breaker
type BackendStatus interface {
	BreakerState() backend.BreakerState
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	backend BackendStatus
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(status BackendStatus) *HealthCheckHandler {
	return &HealthCheckHandler{backend: status}
}

// HealthCheck reports whether the console can reach the payments backend.
// It does not call the backend; an open circuit breaker is the unhealthy signal.
// @Summary Health check
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (backend circuit open)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	state := h.backend.BreakerState()

	if state == backend.StateOpen {
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Payments backend circuit breaker is open"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "healthy",
		Time:    time.Now().UTC().Format(time.RFC3339),
		Backend: state.String(),
	})
}
