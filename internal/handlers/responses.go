package handlers

import (
	"net/http"
	"strings"

	"itapay-admin/internal/errors"
	"itapay-admin/internal/ui"
	"itapay-admin/internal/views"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// Page handlers report request errors with the following helpers:
//
// 1. SendError - For client errors (4xx responses)
//    Use cases:
//    - Malformed query or form input: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Unknown customer or account: SendError(c, errors.CustomerNotFound)
//
// 2. SendSystemError - For internal errors (500 responses)
//
// Backend fetch failures are NOT request errors: the page renders its error state with 200.
//
// Browsers receive the error page; every other client receives the JSON ErrorResponse.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	errorTemplate = "error"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return WriteErrorResponse(c, errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return WriteErrorResponse(c, http.StatusInternalServerError, errorResponse)
}

// WriteErrorResponse renders the error page for browsers and JSON otherwise
func WriteErrorResponse(c echo.Context, status int, errorResponse *errors.ErrorResponse) error {
	if WantsHTML(c) && c.Echo().Renderer != nil {
		return c.Render(status, errorTemplate, ui.NewPage(http.StatusText(status), ErrorPage(status, errorResponse)))
	}
	return c.JSON(status, errorResponse)
}

// ErrorPage builds the page state of the error template
func ErrorPage(status int, errorResponse *errors.ErrorResponse) views.ErrorPage {
	message := errorResponse.Error.Message
	if len(errorResponse.Error.Details) > 0 {
		message += ": " + strings.Join(errorResponse.Error.Details, "; ")
	}
	return views.ErrorPage{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
		TraceID: errorResponse.Error.TraceID,
	}
}

// WantsHTML reports whether the client asked for an HTML document
func WantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// renderPage renders a console page with status 200
func renderPage(c echo.Context, name, title string, data any) error {
	return c.Render(http.StatusOK, name, ui.NewPage(title, data))
}
