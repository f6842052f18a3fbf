package middleware

import (
	"itapay-admin/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader is the header name for the trace ID
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	maxInboundTraceIDLength = 128
)

// RequestID assigns every request a trace ID. An inbound X-Trace-ID, or the X-Request-ID set by
// the load balancer, is kept when it is well formed; otherwise a UUID is generated.
// The ID is echoed in X-Trace-ID and stored on both the echo context and the request context.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := inboundTraceID(req.Header.Get(TraceIDHeader), req.Header.Get(echo.HeaderXRequestID))
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(services.ContextWithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// inboundTraceID returns the first candidate that is safe to echo into headers, logs and pages
func inboundTraceID(candidates ...string) string {
	for _, candidate := range candidates {
		if validTraceID(candidate) {
			return candidate
		}
	}
	return ""
}

// validTraceID accepts 1..128 printable ASCII characters without spaces
func validTraceID(id string) bool {
	if id == "" || len(id) > maxInboundTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetTraceID extracts the trace ID from the Echo context, empty when RequestID has not run
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
