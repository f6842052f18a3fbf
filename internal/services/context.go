package services

import (
	"context"

	"itapay-admin/internal/models"
)

type contextKey string

const (
	traceIDKey  contextKey = "trace_id"
	operatorKey contextKey = "operator"
)

// ContextWithTraceID stores the request trace ID for loggers further down the call chain
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored by ContextWithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// ContextWithOperator stores the authenticated operator's claims
func ContextWithOperator(ctx context.Context, claims *models.AdminClaims) context.Context {
	return context.WithValue(ctx, operatorKey, claims)
}

// OperatorIDFromContext returns the authenticated operator's user ID, or "" when the console runs without auth
func OperatorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if claims, ok := ctx.Value(operatorKey).(*models.AdminClaims); ok && claims != nil {
		return claims.UserID
	}
	return ""
}
