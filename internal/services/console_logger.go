package services

import (
	"context"
	"log/slog"
	"time"

	"itapay-admin/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// ConsoleLogger provides structured logging for console events
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger
func NewConsoleLogger(logger *slog.Logger) ConsoleLoggerInterface {
	return &ConsoleLogger{
		logger: logger,
	}
}

// LogPageLoadFailed logs a backend failure that left a page in its error state
func (cl *ConsoleLogger) LogPageLoadFailed(ctx context.Context, page string, err error) {
	cl.logger.WarnContext(ctx, "page load failed",
		slog.String("event_type", "page_load_failed"),
		slog.String("page", page),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogCustomerDecision logs an accepted approve/reject decision with the status the backend now holds
func (cl *ConsoleLogger) LogCustomerDecision(ctx context.Context, customer *models.Customer, decision models.Decision, operatorID string) {
	if customer == nil {
		return
	}
	cl.logger.InfoContext(ctx, "customer decision applied",
		slog.String("event_type", "customer_decision"),
		slog.String("customer_id", customer.ID),
		slog.String("decision", string(decision)),
		slog.String("status", customer.Status),
		slog.String("email", RedactedValue),
		slog.String("tax_id", RedactedValue),
		slog.String("operator_id", operatorID),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogCustomerDecisionFailed logs a decision the backend did not apply
func (cl *ConsoleLogger) LogCustomerDecisionFailed(ctx context.Context, customerID string, decision models.Decision, err error) {
	cl.logger.ErrorContext(ctx, "customer decision failed",
		slog.String("event_type", "customer_decision_failed"),
		slog.String("customer_id", customerID),
		slog.String("decision", string(decision)),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogAuthorizationFailure logs a request turned away by the operator token gate
func (cl *ConsoleLogger) LogAuthorizationFailure(ctx context.Context, reason string, path string) {
	cl.logger.WarnContext(ctx, "authorization failed",
		slog.String("event_type", "authorization_failed"),
		slog.String("reason", reason),
		slog.String("path", path),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
