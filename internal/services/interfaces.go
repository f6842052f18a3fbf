package services

import (
	"context"
	"time"

	"itapay-admin/internal/models"
	"itapay-admin/internal/views"
)

// ConsoleServiceInterface loads the state of every console page.
// Fetch failures are carried inside the returned page, never as a separate error.
type ConsoleServiceInterface interface {
	Dashboard(ctx context.Context) views.DashboardPage
	Customers(ctx context.Context, filter views.CustomerFilter) views.CustomersPage
	CustomerDetail(ctx context.Context, customerID string) views.CustomerDetailPage
	DecideCustomer(ctx context.Context, customerID string, decision models.Decision) views.CustomerDetailPage
	Accounts(ctx context.Context, search string) views.AccountsPage
	AccountDetail(ctx context.Context, accountID string) views.AccountDetailPage
	Transfers(ctx context.Context, accountID string) views.TransfersPage
}

// ConsoleLoggerInterface records console domain events
type ConsoleLoggerInterface interface {
	LogPageLoadFailed(ctx context.Context, page string, err error)
	LogCustomerDecision(ctx context.Context, customer *models.Customer, decision models.Decision, operatorID string)
	LogCustomerDecisionFailed(ctx context.Context, customerID string, decision models.Decision, err error)
	LogAuthorizationFailure(ctx context.Context, reason string, path string)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	ValidateAdminToken(tokenString string) (*models.AdminClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
