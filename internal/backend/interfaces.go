package backend

import (
	"context"
	"time"

	"itapay-admin/internal/models"
)

// CustomerAPI covers the backend's customer endpoints
type CustomerAPI interface {
	// List returns every customer in backend order
	List(ctx context.Context) ([]models.Customer, error)
	// Get returns one customer; a missing customer yields an error matching ErrNotFound
	Get(ctx context.Context, id string) (*models.Customer, error)
	// UpdateStatus requests a status change and returns the record the backend sends back
	UpdateStatus(ctx context.Context, id string, status models.CustomerStatus) (*models.Customer, error)
}

// AccountAPI covers the backend's account endpoints
type AccountAPI interface {
	// List returns all accounts, scoped to one customer when customerID is not empty
	List(ctx context.Context, customerID string) ([]models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	GetBalance(ctx context.Context, id string) (*models.AccountBalance, error)
}

// TransferAPI covers the backend's transfer endpoint.
// List is best effort and reports failures as an empty result.
type TransferAPI interface {
	List(ctx context.Context, accountID string) []models.Transfer
}

// MetricsRecorder is the subset of the console metrics recorder used by the client
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
