package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"itapay-admin/internal/backend/backend_mocks"
	"itapay-admin/internal/config"
	"itapay-admin/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ClientTestSuite exercises the backend client against an httptest server
type ClientTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	metrics *backend_mocks.MockMetricsRecorder
	mux     *http.ServeMux
	server  *httptest.Server
	client  *Client
	logger  *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.metrics = backend_mocks.NewMockMetricsRecorder(s.ctrl)
	s.metrics.EXPECT().IncrementCounter("backend_request", gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime("backend_request", gomock.Any()).AnyTimes()

	s.mux = http.NewServeMux()
	s.server = httptest.NewServer(s.mux)
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.client = NewClient(&config.BackendConfig{BaseURL: s.server.URL}, s.metrics, s.logger)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	s.Require().NoError(json.NewEncoder(w).Encode(body))
}

func fakeCustomer(status string) models.Customer {
	return models.Customer{
		ID:        gofakeit.UUID(),
		Type:      models.CustomerTypeIndividual,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		TaxID:     gofakeit.SSN(),
		Status:    status,
		CreatedAt: "2024-01-15T10:30:00Z",
	}
}

func (s *ClientTestSuite) TestCustomersList() {
	expected := []models.Customer{fakeCustomer("pending_kyc"), fakeCustomer("active")}

	s.mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("application/json", r.Header.Get("Content-Type"))
		s.Empty(r.Header.Get("Authorization"))
		s.writeJSON(w, http.StatusOK, expected)
	})

	customers, err := s.client.Customers.List(context.Background())

	s.Require().NoError(err)
	s.Equal(expected, customers)
}

func (s *ClientTestSuite) TestCustomersGet_NotFound() {
	s.mux.HandleFunc("GET /customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, map[string]any{
			"error": map[string]string{"code": "NOT_FOUND", "message": "Customer not found"},
		})
	})

	customer, err := s.client.Customers.Get(context.Background(), "missing")

	s.Nil(customer)
	s.True(errors.Is(err, ErrNotFound))

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("NOT_FOUND", apiErr.Code)
	s.Equal("Customer not found", apiErr.Message)
	s.Equal("/customers/missing", apiErr.Path)
}

func (s *ClientTestSuite) TestCustomersUpdateStatus() {
	customer := fakeCustomer("approved")

	s.mux.HandleFunc("PATCH /customers/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		s.Equal(customer.ID, r.PathValue("id"))

		var body map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal(map[string]string{"status": "approved"}, body)

		s.writeJSON(w, http.StatusOK, customer)
	})

	updated, err := s.client.Customers.UpdateStatus(context.Background(), customer.ID, models.CustomerStatusApproved)

	s.Require().NoError(err)
	s.Equal("approved", updated.Status)
}

func (s *ClientTestSuite) TestCustomersUpdateStatus_BackendRejects() {
	s.mux.HandleFunc("PATCH /customers/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid transition"})
	})

	_, err := s.client.Customers.UpdateStatus(context.Background(), "c1", models.CustomerStatusRejected)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusUnprocessableEntity, apiErr.StatusCode)
	s.Equal("invalid transition", apiErr.Message)
	s.True(apiErr.IsClientError())
	s.False(errors.Is(err, ErrNotFound))
}

func (s *ClientTestSuite) TestAccountsList_Query() {
	testCases := []struct {
		name       string
		customerID string
		expected   string
	}{
		{name: "all accounts", customerID: "", expected: ""},
		{name: "scoped to customer", customerID: "cus_123", expected: "customerId=cus_123"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /accounts", func(w http.ResponseWriter, r *http.Request) {
				s.Equal(tc.expected, r.URL.RawQuery)
				s.writeJSON(w, http.StatusOK, []map[string]any{
					{"id": "acc_1", "customer_id": "cus_123", "balance_available": 10.5},
				})
			})
			server := httptest.NewServer(mux)
			defer server.Close()

			client := NewClient(&config.BackendConfig{BaseURL: server.URL}, s.metrics, s.logger)
			accounts, err := client.Accounts.List(context.Background(), tc.customerID)

			s.Require().NoError(err)
			s.Require().Len(accounts, 1)
			s.True(decimal.RequireFromString("10.5").Equal(accounts[0].BalanceAvailable))
		})
	}
}

func (s *ClientTestSuite) TestAccountsGetAndBalance() {
	s.mux.HandleFunc("GET /accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"id": r.PathValue("id"), "status": "open"})
	})
	s.mux.HandleFunc("GET /accounts/{id}/balance", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]any{"available": 100, "current": 120, "hold": 20, "currency": "USD"})
	})

	account, err := s.client.Accounts.Get(context.Background(), "acc_9")
	s.Require().NoError(err)
	s.Equal("acc_9", account.ID)

	balance, err := s.client.Accounts.GetBalance(context.Background(), "acc_9")
	s.Require().NoError(err)
	s.Equal("acc_9", balance.AccountID)
	s.True(decimal.NewFromInt(20).Equal(balance.Hold))
}

func (s *ClientTestSuite) TestTransfersList() {
	s.mux.HandleFunc("GET /transfers", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("acc_1", r.URL.Query().Get("accountId"))
		s.writeJSON(w, http.StatusOK, []map[string]any{
			{"id": "tr_1", "account_id": "acc_1", "amount": 42.1, "direction": "debit", "status": "completed"},
		})
	})

	transfers := s.client.Transfers.List(context.Background(), "acc_1")

	s.Require().Len(transfers, 1)
	s.Equal("tr_1", transfers[0].ID)
}

func (s *ClientTestSuite) TestTransfersList_EndpointMissingYieldsEmpty() {
	transfers := s.client.Transfers.List(context.Background(), "")

	s.NotNil(transfers)
	s.Empty(transfers)
}

func (s *ClientTestSuite) TestTransfersList_TransportFailureYieldsEmpty() {
	s.server.Close()

	transfers := s.client.Transfers.List(context.Background(), "acc_1")

	s.NotNil(transfers)
	s.Empty(transfers)
}

func (s *ClientTestSuite) TestTransportFailurePropagates() {
	s.server.Close()

	customers, err := s.client.Customers.List(context.Background())

	s.Nil(customers)
	s.Error(err)

	var apiErr *APIError
	s.False(errors.As(err, &apiErr))
}

func (s *ClientTestSuite) TestCancelledContextAbortsRequest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.Customers.List(ctx)

	s.True(errors.Is(err, context.Canceled))
}

func (s *ClientTestSuite) TestAuthTransportAddsAPIKey() {
	s.mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer secret-key", r.Header.Get("Authorization"))
		s.writeJSON(w, http.StatusOK, []models.Customer{})
	})

	client := NewClient(&config.BackendConfig{BaseURL: s.server.URL, APIKey: "secret-key"}, s.metrics, s.logger)
	customers, err := client.Customers.List(context.Background())

	s.Require().NoError(err)
	s.Empty(customers)
}

func (s *ClientTestSuite) TestLoggingTransportRecordsMetrics() {
	ctrl := gomock.NewController(s.T())
	metrics := backend_mocks.NewMockMetricsRecorder(ctrl)
	metrics.EXPECT().IncrementCounter("backend_request", map[string]string{"method": "GET", "status": "200"}).Times(1)
	metrics.EXPECT().RecordProcessingTime("backend_request", gomock.Any()).Times(1)

	s.mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, []models.Customer{})
	})

	client := NewClient(&config.BackendConfig{BaseURL: s.server.URL}, metrics, s.logger)
	_, err := client.Customers.List(context.Background())

	s.Require().NoError(err)
	ctrl.Finish()
}

func (s *ClientTestSuite) TestBreakerTripsOnRepeatedServerErrors() {
	calls := 0
	s.mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		calls++
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database unavailable"})
	})

	client := NewClient(&config.BackendConfig{
		BaseURL:             s.server.URL,
		BreakerMaxFailures:  2,
		BreakerResetTimeout: time.Minute,
	}, s.metrics, s.logger)
	s.Equal(StateClosed, client.BreakerState())

	for i := 0; i < 2; i++ {
		_, err := client.Customers.List(context.Background())
		s.Error(err)
	}
	s.Equal(StateOpen, client.BreakerState())

	_, err := client.Customers.List(context.Background())
	s.ErrorIs(err, ErrCircuitOpen)
	s.Equal(2, calls)
}

func (s *ClientTestSuite) TestBreakerStateWithoutBreaker() {
	s.Equal(StateClosed, s.client.BreakerState())
}
