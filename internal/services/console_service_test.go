package services

import (
	"context"
	"errors"
	"testing"

	"itapay-admin/internal/backend"
	"itapay-admin/internal/backend/backend_mocks"
	"itapay-admin/internal/models"
	"itapay-admin/internal/services/service_mocks"
	"itapay-admin/internal/views"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ConsoleServiceTestSuite is the test suite for ConsoleService
type ConsoleServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	customers *backend_mocks.MockCustomerAPI
	accounts  *backend_mocks.MockAccountAPI
	transfers *backend_mocks.MockTransferAPI
	logger    *service_mocks.MockConsoleLoggerInterface
	metrics   *service_mocks.MockMetricsRecorderInterface
	service   ConsoleServiceInterface
	ctx       context.Context
}

func (s *ConsoleServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customers = backend_mocks.NewMockCustomerAPI(s.ctrl)
	s.accounts = backend_mocks.NewMockAccountAPI(s.ctrl)
	s.transfers = backend_mocks.NewMockTransferAPI(s.ctrl)
	s.logger = service_mocks.NewMockConsoleLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewConsoleService(s.customers, s.accounts, s.transfers, s.logger, s.metrics)
	s.ctx = ContextWithTraceID(context.Background(), uuid.New().String())
}

func (s *ConsoleServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConsoleServiceSuite(t *testing.T) {
	suite.Run(t, new(ConsoleServiceTestSuite))
}

// Helper method to create test customer
func (s *ConsoleServiceTestSuite) createTestCustomer(status models.CustomerStatus) models.Customer {
	return models.Customer{
		ID:        uuid.New().String(),
		Type:      models.CustomerTypeIndividual,
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
		TaxID:     gofakeit.SSN(),
		Status:    string(status),
		CreatedAt: "2024-01-15T10:30:00Z",
	}
}

// Helper method to create test account
func (s *ConsoleServiceTestSuite) createTestAccount(customerID, status string, available float64) models.Account {
	return models.Account{
		ID:               uuid.New().String(),
		CustomerID:       customerID,
		Type:             models.AccountTypeChecking,
		Status:           status,
		BalanceAvailable: decimal.NewFromFloat(available),
		BalanceCurrent:   decimal.NewFromFloat(available),
		AccountNumber:    gofakeit.Numerify("##########"),
		RoutingNumber:    "021000021",
		Currency:         "USD",
		CreatedAt:        "2024-01-15T10:30:00Z",
	}
}

func (s *ConsoleServiceTestSuite) TestDashboard_Success() {
	customers := []models.Customer{
		s.createTestCustomer(models.CustomerStatusActive),
		s.createTestCustomer(models.CustomerStatusPendingKYC),
		s.createTestCustomer(models.CustomerStatusApproved),
	}
	accounts := []models.Account{
		s.createTestAccount(customers[0].ID, models.AccountStatusOpen, 100.25),
		s.createTestAccount(customers[2].ID, models.AccountStatusClosed, 50),
	}

	s.customers.EXPECT().List(gomock.Any()).Return(customers, nil)
	s.accounts.EXPECT().List(gomock.Any(), "").Return(accounts, nil)
	s.metrics.EXPECT().RecordGauge("pending_customers", float64(1), gomock.Nil())

	page := s.service.Dashboard(s.ctx)

	s.Require().False(page.Stats.Failed())
	stats := page.Stats.Data
	s.Equal(3, stats.TotalCustomers)
	s.Equal(2, stats.ActiveCustomers)
	s.Equal(1, stats.PendingCustomers)
	s.Equal(2, stats.TotalAccounts)
	s.Equal(1, stats.OpenAccounts)
	s.True(decimal.NewFromFloat(150.25).Equal(stats.TotalBalance))
}

func (s *ConsoleServiceTestSuite) TestDashboard_AnyFetchFailureFailsPage() {
	backendErr := errors.New("connection refused")

	s.customers.EXPECT().List(gomock.Any()).Return([]models.Customer{s.createTestCustomer(models.CustomerStatusActive)}, nil)
	s.accounts.EXPECT().List(gomock.Any(), "").Return(nil, backendErr)
	s.logger.EXPECT().LogPageLoadFailed(gomock.Any(), "dashboard", backendErr)

	page := s.service.Dashboard(s.ctx)

	s.True(page.Stats.Failed())
	s.ErrorIs(page.Stats.Err, backendErr)
	s.Zero(page.Stats.Data.TotalCustomers)
}

func (s *ConsoleServiceTestSuite) TestDashboard_FailureCancelsSiblingFetch() {
	backendErr := errors.New("backend unavailable")

	s.customers.EXPECT().List(gomock.Any()).Return(nil, backendErr)
	s.accounts.EXPECT().List(gomock.Any(), "").DoAndReturn(func(ctx context.Context, _ string) ([]models.Account, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	s.logger.EXPECT().LogPageLoadFailed(gomock.Any(), "dashboard", backendErr)

	page := s.service.Dashboard(s.ctx)

	s.ErrorIs(page.Stats.Err, backendErr)
}

func (s *ConsoleServiceTestSuite) TestCustomers_FiltersLocally() {
	customers := []models.Customer{
		s.createTestCustomer(models.CustomerStatusActive),
		s.createTestCustomer(models.CustomerStatusPendingKYC),
		s.createTestCustomer(models.CustomerStatusActive),
	}
	s.customers.EXPECT().List(gomock.Any()).Return(customers, nil).Times(3)

	approved := s.service.Customers(s.ctx, views.CustomerFilter{Status: "approved"})
	s.Require().False(approved.Customers.Failed())
	s.Empty(approved.Customers.Data)
	s.Equal(models.CustomerStatusFilterOptions, approved.StatusOptions)

	all := s.service.Customers(s.ctx, views.CustomerFilter{Status: views.StatusAll})
	s.Equal(customers, all.Customers.Data)

	pending := s.service.Customers(s.ctx, views.CustomerFilter{Status: "pending_kyc"})
	s.Require().Len(pending.Customers.Data, 1)
	s.Equal(customers[1].ID, pending.Customers.Data[0].ID)
}

func (s *ConsoleServiceTestSuite) TestCustomers_FetchFailure() {
	backendErr := errors.New("timeout")
	s.customers.EXPECT().List(gomock.Any()).Return(nil, backendErr)
	s.logger.EXPECT().LogPageLoadFailed(gomock.Any(), "customers", backendErr)

	page := s.service.Customers(s.ctx, views.CustomerFilter{Search: "ana"})

	s.True(page.Customers.Failed())
	s.Equal("ana", page.Filter.Search)
}

func (s *ConsoleServiceTestSuite) TestCustomerDetail_Success() {
	customer := s.createTestCustomer(models.CustomerStatusPendingKYC)
	accounts := []models.Account{s.createTestAccount(customer.ID, models.AccountStatusOpen, 10)}

	s.customers.EXPECT().Get(gomock.Any(), customer.ID).Return(&customer, nil)
	s.accounts.EXPECT().List(gomock.Any(), customer.ID).Return(accounts, nil)

	page := s.service.CustomerDetail(s.ctx, customer.ID)

	s.Require().False(page.Detail.Failed())
	s.Equal(customer.ID, page.CustomerID)
	s.Equal(&customer, page.Detail.Data.Customer)
	s.Equal(accounts, page.Detail.Data.Accounts)
	s.Nil(page.Notice)
}

func (s *ConsoleServiceTestSuite) TestCustomerDetail_NotFound() {
	id := uuid.New().String()
	notFound := &backend.APIError{Method: "GET", Path: "/customers/" + id, StatusCode: 404}

	s.customers.EXPECT().Get(gomock.Any(), id).Return(nil, notFound)
	s.accounts.EXPECT().List(gomock.Any(), id).Return([]models.Account{}, nil).AnyTimes()
	s.logger.EXPECT().LogPageLoadFailed(gomock.Any(), "customer_detail", gomock.Any())

	page := s.service.CustomerDetail(s.ctx, id)

	s.True(page.Detail.Failed())
	s.ErrorIs(page.Detail.Err, backend.ErrNotFound)
}

func (s *ConsoleServiceTestSuite) TestDecideCustomer_ApproveShowsRefetchedStatus() {
	customer := s.createTestCustomer(models.CustomerStatusPendingKYC)
	// The backend may land on a different status than the one requested
	refetched := customer
	refetched.Status = string(models.CustomerStatusActive)

	gomock.InOrder(
		s.customers.EXPECT().UpdateStatus(gomock.Any(), customer.ID, models.CustomerStatusApproved).Return(&refetched, nil),
		s.customers.EXPECT().Get(gomock.Any(), customer.ID).Return(&refetched, nil),
	)
	s.accounts.EXPECT().List(gomock.Any(), customer.ID).Return([]models.Account{}, nil)
	s.metrics.EXPECT().RecordProcessingTime("customer_decision", gomock.Any())
	s.metrics.EXPECT().IncrementCounter("customer_decision", map[string]string{"decision": "approve", "status": "success"})
	s.logger.EXPECT().LogCustomerDecision(gomock.Any(), &refetched, models.DecisionApprove, "")

	page := s.service.DecideCustomer(s.ctx, customer.ID, models.DecisionApprove)

	s.Require().False(page.Detail.Failed())
	s.Equal("active", page.Detail.Data.Customer.Status)
	s.False(page.Detail.Data.Customer.IsActionable())
	s.Require().NotNil(page.Notice)
	s.Equal(views.NoticeSuccess, page.Notice.Kind)
	s.Equal("Customer approved successfully!", page.Notice.Message)
}

func (s *ConsoleServiceTestSuite) TestDecideCustomer_RejectRecordsOperator() {
	customer := s.createTestCustomer(models.CustomerStatusPending)
	rejected := customer
	rejected.Status = string(models.CustomerStatusRejected)
	operatorID := uuid.New().String()
	ctx := ContextWithOperator(s.ctx, &models.AdminClaims{UserID: operatorID, Role: models.RoleAdmin})

	s.customers.EXPECT().UpdateStatus(gomock.Any(), customer.ID, models.CustomerStatusRejected).Return(&rejected, nil)
	s.customers.EXPECT().Get(gomock.Any(), customer.ID).Return(&rejected, nil)
	s.accounts.EXPECT().List(gomock.Any(), customer.ID).Return(nil, nil)
	s.metrics.EXPECT().RecordProcessingTime("customer_decision", gomock.Any())
	s.metrics.EXPECT().IncrementCounter("customer_decision", map[string]string{"decision": "reject", "status": "success"})
	s.logger.EXPECT().LogCustomerDecision(gomock.Any(), &rejected, models.DecisionReject, operatorID)

	page := s.service.DecideCustomer(ctx, customer.ID, models.DecisionReject)

	s.Equal("rejected", page.Detail.Data.Customer.Status)
	s.Equal("Customer rejected", page.Notice.Message)
}

func (s *ConsoleServiceTestSuite) TestDecideCustomer_FailureKeepsPreviousState() {
	customer := s.createTestCustomer(models.CustomerStatusPendingKYC)
	updateErr := &backend.APIError{Method: "PATCH", Path: "/customers/" + customer.ID + "/status", StatusCode: 422, Message: "invalid transition"}

	s.customers.EXPECT().UpdateStatus(gomock.Any(), customer.ID, models.CustomerStatusRejected).Return(nil, updateErr)
	s.customers.EXPECT().Get(gomock.Any(), customer.ID).Return(&customer, nil)
	s.accounts.EXPECT().List(gomock.Any(), customer.ID).Return([]models.Account{}, nil)
	s.metrics.EXPECT().RecordProcessingTime("customer_decision", gomock.Any())
	s.metrics.EXPECT().IncrementCounter("customer_decision", map[string]string{"decision": "reject", "status": "failed"})
	s.logger.EXPECT().LogCustomerDecisionFailed(gomock.Any(), customer.ID, models.DecisionReject, updateErr)

	page := s.service.DecideCustomer(s.ctx, customer.ID, models.DecisionReject)

	s.Require().False(page.Detail.Failed())
	s.Equal("pending_kyc", page.Detail.Data.Customer.Status)
	s.True(page.Detail.Data.Customer.IsActionable())
	s.Require().NotNil(page.Notice)
	s.Equal(views.NoticeError, page.Notice.Kind)
	s.Equal("Failed to reject customer", page.Notice.Message)
}

func (s *ConsoleServiceTestSuite) TestAccounts_TotalCoversUnfilteredList() {
	accounts := []models.Account{
		s.createTestAccount("c1", models.AccountStatusOpen, 100),
		s.createTestAccount("c2", models.AccountStatusOpen, 250.5),
	}
	accounts[0].AccountNumber = "1111222233"
	accounts[1].AccountNumber = "4444555566"

	s.accounts.EXPECT().List(gomock.Any(), "").Return(accounts, nil)

	page := s.service.Accounts(s.ctx, "1111")

	s.Require().False(page.Accounts.Failed())
	s.Len(page.Accounts.Data.Accounts, 1)
	s.True(decimal.NewFromFloat(350.5).Equal(page.Accounts.Data.TotalBalance))
	s.Equal("1111", page.Search)
}

func (s *ConsoleServiceTestSuite) TestAccountDetail_TransfersDegradeToEmpty() {
	account := s.createTestAccount("c1", models.AccountStatusOpen, 75)
	balance := &models.AccountBalance{AccountID: account.ID, Available: decimal.NewFromInt(75), Currency: "USD"}

	s.accounts.EXPECT().Get(gomock.Any(), account.ID).Return(&account, nil)
	s.accounts.EXPECT().GetBalance(gomock.Any(), account.ID).Return(balance, nil)
	s.transfers.EXPECT().List(gomock.Any(), account.ID).Return([]models.Transfer{})

	page := s.service.AccountDetail(s.ctx, account.ID)

	s.Require().False(page.Detail.Failed())
	s.Equal(&account, page.Detail.Data.Account)
	s.Equal(balance, page.Detail.Data.Balance)
	s.Empty(page.Detail.Data.Transfers)
}

func (s *ConsoleServiceTestSuite) TestAccountDetail_BalanceFailureFailsPage() {
	account := s.createTestAccount("c1", models.AccountStatusOpen, 75)
	backendErr := errors.New("bad gateway")

	s.accounts.EXPECT().Get(gomock.Any(), account.ID).Return(&account, nil)
	s.accounts.EXPECT().GetBalance(gomock.Any(), account.ID).Return(nil, backendErr)
	s.transfers.EXPECT().List(gomock.Any(), account.ID).Return([]models.Transfer{})
	s.logger.EXPECT().LogPageLoadFailed(gomock.Any(), "account_detail", gomock.Any())

	page := s.service.AccountDetail(s.ctx, account.ID)

	s.True(page.Detail.Failed())
	s.ErrorIs(page.Detail.Err, backendErr)
}

func (s *ConsoleServiceTestSuite) TestTransfers() {
	transfers := []models.Transfer{{ID: uuid.New().String(), AccountID: "acc-1", Amount: decimal.NewFromInt(20), Status: "completed"}}

	s.transfers.EXPECT().List(gomock.Any(), "acc-1").Return(transfers)
	s.transfers.EXPECT().List(gomock.Any(), "").Return([]models.Transfer{})

	page := s.service.Transfers(s.ctx, "acc-1")
	s.Equal(transfers, page.Transfers)
	s.False(page.ComingSoon())

	s.True(s.service.Transfers(s.ctx, "").ComingSoon())
}
