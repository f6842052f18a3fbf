package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"itapay-admin/internal/backend"
	"itapay-admin/internal/models"
	"itapay-admin/internal/views"
)

// ConsoleService assembles page state from the payments backend
type ConsoleService struct {
	customers backend.CustomerAPI
	accounts  backend.AccountAPI
	transfers backend.TransferAPI
	logger    ConsoleLoggerInterface
	metrics   MetricsRecorderInterface
}

// NewConsoleService creates a console service over the backend APIs
func NewConsoleService(
	customers backend.CustomerAPI,
	accounts backend.AccountAPI,
	transfers backend.TransferAPI,
	logger ConsoleLoggerInterface,
	metrics MetricsRecorderInterface,
) ConsoleServiceInterface {
	return &ConsoleService{
		customers: customers,
		accounts:  accounts,
		transfers: transfers,
		logger:    logger,
		metrics:   metrics,
	}
}

// Dashboard fetches customers and accounts together; either failure fails the page
func (s *ConsoleService) Dashboard(ctx context.Context) views.DashboardPage {
	var (
		customers []models.Customer
		accounts  []models.Account
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customers.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.accounts.List(gctx, "")
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.LogPageLoadFailed(ctx, "dashboard", err)
		return views.DashboardPage{Stats: views.Fail[views.DashboardStats](err)}
	}

	stats := views.ComputeDashboard(customers, accounts)
	s.metrics.RecordGauge("pending_customers", float64(stats.PendingCustomers), nil)

	return views.DashboardPage{Stats: views.Ok(stats)}
}

// Customers fetches every customer and filters locally
func (s *ConsoleService) Customers(ctx context.Context, filter views.CustomerFilter) views.CustomersPage {
	page := views.CustomersPage{
		Filter:        filter,
		StatusOptions: models.CustomerStatusFilterOptions,
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		s.logger.LogPageLoadFailed(ctx, "customers", err)
		page.Customers = views.Fail[[]models.Customer](err)
		return page
	}

	page.Customers = views.Ok(views.FilterCustomers(customers, filter))
	return page
}

// CustomerDetail fetches a customer and its accounts together
func (s *ConsoleService) CustomerDetail(ctx context.Context, customerID string) views.CustomerDetailPage {
	page := views.CustomerDetailPage{CustomerID: customerID}

	detail, err := s.loadCustomerDetail(ctx, customerID)
	if err != nil {
		s.logger.LogPageLoadFailed(ctx, "customer_detail", err)
		page.Detail = views.Fail[views.CustomerDetail](err)
		return page
	}

	page.Detail = views.Ok(detail)
	return page
}

// DecideCustomer asks the backend to apply the decision, then re-reads the customer.
// The page always reflects the backend's record after the attempt, whatever its outcome.
func (s *ConsoleService) DecideCustomer(ctx context.Context, customerID string, decision models.Decision) views.CustomerDetailPage {
	start := time.Now()

	_, updateErr := s.customers.UpdateStatus(ctx, customerID, decision.TargetStatus())
	s.metrics.RecordProcessingTime("customer_decision", time.Since(start))

	page := s.CustomerDetail(ctx, customerID)

	if updateErr != nil {
		s.logger.LogCustomerDecisionFailed(ctx, customerID, decision, updateErr)
		s.metrics.IncrementCounter("customer_decision", map[string]string{
			"decision": string(decision),
			"status":   "failed",
		})
		page.Notice = &views.Notice{Kind: views.NoticeError, Message: decisionFailedMessage(decision)}
		return page
	}

	s.metrics.IncrementCounter("customer_decision", map[string]string{
		"decision": string(decision),
		"status":   "success",
	})
	if !page.Detail.Failed() {
		s.logger.LogCustomerDecision(ctx, page.Detail.Data.Customer, decision, OperatorIDFromContext(ctx))
	}
	page.Notice = &views.Notice{Kind: views.NoticeSuccess, Message: decisionSuccessMessage(decision)}
	return page
}

// Accounts fetches every account and filters locally
func (s *ConsoleService) Accounts(ctx context.Context, search string) views.AccountsPage {
	page := views.AccountsPage{Search: search}

	accounts, err := s.accounts.List(ctx, "")
	if err != nil {
		s.logger.LogPageLoadFailed(ctx, "accounts", err)
		page.Accounts = views.Fail[views.AccountList](err)
		return page
	}

	page.Accounts = views.Ok(views.NewAccountList(accounts, search))
	return page
}

// AccountDetail fetches the account, its balance and its transfers together.
// Transfers never fail the page.
func (s *ConsoleService) AccountDetail(ctx context.Context, accountID string) views.AccountDetailPage {
	var detail views.AccountDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		account, err := s.accounts.Get(gctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		detail.Account = account
		return nil
	})
	g.Go(func() error {
		balance, err := s.accounts.GetBalance(gctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to get account balance: %w", err)
		}
		detail.Balance = balance
		return nil
	})
	g.Go(func() error {
		detail.Transfers = s.transfers.List(gctx, accountID)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.LogPageLoadFailed(ctx, "account_detail", err)
		return views.AccountDetailPage{AccountID: accountID, Detail: views.Fail[views.AccountDetail](err)}
	}

	return views.AccountDetailPage{AccountID: accountID, Detail: views.Ok(detail)}
}

// Transfers lists transfers, optionally for one account
func (s *ConsoleService) Transfers(ctx context.Context, accountID string) views.TransfersPage {
	return views.TransfersPage{
		AccountID: accountID,
		Transfers: s.transfers.List(ctx, accountID),
	}
}

func (s *ConsoleService) loadCustomerDetail(ctx context.Context, customerID string) (views.CustomerDetail, error) {
	var detail views.CustomerDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		customer, err := s.customers.Get(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to get customer: %w", err)
		}
		detail.Customer = customer
		return nil
	})
	g.Go(func() error {
		accounts, err := s.accounts.List(gctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to list customer accounts: %w", err)
		}
		detail.Accounts = accounts
		return nil
	})

	if err := g.Wait(); err != nil {
		return views.CustomerDetail{}, err
	}
	return detail, nil
}

func decisionSuccessMessage(decision models.Decision) string {
	if decision == models.DecisionApprove {
		return "Customer approved successfully!"
	}
	return "Customer rejected"
}

func decisionFailedMessage(decision models.Decision) string {
	if decision == models.DecisionApprove {
		return "Failed to approve customer"
	}
	return "Failed to reject customer"
}
