package views

import (
	"github.com/shopspring/decimal"

	"itapay-admin/internal/models"
)

// EmptyState is the title and hint shown in place of an empty table
type EmptyState struct {
	Title string
	Hint  string
}

// NoticeKind selects the styling of a page notice
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a one-off message shown at the top of a page after an action
type Notice struct {
	Kind    NoticeKind
	Message string
}

// DashboardPage is the state of the dashboard
type DashboardPage struct {
	Stats Result[DashboardStats]
}

// CustomersPage is the state of the customer list
type CustomersPage struct {
	Filter    CustomerFilter
	Customers Result[[]models.Customer]
	// StatusOptions are the selectable status filters, "all" excluded
	StatusOptions []models.CustomerStatus
}

// Empty describes the list when no customer is shown
func (p CustomersPage) Empty() EmptyState {
	if p.Filter.IsActive() {
		return EmptyState{Title: "No customers found", Hint: "Try adjusting your filters"}
	}
	return EmptyState{Title: "No customers yet", Hint: "Customers will appear here once they sign up"}
}

// AccountList is the filtered account list with the balance of every account
type AccountList struct {
	Accounts     []models.Account
	TotalBalance decimal.Decimal
}

// AccountsPage is the state of the account list
type AccountsPage struct {
	Search   string
	Accounts Result[AccountList]
}

// NewAccountList filters accounts by search; the total covers the unfiltered collection
func NewAccountList(accounts []models.Account, search string) AccountList {
	return AccountList{
		Accounts:     FilterAccounts(accounts, search),
		TotalBalance: models.TotalAvailable(accounts),
	}
}

// Empty describes the list when no account is shown
func (p AccountsPage) Empty() EmptyState {
	if p.Search != "" {
		return EmptyState{Title: "No accounts found", Hint: "Try a different search term"}
	}
	return EmptyState{Title: "No accounts yet", Hint: "Accounts will appear when customers are approved"}
}

// CustomerDetail joins a customer with its accounts
type CustomerDetail struct {
	Customer *models.Customer
	Accounts []models.Account
}

// CustomerDetailPage is the state of the customer detail page
type CustomerDetailPage struct {
	CustomerID string
	Detail     Result[CustomerDetail]
	// Confirm is the decision awaiting confirmation, empty when no modal is open
	Confirm models.Decision
	Notice  *Notice
}

// ConfirmMessage is the body of the confirmation modal
func (p CustomerDetailPage) ConfirmMessage() string {
	status := p.Confirm.TargetStatus()
	if p.Confirm == models.DecisionApprove {
		return `Are you sure you want to approve this customer? This will change their status to "` +
			string(status) + `" and they will be able to access their account.`
	}
	return `Are you sure you want to reject this customer? This action will change their status to "` +
		string(status) + `".`
}

// ConfirmTitle is the heading of the confirmation modal
func (p CustomerDetailPage) ConfirmTitle() string {
	if p.Confirm == models.DecisionApprove {
		return "Approve Customer"
	}
	return "Reject Customer"
}

// ErrorPage is rendered for requests that cannot show their page at all
type ErrorPage struct {
	Status  int
	Title   string
	Message string
	TraceID string
}

// AccountDetail joins an account with its balance and transfers
type AccountDetail struct {
	Account   *models.Account
	Balance   *models.AccountBalance
	Transfers []models.Transfer
}

// AccountDetailPage is the state of the account detail page
type AccountDetailPage struct {
	AccountID string
	Detail    Result[AccountDetail]
}

// TransfersPage is the state of the transfers page
type TransfersPage struct {
	AccountID string
	Transfers []models.Transfer
}

// ComingSoon reports whether the placeholder replaces the transfer table
func (p TransfersPage) ComingSoon() bool {
	return len(p.Transfers) == 0
}
