package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// Account represents a customer's bank account as reported by the backend.
// The three balance figures are independent; no relationship between them is assumed.
type Account struct {
	ID               string          `json:"id"`
	CustomerID       string          `json:"customer_id"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	BalanceAvailable decimal.Decimal `json:"balance_available"`
	BalanceCurrent   decimal.Decimal `json:"balance_current"`
	BalanceHold      decimal.Decimal `json:"balance_hold"`
	AccountNumber    string          `json:"account_number"`
	RoutingNumber    string          `json:"routing_number"`
	Currency         string          `json:"currency"`
	Name             string          `json:"name,omitempty"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at,omitempty"`
}

// AccountBalance is the response of the account balance endpoint
type AccountBalance struct {
	AccountID string          `json:"account_id"`
	Available decimal.Decimal `json:"available"`
	Current   decimal.Decimal `json:"current"`
	Hold      decimal.Decimal `json:"hold"`
	Currency  string          `json:"currency"`
}

var titleCaser = cases.Title(language.English)

// IsOpen returns true if the account is open
func (a *Account) IsOpen() bool {
	return a.Status == AccountStatusOpen
}

// HasHold reports whether part of the balance is on hold
func (a *Account) HasHold() bool {
	return a.BalanceHold.GreaterThan(decimal.Zero)
}

// MaskedNumber returns the account number reduced to its last four digits
func (a *Account) MaskedNumber() string {
	n := a.AccountNumber
	if len(n) > 4 {
		n = n[len(n)-4:]
	}
	return "****" + n
}

// ShortID returns the first eight characters of the account ID
func (a *Account) ShortID() string {
	return shortID(a.ID)
}

// TypeLabel returns the title-cased account type, e.g. "Checking"
func (a *Account) TypeLabel() string {
	return titleCaser.String(a.Type)
}

// TotalAvailable sums the available balance of every account
func TotalAvailable(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].BalanceAvailable)
	}
	return total
}
