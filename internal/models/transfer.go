package models

import "github.com/shopspring/decimal"

const (
	TransferDirectionCredit = "credit"
	TransferDirectionDebit  = "debit"
)

// Transfer represents money movement on an account
type Transfer struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	CounterpartyID string          `json:"counterparty_id,omitempty"`
	Type           string          `json:"type"`
	Direction      string          `json:"direction"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Description    string          `json:"description,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
	CompletedAt    string          `json:"completed_at,omitempty"`
}

// IsCredit returns true if money moved into the account
func (t *Transfer) IsCredit() bool {
	return t.Direction == TransferDirectionCredit
}

// SignedAmount returns the amount negated for debits
func (t *Transfer) SignedAmount() decimal.Decimal {
	if t.Direction == TransferDirectionDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
