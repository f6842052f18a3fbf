package dto

import (
	"itapay-admin/internal/models"
	"itapay-admin/internal/views"
)

// CustomerListRequest is the customer list filter form
type CustomerListRequest struct {
	Search string `query:"q" validate:"max=200"`
	Status string `query:"status" validate:"omitempty,customer_status_filter"`
}

// Filter converts the request into a list filter; an empty status means all
func (r CustomerListRequest) Filter() views.CustomerFilter {
	status := r.Status
	if status == "" {
		status = views.StatusAll
	}
	return views.CustomerFilter{Search: r.Search, Status: status}
}

// CustomerDetailRequest identifies a customer and the decision awaiting confirmation, if any
type CustomerDetailRequest struct {
	ID      string `param:"id" validate:"required,resource_id"`
	Confirm string `query:"confirm" validate:"omitempty,decision"`
}

// ConfirmDecision returns the decision named by confirm, empty when none
func (r CustomerDetailRequest) ConfirmDecision() models.Decision {
	decision, _ := models.ParseDecision(r.Confirm)
	return decision
}

// CustomerDecisionRequest is the approve/reject form submission
type CustomerDecisionRequest struct {
	ID       string `param:"id" validate:"required,resource_id"`
	Decision string `param:"decision" validate:"required,decision"`
}

// AccountListRequest is the account search form
type AccountListRequest struct {
	Search string `query:"q" validate:"max=200"`
}

// AccountDetailRequest identifies an account
type AccountDetailRequest struct {
	ID string `param:"id" validate:"required,resource_id"`
}

// TransfersRequest optionally scopes the transfer list to one account
type TransfersRequest struct {
	AccountID string `query:"accountId" validate:"omitempty,resource_id"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Backend string `json:"backend"`
}
