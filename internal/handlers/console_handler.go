package handlers

import (
	"itapay-admin/internal/backend"
	"itapay-admin/internal/dto"
	"itapay-admin/internal/errors"
	"itapay-admin/internal/models"
	"itapay-admin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ConsoleHandler serves the operator console pages
type ConsoleHandler struct {
	service services.ConsoleServiceInterface
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(service services.ConsoleServiceInterface) *ConsoleHandler {
	return &ConsoleHandler{service: service}
}

// Dashboard renders the dashboard
// @Router / [get]
func (h *ConsoleHandler) Dashboard(c echo.Context) error {
	page := h.service.Dashboard(c.Request().Context())
	return renderPage(c, "dashboard", "Dashboard", page)
}

// Customers renders the customer list
// @Param q query string false "Search email or name"
// @Param status query string false "Status filter" Enums(all, pending_kyc, approved, active, rejected)
// @Router /customers [get]
func (h *ConsoleHandler) Customers(c echo.Context) error {
	var req dto.CustomerListRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid filter parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	page := h.service.Customers(c.Request().Context(), req.Filter())
	return renderPage(c, "customers", "Customers", page)
}

// CustomerDetail renders one customer, with the decision modal open when confirm is set
// @Param id path string true "Customer ID"
// @Param confirm query string false "Decision to confirm" Enums(approve, reject)
// @Router /customers/{id} [get]
func (h *ConsoleHandler) CustomerDetail(c echo.Context) error {
	var req dto.CustomerDetailRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		if failedOn(err, "id") {
			return SendError(c, errors.CustomerInvalidID)
		}
		return err
	}

	page := h.service.CustomerDetail(c.Request().Context(), req.ID)
	if backend.IsNotFound(page.Detail.Err) {
		return SendError(c, errors.CustomerNotFound)
	}

	// The modal is only offered while the customer can still be decided on
	if decision := req.ConfirmDecision(); decision != "" && !page.Detail.Failed() && page.Detail.Data.Customer.IsActionable() {
		page.Confirm = decision
	}

	return renderPage(c, "customer_detail", customerTitle(page.Detail.Data.Customer), page)
}

// DecideCustomer submits an approve or reject decision and renders the resulting customer
// @Param id path string true "Customer ID"
// @Param decision path string true "Decision" Enums(approve, reject)
// @Router /customers/{id}/{decision} [post]
func (h *ConsoleHandler) DecideCustomer(c echo.Context) error {
	var req dto.CustomerDecisionRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	decision, _ := models.ParseDecision(req.Decision)
	page := h.service.DecideCustomer(c.Request().Context(), req.ID, decision)
	if backend.IsNotFound(page.Detail.Err) {
		return SendError(c, errors.CustomerNotFound)
	}

	return renderPage(c, "customer_detail", customerTitle(page.Detail.Data.Customer), page)
}

// Accounts renders the account list
// @Param q query string false "Search account number or ID"
// @Router /accounts [get]
func (h *ConsoleHandler) Accounts(c echo.Context) error {
	var req dto.AccountListRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid search parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	page := h.service.Accounts(c.Request().Context(), req.Search)
	return renderPage(c, "accounts", "Accounts", page)
}

// AccountDetail renders one account with its balance and transfers
// @Param id path string true "Account ID"
// @Router /accounts/{id} [get]
func (h *ConsoleHandler) AccountDetail(c echo.Context) error {
	var req dto.AccountDetailRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("id: must be a valid account ID"))
	}

	page := h.service.AccountDetail(c.Request().Context(), req.ID)
	if backend.IsNotFound(page.Detail.Err) {
		return SendError(c, errors.AccountNotFound)
	}

	return renderPage(c, "account_detail", "Account", page)
}

// Transfers renders the transfer list, or the placeholder when the backend has none
// @Param accountId query string false "Account ID"
// @Router /transfers [get]
func (h *ConsoleHandler) Transfers(c echo.Context) error {
	var req dto.TransfersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	page := h.service.Transfers(c.Request().Context(), req.AccountID)
	return renderPage(c, "transfers", "Transfers", page)
}

// failedOn reports whether a validation error includes the named field
func failedOn(err error, field string) bool {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	for _, fieldErr := range validationErrs {
		if fieldErr.Field() == field {
			return true
		}
	}
	return false
}

func customerTitle(customer *models.Customer) string {
	if customer == nil || customer.DisplayName() == "" {
		return "Customer"
	}
	return customer.DisplayName()
}
