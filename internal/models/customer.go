package models

import "strings"

const (
	CustomerTypeIndividual = "individual"
	CustomerTypeBusiness   = "business"
)

// Customer is the backend's customer record as held by a single page render
type Customer struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	FirstName    string  `json:"first_name,omitempty"`
	LastName     string  `json:"last_name,omitempty"`
	BusinessName string  `json:"business_name,omitempty"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	DateOfBirth  string  `json:"date_of_birth,omitempty"`
	TaxID        string  `json:"tax_id"`
	Address      Address `json:"address"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

// Address is a customer's postal address
type Address struct {
	Street     string `json:"street"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// IsIndividual reports whether the customer is a person rather than a business
func (c *Customer) IsIndividual() bool {
	return c.Type == CustomerTypeIndividual
}

// DisplayName returns "first last" for individuals and the business name otherwise.
// Only one of the two name groups is ever consulted.
func (c *Customer) DisplayName() string {
	if c.IsIndividual() {
		return strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	return c.BusinessName
}

// StatusKind classifies the raw backend status
func (c *Customer) StatusKind() CustomerStatus {
	return ParseCustomerStatus(c.Status)
}

// IsActionable reports whether approve/reject should be offered for the customer
func (c *Customer) IsActionable() bool {
	return c.StatusKind().Actionable()
}

// ShortID returns the first eight characters of the customer ID
func (c *Customer) ShortID() string {
	return shortID(c.ID)
}

// CityLine formats "City, ST 12345"
func (a Address) CityLine() string {
	return strings.TrimSpace(a.City + ", " + a.State + " " + a.PostalCode)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
