package views

import (
	"strings"

	"itapay-admin/internal/models"
)

// StatusAll disables status filtering
const StatusAll = "all"

// CustomerFilter holds the customer list's search term and status selection
type CustomerFilter struct {
	Search string
	Status string
}

// IsActive reports whether either filter narrows the list
func (f CustomerFilter) IsActive() bool {
	return f.Search != "" || !f.matchesAnyStatus()
}

func (f CustomerFilter) matchesAnyStatus() bool {
	return f.Status == "" || f.Status == StatusAll
}

// Matches reports whether c passes both the search and the status filter
func (f CustomerFilter) Matches(c *models.Customer) bool {
	if !f.matchesAnyStatus() && c.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)
	for _, field := range []string{c.Email, c.FirstName, c.LastName, c.BusinessName} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FilterCustomers returns the customers matching f in their original order.
// The input slice is not modified.
func FilterCustomers(customers []models.Customer, f CustomerFilter) []models.Customer {
	filtered := make([]models.Customer, 0, len(customers))
	for i := range customers {
		if f.Matches(&customers[i]) {
			filtered = append(filtered, customers[i])
		}
	}
	return filtered
}

// FilterAccounts returns the accounts whose number or ID contains search.
// Matching is case sensitive; an empty search keeps every account.
func FilterAccounts(accounts []models.Account, search string) []models.Account {
	filtered := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if search == "" || strings.Contains(a.AccountNumber, search) || strings.Contains(a.ID, search) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
