package views

import (
	"github.com/shopspring/decimal"

	"itapay-admin/internal/models"
)

// RecentLimit is how many customers and accounts the dashboard lists
const RecentLimit = 5

// DashboardStats aggregates the customer and account collections for the dashboard
type DashboardStats struct {
	TotalCustomers   int
	ActiveCustomers  int
	PendingCustomers int
	TotalAccounts    int
	OpenAccounts     int
	TotalBalance     decimal.Decimal

	RecentCustomers []models.Customer
	RecentAccounts  []models.Account
}

// ComputeDashboard derives the dashboard figures. Recent lists keep backend order.
func ComputeDashboard(customers []models.Customer, accounts []models.Account) DashboardStats {
	stats := DashboardStats{
		TotalCustomers:  len(customers),
		TotalAccounts:   len(accounts),
		TotalBalance:    models.TotalAvailable(accounts),
		RecentCustomers: head(customers, RecentLimit),
		RecentAccounts:  head(accounts, RecentLimit),
	}

	for i := range customers {
		status := customers[i].StatusKind()
		switch {
		case status.IsActive():
			stats.ActiveCustomers++
		case status.Actionable():
			stats.PendingCustomers++
		}
	}

	for i := range accounts {
		if accounts[i].IsOpen() {
			stats.OpenAccounts++
		}
	}

	return stats
}

// PendingSubtitle is the caption under the pending customers figure
func (s DashboardStats) PendingSubtitle() string {
	if s.PendingCustomers > 0 {
		return "Needs review"
	}
	return "All reviewed"
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
