package ui

import "strings"

// NavItem is one entry of the console navigation
type NavItem struct {
	Name string
	Href string
	Icon string
}

// Navigation is the console's static route table
var Navigation = []NavItem{
	{Name: "Dashboard", Href: "/", Icon: "layout-dashboard"},
	{Name: "Customers", Href: "/customers", Icon: "users"},
	{Name: "Accounts", Href: "/accounts", Icon: "building"},
	{Name: "Transfers", Href: "/transfers", Icon: "arrow-left-right"},
}

// IsActive reports whether the item is highlighted for path. The root item only
// matches exactly; the others also match any path below them.
func (n NavItem) IsActive(path string) bool {
	return path == n.Href || (n.Href != "/" && strings.HasPrefix(path, n.Href))
}

// SidebarItem is a navigation entry resolved against the current path
type SidebarItem struct {
	NavItem
	Active bool
}

// Class returns the link classes for the item
func (s SidebarItem) Class() string {
	state := "text-dark-300 hover:bg-dark-800 hover:text-white"
	if s.Active {
		state = "bg-primary-600 text-white"
	}
	return Classes("flex items-center gap-3 rounded-lg px-3 py-2.5 text-sm font-medium transition-colors", state)
}

// Sidebar resolves the navigation for path
func Sidebar(path string) []SidebarItem {
	items := make([]SidebarItem, len(Navigation))
	for i, n := range Navigation {
		items[i] = SidebarItem{NavItem: n, Active: n.IsActive(path)}
	}
	return items
}
