package ui

import "strings"

// Classes joins CSS class lists, skipping empty entries
func Classes(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

const (
	cardBase        = "rounded-xl border border-dark-100 bg-white shadow-sm"
	cardHeaderBase  = "px-6 py-4 border-b border-dark-100"
	cardTitleBase   = "text-lg font-semibold text-dark-900"
	cardContentBase = "p-6"
)

// CardClass returns the card container classes plus any extras
func CardClass(extra ...string) string {
	return Classes(append([]string{cardBase}, extra...)...)
}

// CardHeaderClass returns the card header classes plus any extras
func CardHeaderClass(extra ...string) string {
	return Classes(append([]string{cardHeaderBase}, extra...)...)
}

// CardTitleClass returns the card title classes plus any extras
func CardTitleClass(extra ...string) string {
	return Classes(append([]string{cardTitleBase}, extra...)...)
}

// CardContentClass returns the card body classes. Passing "p-0" drops the default padding.
func CardContentClass(extra ...string) string {
	for _, e := range extra {
		if strings.HasPrefix(e, "p-") {
			return Classes(extra...)
		}
	}
	return Classes(append([]string{cardContentBase}, extra...)...)
}
