package ui

import (
	"html/template"
	"strings"
)

// icon bodies are lucide outlines on a 24x24 grid
var iconPaths = map[string]string{
	"layout-dashboard": `<rect width="7" height="9" x="3" y="3" rx="1"/><rect width="7" height="5" x="14" y="3" rx="1"/><rect width="7" height="9" x="14" y="12" rx="1"/><rect width="7" height="5" x="3" y="16" rx="1"/>`,
	"users":            `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"building":         `<path d="M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z"/><path d="M6 12H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h2"/><path d="M18 9h2a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2h-2"/><path d="M10 6h4M10 10h4M10 14h4M10 18h4"/>`,
	"arrow-left-right": `<path d="M8 3 4 7l4 4"/><path d="M4 7h16"/><path d="m16 21 4-4-4-4"/><path d="M20 17H4"/>`,
	"arrow-left":       `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`,
	"settings":         `<circle cx="12" cy="12" r="3"/><path d="M12 2v3M12 19v3M4.2 4.2l2.1 2.1M17.7 17.7l2.1 2.1M2 12h3M19 12h3M4.2 19.8l2.1-2.1M17.7 6.3l2.1-2.1"/>`,
	"check":            `<path d="M20 6 9 17l-5-5"/>`,
	"x":                `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
	"check-circle":     `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><path d="m9 11 3 3L22 4"/>`,
	"x-circle":         `<circle cx="12" cy="12" r="10"/><path d="m15 9-6 6M9 9l6 6"/>`,
	"user":             `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	"hash":             `<path d="M4 9h16M4 15h16M10 3 8 21M16 3l-2 18"/>`,
	"search":           `<circle cx="11" cy="11" r="8"/><path d="m21 21-4.3-4.3"/>`,
	"filter":           `<polygon points="22 3 2 3 10 12.46 10 19 14 21 14 12.46 22 3"/>`,
	"spinner":          `<path d="M21 12a9 9 0 1 1-6.219-8.56"/>`,
	"alert-circle":     `<circle cx="12" cy="12" r="10"/><path d="M12 8v4M12 16h.01"/>`,
	"dollar-sign":      `<path d="M12 2v20"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`,
	"activity":         `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	"mail":             `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	"phone":            `<path d="M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92z"/>`,
	"map-pin":          `<path d="M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z"/><circle cx="12" cy="10" r="3"/>`,
	"calendar":         `<rect width="18" height="18" x="3" y="4" rx="2"/><path d="M16 2v4M8 2v4M3 10h18"/>`,
	"clock":            `<circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/>`,
	"credit-card":      `<rect width="20" height="14" x="2" y="5" rx="2"/><path d="M2 10h20"/>`,
	"file-text":        `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/><path d="M14 2v4a2 2 0 0 0 2 2h4"/>`,
}

// Icon renders the named icon as inline SVG. Unknown names render nothing.
func Icon(name string, class ...string) template.HTML {
	body, ok := iconPaths[name]
	if !ok {
		return ""
	}

	classes := Classes(class...)
	if classes == "" {
		classes = "h-4 w-4"
	}
	if name == "spinner" {
		classes = Classes(classes, "animate-spin")
	}

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" `)
	b.WriteString(`stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true" class="`)
	b.WriteString(template.HTMLEscapeString(classes))
	b.WriteString(`">`)
	b.WriteString(body)
	b.WriteString(`</svg>`)

	// icon bodies are constants and the class list is escaped above
	return template.HTML(b.String())
}
