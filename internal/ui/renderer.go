package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"itapay-admin/internal/views"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// CSRFContextKey is where the CSRF middleware stores the form token
const CSRFContextKey = "csrf"

const (
	layoutTemplate   = "templates/layout.html"
	partialsTemplate = "templates/partials.html"
)

// Page is the data handed to every page template
type Page struct {
	Title     string
	Path      string
	CSRFToken string
	Sidebar   []SidebarItem
	Data      any
}

// NewPage wraps page data with the title shown in the browser tab
func NewPage(title string, data any) Page {
	return Page{Title: title, Data: data}
}

// Renderer implements echo.Renderer over the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page together with the shared layout and partials
func NewRenderer() (*Renderer, error) {
	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, entry := range entries {
		if entry == layoutTemplate || entry == partialsTemplate {
			continue
		}

		name := strings.TrimSuffix(path.Base(entry), ".html")
		tmpl, err := template.New(name).Funcs(TemplateFuncs()).ParseFS(templateFS, layoutTemplate, partialsTemplate, entry)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Has reports whether a page template exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render executes the named page inside the layout. Data that is not a Page is wrapped in one.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	page, ok := data.(Page)
	if !ok {
		page = Page{Data: data}
	}

	if c != nil {
		page.Path = c.Request().URL.Path
		if token, ok := c.Get(CSRFContextKey).(string); ok {
			page.CSRFToken = token
		}
	}
	page.Sidebar = Sidebar(page.Path)

	return tmpl.ExecuteTemplate(w, "layout", page)
}

// StaticFS returns the stylesheet and other assets served under /static
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// TemplateFuncs are the helpers available to every template
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"btn":            NewButton,
		"icon":           Icon,
		"classes":        Classes,
		"cardClass":      CardClass,
		"cardHeader":     CardHeaderClass,
		"cardTitle":      CardTitleClass,
		"cardContent":    CardContentClass,
		"statusClass":    views.StatusClass,
		"formatDate":     views.FormatDate,
		"formatDateTime": views.FormatDateTime,
		"formatCurrency": func(amount decimal.Decimal, code string) string {
			return views.FormatCurrency(amount, code)
		},
		"usd": func(amount decimal.Decimal) string {
			return views.FormatCurrency(amount, views.DefaultCurrency)
		},
	}
}
