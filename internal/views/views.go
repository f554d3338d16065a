// Package views renders the site's HTML pages from embedded templates.
// Every page template is parsed together with the shared layout at startup,
// so a malformed template fails the boot instead of the first request.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/internal/content"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS exposes the embedded static assets (stylesheet) for serving.
func StaticFS() embed.FS { return staticFS }

// pages lists every page template; each is parsed with the layout.
var pages = []string{
	"home.html",
	"about.html",
	"services.html",
	"training.html",
	"work.html",
	"work_detail.html",
	"contact.html",
	"legal.html",
	"notfound.html",
}

// Views holds the parsed page templates.
type Views struct {
	templates map[string]*template.Template
}

// New parses all page templates.
func New() (*Views, error) {
	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}
	return &Views{templates: parsed}, nil
}

// Render writes the named page to w.
func (v *Views) Render(w io.Writer, page string, data any) error {
	tmpl, ok := v.templates[page]
	if !ok {
		return fmt.Errorf("unknown template: %s", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Page carries the fields every page needs.
type Page struct {
	Title       string
	Description string
}

// HomePage is the view model for the home page.
type HomePage struct {
	Page
	Services []content.Service
	Stats    []content.Stat
}

// AboutPage is the view model for the about page.
type AboutPage struct {
	Page
	Values []content.Value
	Team   []content.TeamMember
}

// ServicesPage is the view model for the services page.
type ServicesPage struct {
	Page
	Services []content.Service
	Process  []content.ProcessStep
}

// TrainingPage is the view model for the training page.
type TrainingPage struct {
	Page
	Programs []content.TrainingProgram
	Benefits []content.TrainingBenefit
}

// WorkPage is the view model for the portfolio index.
type WorkPage struct {
	Page
	Projects []content.Project
}

// WorkDetailPage is the view model for one case study.
type WorkDetailPage struct {
	Page
	Study content.CaseStudy
}

// ContactPage is the view model for the contact page, for both the initial
// GET and the POST re-render with a result banner.
type ContactPage struct {
	Page
	Banner   *contact.Banner
	Fields   contact.Request
	Services []content.Service
	Email    string
	Phone    string
	Location string
}

// LegalPageView is the view model for privacy and terms.
type LegalPageView struct {
	Page
	Legal content.LegalPage
}
