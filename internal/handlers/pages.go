// Package handlers wires the site's HTTP routes: static informational pages
// plus the contact form flow.
package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onetechcm/website/internal/content"
	"github.com/onetechcm/website/internal/views"
)

// Pages serves the static informational pages.
type Pages struct {
	views *views.Views
	log   *slog.Logger
}

// NewPages creates the page handler with injected dependencies.
func NewPages(v *views.Views, log *slog.Logger) *Pages {
	return &Pages{views: v, log: log}
}

// Routes declares all page routes.
func (h *Pages) Routes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/about", h.about)
	r.Get("/services", h.services)
	r.Get("/training", h.training)
	r.Get("/work", h.work)
	r.Get("/work/{slug}", h.workDetail)
	r.Get("/privacy", h.legal("privacy"))
	r.Get("/terms", h.legal("terms"))
}

func (h *Pages) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "home.html", views.HomePage{
		Page: views.Page{
			Title:       "Home",
			Description: "One Tech builds software, trains engineers, and helps businesses across Africa transform digitally.",
		},
		Services: content.Services[:4],
		Stats:    content.Stats,
	})
}

func (h *Pages) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "about.html", views.AboutPage{
		Page: views.Page{
			Title:       "About",
			Description: "Learn about One Tech's mission, values, and the team behind our work.",
		},
		Values: content.Values,
		Team:   content.Team,
	})
}

func (h *Pages) services(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "services.html", views.ServicesPage{
		Page: views.Page{
			Title:       "Services",
			Description: "Comprehensive technology services including software development, digital transformation, cloud solutions, and technical training.",
		},
		Services: content.Services,
		Process:  content.ProcessSteps,
	})
}

func (h *Pages) training(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "training.html", views.TrainingPage{
		Page: views.Page{
			Title:       "Training",
			Description: "Practical technical training programs for individuals and teams.",
		},
		Programs: content.TrainingPrograms,
		Benefits: content.TrainingBenefits,
	})
}

func (h *Pages) work(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "work.html", views.WorkPage{
		Page: views.Page{
			Title:       "Our Work",
			Description: "Explore our portfolio of successful projects and client success stories across various industries.",
		},
		Projects: content.Projects,
	})
}

func (h *Pages) workDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	study, ok, err := content.CaseStudyBySlug(slug)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if !ok {
		h.NotFound(w, r)
		return
	}

	h.render(w, r, http.StatusOK, "work_detail.html", views.WorkDetailPage{
		Page: views.Page{
			Title:       study.Title,
			Description: study.Description,
		},
		Study: study,
	})
}

func (h *Pages) legal(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok, err := content.LegalPageBySlug(slug)
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		if !ok {
			h.NotFound(w, r)
			return
		}

		h.render(w, r, http.StatusOK, "legal.html", views.LegalPageView{
			Page:  views.Page{Title: page.Title},
			Legal: page,
		})
	}
}

// NotFound renders the 404 page. It also backs the router's global
// not-found handler.
func (h *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound.html", views.Page{Title: "Page Not Found"})
}

// render buffers the template output so a late rendering failure cannot
// leave a half-written page on the wire.
func (h *Pages) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Pages) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "failed to render page",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
