package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/internal/content"
	"github.com/onetechcm/website/internal/views"
)

// Contact serves the contact page and handles form submissions.
type Contact struct {
	views *views.Views
	svc   contact.Submitter
	log   *slog.Logger
}

// NewContact creates the contact handler with injected dependencies.
func NewContact(v *views.Views, svc contact.Submitter, log *slog.Logger) *Contact {
	return &Contact{views: v, svc: svc, log: log}
}

// Routes declares the contact routes.
func (h *Contact) Routes(r chi.Router) {
	r.Get("/contact", h.show)
	r.Post("/contact", h.submit)
}

func (h *Contact) show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.ContactPage{
		Page:     contactPageMeta(),
		Services: content.Services,
		Email:    content.ContactEmail,
		Phone:    content.ContactPhone,
		Location: content.ContactLocation,
	})
}

// submit runs one submission through the handler and re-renders the page
// with the result banner. Failures keep the entered values so the user does
// not need to retype; success clears the form.
func (h *Contact) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.WarnContext(r.Context(), "malformed contact form submission",
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	req := contact.ParseRequest(r.PostForm)
	res := h.svc.Submit(r.Context(), req)

	page := views.ContactPage{
		Page:     contactPageMeta(),
		Services: content.Services,
		Email:    content.ContactEmail,
		Phone:    content.ContactPhone,
		Location: content.ContactLocation,
	}

	if res.Success {
		page.Banner = &contact.Banner{Kind: contact.BannerSuccess, Text: res.Message}
	} else {
		page.Banner = &contact.Banner{Kind: contact.BannerError, Text: res.Message}
		page.Fields = req
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusUnprocessableEntity
	}
	h.render(w, r, status, page)
}

func contactPageMeta() views.Page {
	return views.Page{
		Title:       "Contact Us",
		Description: "Get in touch with One Tech to discuss your project, training needs, or partnership opportunities.",
	}
}

func (h *Contact) render(w http.ResponseWriter, r *http.Request, status int, page views.ContactPage) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, "contact.html", page); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render contact page",
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
