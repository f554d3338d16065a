package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/internal/views"
	"github.com/onetechcm/website/pkg/httpserver"
)

// NewRouter assembles the full site router: middleware, static assets,
// health check, pages, and the contact flow.
func NewRouter(v *views.Views, svc contact.Submitter, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(httpserver.RequestID)
	r.Use(httpserver.Recover(log))
	r.Use(httpserver.RequestLogger(log))

	r.Handle("/static/*", http.FileServerFS(views.StaticFS()))
	r.Get("/health", health)

	pages := NewPages(v, log)
	pages.Routes(r)
	NewContact(v, svc, log).Routes(r)

	r.NotFound(pages.NotFound)

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
