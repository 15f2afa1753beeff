package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wordbook/internal/handlers"
	"wordbook/internal/service"
)

// DefaultMaxUploadBytes bounds spreadsheet uploads when Deps leaves it unset.
const DefaultMaxUploadBytes = 10 << 20

// Deps holds dependencies for the HTTP router.
type Deps struct {
	VocabService   service.VocabService
	Store          handlers.Pinger
	IndexHTML      string // Embedded HTML content
	MaxUploadBytes int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	maxUpload := deps.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUploadBytes
	}

	cardHandler := handlers.NewCardHandler(deps.VocabService)
	searchHandler := handlers.NewSearchHandler(deps.VocabService)
	importHandler := handlers.NewImportHandler(deps.VocabService, maxUpload)
	healthHandler := handlers.NewHealthHandler(deps.Store)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodGet, "/search", searchHandler)
		r.Method(http.MethodPost, "/import", importHandler)

		r.Route("/cards", func(r chi.Router) {
			r.Get("/current", cardHandler.Current)
			r.Get("/current/notes.html", cardHandler.NotesHTML)
			r.Post("/next", cardHandler.Next)
			r.Post("/previous", cardHandler.Previous)
			r.Post("/jump", cardHandler.Jump)
			r.Post("/{id}/select", cardHandler.Select)
			r.Put("/{id}/notes", cardHandler.UpdateNotes)
		})
	})

	// Serve HTML page at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(deps.IndexHTML))
	})

	return r
}
