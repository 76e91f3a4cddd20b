package http

import (
	"net/http"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/utils"
	"github.com/MKhiriev/go-model-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the complete route table.
//
// Public routes: liveness, register/login, model browsing (list, single
// model, search, top-rated), and the static file routes of the local storage
// backend. Everything that mutates models sits behind the auth middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.liveness)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/models", h.listModels)
		r.Get("/api/models/search", h.searchModels)
		r.Get("/api/models/top-rated", h.topRatedModels)
		r.Get("/api/models/{modelID}", h.getModel)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/models", h.uploadModel)
		r.Put("/api/models/{modelID}", h.updateModel)
		r.Delete("/api/models/{modelID}", h.deleteModel)
		r.Post("/api/models/{modelID}/rate", h.rateModel)
	})

	// Static file routes. Thumbnails are always served locally (the default
	// thumbnail lives there even with the s3 backend); uploaded model files
	// only when the local backend holds them.
	router.Handle("/thumbnails/*", http.StripPrefix("/thumbnails/",
		http.FileServer(http.Dir(h.filesCfg.ThumbnailsDir))))
	if h.filesCfg.Backend == config.FileBackendLocal || h.filesCfg.Backend == "" {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(h.filesCfg.UploadsDir))))
	}

	return router
}

// liveness is a plain "the API is up" probe.
func (h *Handler) liveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "API is running"}, http.StatusOK)
}
