package api

import (
	"guidance-service/internal/api/handlers"
	"guidance-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.GuidanceService) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	pathHandler := handlers.NewPathHandler(svc)

	r.Get("/health", handlers.Health)
	r.Route("/paths", func(r chi.Router) {
		r.Get("/", pathHandler.List)
		r.Get("/{pathID}", pathHandler.Get)
		r.Post("/{pathID}/guidance", pathHandler.Guide)
	})

	return r
}
