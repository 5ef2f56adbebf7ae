package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/env", h.resolveEnv)
	router.Get("/api/env/{key}", h.resolveEnvVar)
	router.HandleFunc("/functions/*", h.forwardFunction)

	return router
}
