package http

import (
	"github.com/MKhiriev/go-user-service/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withSecureHeaders,
		h.withRateLimit,
	)

	router.Method("GET", "/metrics", metrics.Handler(h.gatherer))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/create", h.createUser)
		r.Post("/users/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.permission)

		r.Get("/users/getAllUsers", h.getAllUsers)
		r.Get("/users/findUsers", h.findUsers)
		r.Post("/users/bulkCreate", h.bulkCreateUsers)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.numericID, h.userExists, h.auth, h.permission)

		r.Get("/users/{id}", h.getUserByID)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
