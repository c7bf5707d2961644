package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		// browser clients connect from arbitrary origins
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		// routes behind the auth gate
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.updateProfile)
			r.Post("/profile/avatar", h.updateAvatar)

			r.Post("/translate", h.translate)
			r.Post("/detect", h.detect)
			r.Post("/translate-image", h.translateImage)

			r.Get("/translations", h.listTranslations)
			r.Delete("/translations", h.clearTranslations)
			r.Delete("/translations/{id}", h.deleteTranslation)
		})
	})

	return router
}
