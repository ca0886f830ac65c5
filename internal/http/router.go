package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rgoodwin/finewarden/internal/http/auth"
	"github.com/rgoodwin/finewarden/internal/http/citation"
)

func New(citationsV1 *citation.Handler, authSecret string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Bearer(authSecret))

		r.Route("/citations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			citationsV1.Routes(r)
		})

		r.Get("/reports/overdue", citationsV1.OverdueReport)
		r.Get("/drivers/{license}/points", citationsV1.DriverPoints)
	})

	return router
}
