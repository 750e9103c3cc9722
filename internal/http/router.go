package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	clienthttp "github.com/jithinio/brillo/internal/http/client"
	exporthttp "github.com/jithinio/brillo/internal/http/export"
	"github.com/jithinio/brillo/internal/http/importcsv"
	invoicehttp "github.com/jithinio/brillo/internal/http/invoice"
	projecthttp "github.com/jithinio/brillo/internal/http/project"
)

func New(
	allowedOrigins []string,
	clientsV1 *clienthttp.Handler,
	projectsV1 *projecthttp.Handler,
	invoicesV1 *invoicehttp.Handler,
	importV1 *importcsv.Handler,
	exportV1 *exporthttp.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			clientsV1.Routes(r)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			projectsV1.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			invoicesV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
