// Package router exposes the ledger as a JSON API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/GustavoCaso/zerobudget/internal/ledger"
	"github.com/GustavoCaso/zerobudget/internal/logger"
)

// 32 MB
const maxUploadSize = 32 << 20

type router struct {
	ledger   *ledger.Ledger
	logger   *logger.Logger
	currency string
}

// Options tune the HTTP surface.
type Options struct {
	Currency       string
	AllowedOrigins []string
}

func New(l *ledger.Ledger, logger *logger.Logger, opts Options) http.Handler {
	r := &router{
		ledger:   l,
		logger:   logger.With("component", "router"),
		currency: opts.Currency,
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}

	mux := chi.NewRouter()

	mux.Use(middleware.RequestID)
	mux.Use(loggingMiddleware(r.logger))
	mux.Use(middleware.Recoverer)
	mux.Use(xFrameDenyHeaderMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
	}))

	mux.Route("/api", func(api chi.Router) {
		api.Get("/status", r.statusHandler)

		api.Route("/{table}", func(t chi.Router) {
			t.Use(tableMiddleware)

			t.Get("/", r.listHandler)
			t.Post("/", r.createHandler)
			t.Delete("/", r.clearHandler)
			t.Get("/total", r.totalHandler)
			t.Get("/export", r.exportHandler)
			t.Post("/import", r.importHandler)
			t.Delete("/{id}", r.deleteHandler)
		})
	})

	return mux
}
