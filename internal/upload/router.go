package upload

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/paimon/gateway/internal/config"
	appMiddleware "github.com/paimon/gateway/internal/middleware"
	"github.com/paimon/gateway/internal/provider"
	"github.com/paimon/gateway/internal/staging"
)

// NewRouter assembles the full middleware and route stack. main and the
// handler tests both go through here, so tests exercise the same pipeline
// (auth, logging, recovery) the server runs in production.
func NewRouter(cfg *config.Config, log *zap.SugaredLogger, store *staging.Store, registry *provider.Registry) chi.Router {
	h := NewHandler(store, registry, log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(appMiddleware.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", appMiddleware.AuthHeader},
		MaxAge:         300,
	}))

	r.Get("/ping", h.Ping)
	r.Get("/status", h.Status)

	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(cfg.AuthToken, log))
		r.Post("/upload", h.Upload)
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
