package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okoshkin/lifelog-backend/internal/config"
	"github.com/okoshkin/lifelog-backend/internal/transport/middleware"
)

// Registration and login share a tighter per-IP budget than the rest of the
// API.
const authRequestsPerMinute = 30

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps carries everything the router mounts.
type RouterDeps struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Events    *EventsHandler
	Analytics *AnalyticsHandler
	Profile   *ProfileHandler
	Health    *HealthHandler

	Validator   tokenValidator
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	CORS        config.CORSConfig
}

// NewRouter wires all HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Auth(deps.Validator))

	r.Get("/health", deps.Health.Health)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/live", deps.Health.Live)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.Limit(authRequestsPerMinute))
			}
			r.Post("/register", deps.Auth.Register)
			r.Get("/confirm", deps.Auth.ConfirmEmail)
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.Refresh)
			r.Post("/logout", deps.Auth.Logout)
		})

		r.Route("/areas", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListAreas)
			r.Post("/", deps.Catalog.CreateArea)
			r.Patch("/{id}", deps.Catalog.RenameArea)
			r.Delete("/{id}", deps.Catalog.DeleteArea)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListCategories)
			r.Post("/", deps.Catalog.CreateCategory)
			r.Patch("/{id}", deps.Catalog.UpdateCategory)
			r.Delete("/{id}", deps.Catalog.DeleteCategory)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", deps.Events.List)
			r.Post("/", deps.Events.Create)
			r.Post("/import", deps.Events.Import)
			r.Get("/export", deps.Events.Export)
			r.Get("/{id}", deps.Events.Get)
			r.Put("/{id}", deps.Events.Update)
			r.Delete("/{id}", deps.Events.Delete)
		})

		r.Get("/analytics", deps.Analytics.Report)

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", deps.Profile.Get)
			r.Patch("/", deps.Profile.Update)
		})
	})

	return r
}
