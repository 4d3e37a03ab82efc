package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres"
	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/area"
	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/category"
	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/event"
	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/profile"
	"github.com/okoshkin/lifelog-backend/internal/adapter/postgres/session"
	"github.com/okoshkin/lifelog-backend/internal/app"
	"github.com/okoshkin/lifelog-backend/internal/auth"
	"github.com/okoshkin/lifelog-backend/internal/config"
	"github.com/okoshkin/lifelog-backend/internal/service/analytics"
	authsvc "github.com/okoshkin/lifelog-backend/internal/service/auth"
	"github.com/okoshkin/lifelog-backend/internal/service/catalog"
	"github.com/okoshkin/lifelog-backend/internal/service/events"
	profilesvc "github.com/okoshkin/lifelog-backend/internal/service/profile"
	"github.com/okoshkin/lifelog-backend/internal/transport/middleware"
	"github.com/okoshkin/lifelog-backend/internal/transport/rest"
	"github.com/okoshkin/lifelog-backend/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting server", "version", app.BuildVersion())

	if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations applied")

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	areaRepo := area.New(pool)
	categoryRepo := category.New(pool)
	eventRepo := event.New(pool)
	profileRepo := profile.New(pool)
	sessionRepo := session.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, profileRepo, sessionRepo, txManager, jwtManager, cfg.Auth)
	catalogService := catalog.NewService(logger, areaRepo, categoryRepo, eventRepo)
	eventsService := events.NewService(logger, eventRepo, categoryRepo, cfg.Events)
	analyticsService := analytics.NewService(logger, eventRepo, categoryRepo, areaRepo)
	profileService := profilesvc.NewService(logger, profileRepo)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authService, logger),
		Catalog:     rest.NewCatalogHandler(catalogService, logger),
		Events:      rest.NewEventsHandler(eventsService, logger),
		Analytics:   rest.NewAnalyticsHandler(analyticsService, logger),
		Profile:     rest.NewProfileHandler(profileService, logger),
		Health:      rest.NewHealthHandler(pool, app.BuildVersion()),
		Validator:   authService,
		RateLimiter: rateLimiter,
		Logger:      logger,
		CORS:        cfg.CORS,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// runMigrations applies pending goose migrations using the embedded SQL files.
// It uses a separate database/sql connection since goose does not speak pgxpool.
func runMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open connection: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
