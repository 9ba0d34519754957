package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/element-hunter/backend/internal/adapter/postgres"
	folderrepo "github.com/element-hunter/backend/internal/adapter/postgres/folder"
	scanrepo "github.com/element-hunter/backend/internal/adapter/postgres/scan"
	tokenrepo "github.com/element-hunter/backend/internal/adapter/postgres/token"
	userrepo "github.com/element-hunter/backend/internal/adapter/postgres/user"
	authpkg "github.com/element-hunter/backend/internal/auth"
	"github.com/element-hunter/backend/internal/config"
	authsvc "github.com/element-hunter/backend/internal/service/auth"
	foldersvc "github.com/element-hunter/backend/internal/service/folder"
	scansvc "github.com/element-hunter/backend/internal/service/scan"
	"github.com/element-hunter/backend/internal/transport/middleware"
	"github.com/element-hunter/backend/internal/transport/rest"
	"github.com/element-hunter/backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and HTTP handlers, and serves
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	userRepo := userrepo.New(pool)
	tokenRepo := tokenrepo.New(pool)
	scanRepo := scanrepo.New(pool)
	folderRepo := folderrepo.New(pool)

	txm := postgres.NewTxManager(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	authService := authsvc.NewService(logger, userRepo, tokenRepo, jwtMgr, cfg.Auth)
	scanService := scansvc.NewService(logger, scanRepo, folderRepo, cfg.Scan)
	folderService := foldersvc.NewService(logger, folderRepo, scanRepo, txm)

	// Handlers.
	authHandler := rest.NewAuthHandler(authService, logger)
	scanHandler := rest.NewScanHandler(scanService, logger)
	folderHandler := rest.NewFolderHandler(folderService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)

	mux.HandleFunc("GET /api/me", authHandler.Me)
	mux.HandleFunc("POST /api/me/token", authHandler.RotateAPIToken)

	mux.HandleFunc("POST /api/seo", scanHandler.Ingest)
	mux.HandleFunc("GET /api/seo", scanHandler.ListFull)
	mux.HandleFunc("GET /api/seo/scans", scanHandler.List)
	mux.HandleFunc("GET /api/seo/scans/{id}", scanHandler.Get)

	mux.HandleFunc("GET /api/seo/folders", folderHandler.List)
	mux.HandleFunc("POST /api/seo/folders", folderHandler.Create)
	mux.HandleFunc("DELETE /api/seo/folders/{folderId}", folderHandler.Delete)
	mux.HandleFunc("POST /api/seo/folders/add-scan", folderHandler.AddScans)
	mux.HandleFunc("POST /api/seo/folders/remove-scan", folderHandler.RemoveScan)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	mws = append(mws,
		middleware.Auth(authService),
		middleware.APIToken(authService),
	)

	handler := middleware.Chain(mws...)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")

	return nil
}

// runMigrations applies embedded goose migrations. Goose requires a
// *sql.DB, so a separate short-lived connection is used instead of the
// pgx pool.
func runMigrations(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	if len(results) > 0 {
		logger.Info("applied migrations", slog.Int("count", len(results)))
	}

	return nil
}
