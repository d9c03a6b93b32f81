// Package app wires configuration, storage, services, and the HTTP server
// into a running application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	approvalrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/approval"
	casefilerepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/casefile"
	evidencerepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/evidence"
	reportrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/report"
	userrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/user"
	authpkg "github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/config"
	authsvc "github.com/dicri/casetrack-backend/internal/service/auth"
	"github.com/dicri/casetrack-backend/internal/service/casefile"
	evidencesvc "github.com/dicri/casetrack-backend/internal/service/evidence"
	reportsvc "github.com/dicri/casetrack-backend/internal/service/report"
	"github.com/dicri/casetrack-backend/internal/transport/middleware"
	"github.com/dicri/casetrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txm := postgres.NewTxManager(pool)

	userRepo := userrepo.New(pool)
	caseRepo := casefilerepo.New(pool)
	evidenceRepo := evidencerepo.New(pool)
	approvalRepo := approvalrepo.New(pool)
	reportRepo := reportrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, userRepo, jwtMgr, cfg.Auth)
	caseService := casefile.NewService(logger, caseRepo, approvalRepo, txm)
	evidenceService := evidencesvc.NewService(logger, evidenceRepo, caseRepo)
	reportService := reportsvc.NewService(logger, reportRepo)

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Auth:     rest.NewAuthHandler(authService, logger),
		Cases:    rest.NewCaseHandler(caseService, logger),
		Evidence: rest.NewEvidenceHandler(evidenceService, logger),
		Approval: rest.NewApprovalHandler(caseService, logger),
		Report:   rest.NewReportHandler(reportService, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(mux)

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
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
