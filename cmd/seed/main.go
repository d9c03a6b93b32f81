// Command seed creates an initial user account, typically the first
// administrator after a fresh deployment. It applies migrations first so it
// can run against an empty database.
//
// Flags:
//
//	--username    login name (required)
//	--password    initial password (required)
//	--email       account email (required)
//	--first-name  given name (default "Admin")
//	--last-name   family name (default "DICRI")
//	--role        Técnico, Coordinador, or Administrador (default Administrador)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dicri/casetrack-backend/internal/adapter/postgres"
	userrepo "github.com/dicri/casetrack-backend/internal/adapter/postgres/user"
	"github.com/dicri/casetrack-backend/internal/app"
	authpkg "github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/config"
	"github.com/dicri/casetrack-backend/internal/domain"
	authsvc "github.com/dicri/casetrack-backend/internal/service/auth"
)

func main() {
	username := flag.String("username", "", "login name")
	password := flag.String("password", "", "initial password")
	email := flag.String("email", "", "account email")
	firstName := flag.String("first-name", "Admin", "given name")
	lastName := flag.String("last-name", "DICRI", "family name")
	role := flag.String("role", string(domain.RoleAdministrator), "account role")
	flag.Parse()

	if *username == "" || *password == "" || *email == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, userrepo.New(pool), jwtMgr, cfg.Auth)

	user, err := authService.Register(ctx, authsvc.RegisterInput{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Username:  *username,
		Password:  *password,
		Role:      domain.Role(*role),
	})
	if err != nil {
		logger.Error("create user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("user created",
		slog.String("id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)
}
