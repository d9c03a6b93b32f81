package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/config"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// tokenIssuer defines the JWT management interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, username string, role domain.Role) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
}

// Service implements authentication and account operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   tokenIssuer
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt tokenIssuer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}
