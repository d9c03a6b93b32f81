package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/domain"
)

// ValidateToken validates an access token and confirms the account is still
// active, so deactivation takes effect immediately instead of when the token
// expires. Returns ErrUnauthorized on any failure.
func (s *Service) ValidateToken(ctx context.Context, token string) (auth.Identity, error) {
	identity, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return auth.Identity{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return auth.Identity{}, domain.ErrUnauthorized
		}
		return auth.Identity{}, fmt.Errorf("auth.ValidateToken get user: %w", err)
	}
	if !user.Active {
		return auth.Identity{}, domain.ErrUnauthorized
	}

	// The role claim can go stale if an administrator reassigns the user;
	// the stored role wins.
	identity.Role = user.Role
	return identity, nil
}
