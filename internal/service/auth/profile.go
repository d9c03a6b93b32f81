package auth

import (
	"context"
	"fmt"

	"github.com/dicri/casetrack-backend/internal/domain"
	"github.com/dicri/casetrack-backend/pkg/ctxutil"
)

// Profile returns the authenticated user's account.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Profile: %w", err)
	}

	return user, nil
}
