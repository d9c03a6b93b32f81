package auth

import "github.com/dicri/casetrack-backend/internal/domain"

// AuthResult is returned by Authenticate.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
