package auth

import (
	"sync"

	"github.com/google/uuid"

	authpkg "github.com/dicri/casetrack-backend/internal/auth"
	"github.com/dicri/casetrack-backend/internal/domain"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID, username string, role domain.Role) (string, error)
	ValidateAccessTokenFunc func(token string) (authpkg.Identity, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID   uuid.UUID
			Username string
			Role     domain.Role
		}
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockGenerateAccessToken sync.RWMutex
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(userID uuid.UUID, username string, role domain.Role) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID   uuid.UUID
		Username string
		Role     domain.Role
	}{UserID: userID, Username: username, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(userID, username, role)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	UserID   uuid.UUID
	Username string
	Role     domain.Role
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}

func (mock *tokenIssuerMock) ValidateAccessToken(token string) (authpkg.Identity, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenIssuerMock.ValidateAccessTokenFunc: method is nil but tokenIssuer.ValidateAccessToken was just called")
	}
	callInfo := struct{ Token string }{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenIssuerMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	calls := mock.calls.ValidateAccessToken
	mock.lockValidateAccessToken.RUnlock()
	return calls
}
