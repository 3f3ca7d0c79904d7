package ports

import (
	"time"

	"rfidship/internal/core/domain/model/kernel"
)

// TokenSubject is the identity embedded in an access token.
type TokenSubject struct {
	UserID   kernel.UUID
	Account  string
	UserType string
	Code     string
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
}

// TokenIssuer issues and parses signed access and refresh tokens.
// Parse failures are reported as errs.UnauthorizedError.
type TokenIssuer interface {
	IssuePair(subject TokenSubject) (TokenPair, error)
	ParseAccess(token string) (TokenSubject, error)

	// ParseRefresh returns the user the refresh token was issued to.
	ParseRefresh(token string) (kernel.UUID, error)
}
