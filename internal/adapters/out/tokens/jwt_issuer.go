// Package tokens issues and verifies HS256 access and refresh tokens.
package tokens

import (
	"errors"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultIssuer     = "rfid-system"
	DefaultAccessTTL  = time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour

	accessTokenType  = "access"
	refreshTokenType = "refresh"
)

type Config struct {
	AccessSecret  string
	RefreshSecret string
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Option func(*JWTIssuer)

func WithClock(clock kernel.Clock) Option {
	return func(i *JWTIssuer) {
		i.clock = clock
	}
}

type claims struct {
	TokenType string `json:"typ"`
	Account   string `json:"account,omitempty"`
	UserType  string `json:"userType,omitempty"`
	Code      string `json:"code,omitempty"`
	jwt.RegisteredClaims
}

// JWTIssuer signs access and refresh tokens with separate secrets. The
// token type is embedded as a claim so one kind is never accepted as the
// other.
type JWTIssuer struct {
	cfg   Config
	clock kernel.Clock
}

func NewJWTIssuer(cfg Config, opts ...Option) (*JWTIssuer, error) {
	var err error
	if cfg.AccessSecret == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("access token secret"))
	}
	if cfg.RefreshSecret == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("refresh token secret"))
	}
	if err != nil {
		return nil, err
	}

	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	issuer := &JWTIssuer{cfg: cfg, clock: kernel.SystemClock}
	for _, opt := range opts {
		opt(issuer)
	}
	return issuer, nil
}

func (i *JWTIssuer) IssuePair(subject ports.TokenSubject) (ports.TokenPair, error) {
	now := i.clock()

	access, err := i.sign(claims{
		TokenType:        accessTokenType,
		Account:          subject.Account,
		UserType:         subject.UserType,
		Code:             subject.Code,
		RegisteredClaims: i.registered(subject.UserID, now, i.cfg.AccessTTL),
	}, i.cfg.AccessSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	refresh, err := i.sign(claims{
		TokenType:        refreshTokenType,
		RegisteredClaims: i.registered(subject.UserID, now, i.cfg.RefreshTTL),
	}, i.cfg.RefreshSecret)
	if err != nil {
		return ports.TokenPair{}, err
	}

	return ports.TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: i.cfg.AccessTTL}, nil
}

func (i *JWTIssuer) ParseAccess(token string) (ports.TokenSubject, error) {
	parsed, err := i.parse(token, i.cfg.AccessSecret, accessTokenType)
	if err != nil {
		return ports.TokenSubject{}, errs.NewUnauthorizedErrorWithCause("invalid access token", err)
	}
	userID, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return ports.TokenSubject{}, errs.NewUnauthorizedErrorWithCause("invalid access token", err)
	}
	return ports.TokenSubject{
		UserID:   userID,
		Account:  parsed.Account,
		UserType: parsed.UserType,
		Code:     parsed.Code,
	}, nil
}

func (i *JWTIssuer) ParseRefresh(token string) (kernel.UUID, error) {
	parsed, err := i.parse(token, i.cfg.RefreshSecret, refreshTokenType)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid refresh token", err)
	}
	userID, err := kernel.UUIDFromString(parsed.Subject)
	if err != nil {
		return kernel.UUID{}, errs.NewUnauthorizedErrorWithCause("invalid refresh token", err)
	}
	return userID, nil
}

func (i *JWTIssuer) registered(userID kernel.UUID, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    i.cfg.Issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (i *JWTIssuer) sign(c claims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

var errWrongTokenType = errors.New("unexpected token type")

func (i *JWTIssuer) parse(token, secret, tokenType string) (*claims, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.clock),
	)
	if err != nil {
		return nil, err
	}
	if parsed.TokenType != tokenType {
		return nil, errWrongTokenType
	}
	return parsed, nil
}
