package tokens_test

import (
	"testing"
	"time"

	"rfidship/internal/adapters/out/tokens"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.TokenIssuer = (*tokens.JWTIssuer)(nil)

var issuedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newIssuer(t *testing.T, now *time.Time) *tokens.JWTIssuer {
	t.Helper()
	issuer, err := tokens.NewJWTIssuer(tokens.Config{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
	}, tokens.WithClock(func() time.Time { return *now }))
	require.NoError(t, err)
	return issuer
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	now := issuedAt
	issuer := newIssuer(t, &now)
	subject := ports.TokenSubject{UserID: kernel.NewUUID(), Account: "admin", UserType: "admin", Code: "001"}

	pair, err := issuer.IssuePair(subject)
	require.NoError(t, err)
	assert.Equal(t, tokens.DefaultAccessTTL, pair.ExpiresIn)

	parsed, err := issuer.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, subject.UserID.IsEqual(parsed.UserID))
	assert.Equal(t, "admin", parsed.Account)
	assert.Equal(t, "001", parsed.Code)

	userID, err := issuer.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, subject.UserID.IsEqual(userID))
}

func TestJWTIssuer_TokenKindsAreNotInterchangeable(t *testing.T) {
	now := issuedAt
	issuer := newIssuer(t, &now)

	pair, err := issuer.IssuePair(ports.TokenSubject{UserID: kernel.NewUUID()})
	require.NoError(t, err)

	_, err = issuer.ParseAccess(pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = issuer.ParseRefresh(pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTIssuer_Expiry(t *testing.T) {
	now := issuedAt
	issuer := newIssuer(t, &now)

	pair, err := issuer.IssuePair(ports.TokenSubject{UserID: kernel.NewUUID()})
	require.NoError(t, err)

	now = issuedAt.Add(2 * time.Hour)
	_, err = issuer.ParseAccess(pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = issuer.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)

	now = issuedAt.Add(tokens.DefaultRefreshTTL + time.Minute)
	_, err = issuer.ParseRefresh(pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTIssuer_RejectsForeignSignature(t *testing.T) {
	now := issuedAt
	other, err := tokens.NewJWTIssuer(tokens.Config{AccessSecret: "other", RefreshSecret: "other"},
		tokens.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	pair, err := other.IssuePair(ports.TokenSubject{UserID: kernel.NewUUID()})
	require.NoError(t, err)

	_, err = newIssuer(t, &now).ParseAccess(pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = newIssuer(t, &now).ParseAccess("garbage")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewJWTIssuer_RequiresSecrets(t *testing.T) {
	_, err := tokens.NewJWTIssuer(tokens.Config{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
