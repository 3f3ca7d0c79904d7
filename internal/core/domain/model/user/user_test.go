package user_test

import (
	"strings"
	"testing"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func code(t *testing.T, raw string) kernel.UserCode {
	t.Helper()
	c, err := kernel.NewUserCode(raw)
	require.NoError(t, err)
	return c
}

func newUser(t *testing.T, userType user.Type) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "operator", "$2a$10$hash", code(t, "001"), "Operator", userType, user.WithClock(clock))
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("should create active user", func(t *testing.T) {
		u := newUser(t, user.Regular)

		require.NoError(t, u.Validate())
		assert.Equal(t, "operator", u.Account())
		assert.Equal(t, "001", u.Code().String())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLoginAt())
		assert.Equal(t, now, u.CreatedAt())
		assert.Equal(t, now, u.UpdatedAt())
		assert.False(t, u.IsAdmin())
	})

	t.Run("should trim account and name", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "  alice ", "hash", code(t, "002"), " Alice ", user.Admin)

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Account())
		assert.Equal(t, "Alice", u.Name())
		assert.True(t, u.IsAdmin())
	})

	t.Run("should join every validation error", func(t *testing.T) {
		u, err := user.NewUser(kernel.UUID{}, " ", "", kernel.UserCode{}, "", user.UnknownType)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrUserCodeIsNotConstructed)
		assert.Contains(t, err.Error(), "account")
		assert.Contains(t, err.Error(), "password hash")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "user type is invalid")
	})

	t.Run("should reject overlong account", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), strings.Repeat("a", 51), "hash", code(t, "001"), "A", user.Regular)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUser_Activation(t *testing.T) {
	u := newUser(t, user.Regular)
	require.NoError(t, u.EnsureActive())

	u.Deactivate()
	err := u.EnsureActive()
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Contains(t, err.Error(), "user is not active")

	u.Activate()
	require.NoError(t, u.EnsureActive())
}

func TestUser_Mutations(t *testing.T) {
	u := newUser(t, user.Regular)

	require.NoError(t, u.ChangeAccount("operator2"))
	require.NoError(t, u.ChangeCode(code(t, "A01")))
	require.NoError(t, u.Rename("Second"))
	require.NoError(t, u.ChangeType(user.Supplier))
	require.NoError(t, u.ChangePasswordHash("new-hash"))

	assert.Equal(t, "operator2", u.Account())
	assert.Equal(t, "A01", u.Code().String())
	assert.Equal(t, "Second", u.Name())
	assert.True(t, u.IsSupplier())
	assert.Equal(t, "new-hash", u.PasswordHash())

	require.Error(t, u.ChangeAccount(""))
	require.Error(t, u.ChangePasswordHash(""))
	require.Error(t, u.ChangeType(user.Type(9)))
	assert.Equal(t, "operator2", u.Account())

	loginAt := now.Add(time.Minute)
	u.RecordLogin(loginAt)
	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, loginAt, *u.LastLoginAt())
}

func TestUser_CanView(t *testing.T) {
	admin := newUser(t, user.Admin)
	regular := newUser(t, user.Regular)
	supplier := newUser(t, user.Supplier)

	assert.True(t, admin.CanView(supplier.ID()))
	assert.True(t, regular.CanView(admin.ID()))
	assert.True(t, supplier.CanView(supplier.ID()))
	assert.False(t, supplier.CanView(admin.ID()))
}

func TestParseType(t *testing.T) {
	tests := map[string]user.Type{
		"admin":    user.Admin,
		"user":     user.Regular,
		"supplier": user.Supplier,
	}
	for raw, expected := range tests {
		t.Run(raw, func(t *testing.T) {
			parsed, err := user.ParseType(raw)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.Equal(t, raw, parsed.String())
		})
	}

	_, err := user.ParseType("root")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "unknown", user.UnknownType.String())
}

func TestRestoreUser(t *testing.T) {
	lastLogin := now.Add(-time.Hour)
	id := kernel.NewUUID()

	u, err := user.RestoreUser(id, "bob", "hash", code(t, "003"), "Bob", user.Supplier, false, &lastLogin,
		now.Add(-48*time.Hour), now.Add(-time.Hour))

	require.NoError(t, err)
	assert.True(t, u.ID().IsEqual(id))
	assert.False(t, u.IsActive())
	assert.Equal(t, lastLogin, *u.LastLoginAt())
	assert.Equal(t, now.Add(-48*time.Hour), u.CreatedAt())
}
