package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

const (
	maxAccountLength = 50
	maxNameLength    = 100
)

// Option configures optional User collaborators.
type Option func(*User)

// WithClock replaces the clock used to stamp updatedAt.
func WithClock(clock kernel.Clock) Option {
	return func(u *User) {
		if clock != nil {
			u.clock = clock
		}
	}
}

// User is an operator account.
//
// User follows these invariants:
//   - account and code are non-empty (their uniqueness is checked by the
//     repository and the create/update workflows)
//   - passwordHash is never empty; the plain password is never stored
//   - userType is one of Admin, Regular, Supplier
type User struct {
	id           kernel.UUID
	account      string
	passwordHash string
	code         kernel.UserCode
	name         string
	userType     Type
	isActive     bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
	clock        kernel.Clock
	guard        guard.ConstructorGuard
}

// NewUser creates an active user that has never logged in.
//
// Parameters:
//   - id: user identity
//   - account: login name, 1 to 50 characters
//   - passwordHash: hash produced by the password hasher
//   - code: business code stamped into boxes and shipments
//   - name: display name, 1 to 100 characters
//   - userType: role
//
// Returns the joined validation errors of every invalid argument.
func NewUser(
	id kernel.UUID,
	account string,
	passwordHash string,
	code kernel.UserCode,
	name string,
	userType Type,
	opts ...Option,
) (*User, error) {
	u := &User{
		isActive: true,
		clock:    kernel.SystemClock,
		guard:    guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(u)
	}
	u.createdAt = u.clock()
	u.updatedAt = u.createdAt

	if err := u.setAll(id, account, passwordHash, code, name, userType); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rebuilds a user from storage. Unlike NewUser it takes the
// activity flag and timestamps as stored, and does not consult the clock.
func RestoreUser(
	id kernel.UUID,
	account string,
	passwordHash string,
	code kernel.UserCode,
	name string,
	userType Type,
	isActive bool,
	lastLoginAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	opts ...Option,
) (*User, error) {
	u := &User{
		isActive:    isActive,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		clock:       kernel.SystemClock,
		guard:       guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(u)
	}

	if err := u.setAll(id, account, passwordHash, code, name, userType); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares users by uuid.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID         { return u.id }
func (u *User) Account() string         { return u.account }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Code() kernel.UserCode   { return u.code }
func (u *User) Name() string            { return u.name }
func (u *User) Type() Type              { return u.userType }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
func (u *User) IsAdmin() bool           { return u.userType == Admin }
func (u *User) IsSupplier() bool        { return u.userType == Supplier }

// CanView reports whether the user may read the profile of target.
// Suppliers may only read their own.
func (u *User) CanView(target kernel.UUID) bool {
	if u.userType == Supplier {
		return u.id.IsEqual(target)
	}
	return true
}

// EnsureActive returns errs.ForbiddenError for a deactivated user.
func (u *User) EnsureActive() error {
	if !u.isActive {
		return errs.NewForbiddenError("user is not active")
	}
	return nil
}

func (u *User) Activate() {
	u.isActive = true
	u.touch()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.touch()
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin(at time.Time) {
	u.lastLoginAt = &at
	u.touch()
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	if err := u.setPasswordHash(passwordHash); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) ChangeAccount(account string) error {
	if err := u.setAccount(account); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) ChangeCode(code kernel.UserCode) error {
	if err := u.setCode(code); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) Rename(name string) error {
	if err := u.setName(name); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) ChangeType(userType Type) error {
	if err := u.setType(userType); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = u.clock()
}

func (u *User) setAll(id kernel.UUID, account, passwordHash string, code kernel.UserCode, name string, userType Type) error {
	return errors.Join(
		u.setID(id),
		u.setAccount(account),
		u.setPasswordHash(passwordHash),
		u.setCode(code),
		u.setName(name),
		u.setType(userType),
	)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setAccount(account string) error {
	account = strings.TrimSpace(account)
	if account == "" {
		return errs.NewValueIsRequiredError("account")
	}
	if len(account) > maxAccountLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"account is invalid",
			fmt.Errorf("account must be at most %d characters", maxAccountLength),
		)
	}
	u.account = account
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setCode(code kernel.UserCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	u.code = code
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len([]rune(name)) > maxNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name is invalid",
			fmt.Errorf("name must be at most %d characters", maxNameLength),
		)
	}
	u.name = name
	return nil
}

func (u *User) setType(userType Type) error {
	if err := userType.Validate(); err != nil {
		return err
	}
	u.userType = userType
	return nil
}
