// Package ports defines the contracts between the domain and its
// infrastructure: repositories, the unit of work, password hashing and
// token issuance. Adapters implement them; use cases depend on them.
package ports

import (
	"context"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
// Absent keys are reported as errs.ObjectNotFoundError, unique violations
// on account or code as errs.ConflictError.
type UserRepository interface {
	// Add persists a new user.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists every mutable attribute of an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by uuid.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByAccount retrieves a user by login name.
	GetByAccount(ctx context.Context, account string) (*user.User, error)

	// GetByCode retrieves a user by business code.
	GetByCode(ctx context.Context, code kernel.UserCode) (*user.User, error)

	// Delete removes a user permanently.
	Delete(ctx context.Context, id kernel.UUID) error
}
