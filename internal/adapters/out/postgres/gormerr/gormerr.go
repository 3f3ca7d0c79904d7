// Package gormerr maps GORM errors onto the errs taxonomy so that every
// repository reports missing rows and unique violations the same way.
// The GORM connection must be opened with TranslateError enabled.
package gormerr

import (
	"errors"
	"fmt"

	"rfidship/internal/pkg/errs"

	"gorm.io/gorm"
)

// Translate converts err for the entity identified by key. Unknown errors
// are returned unchanged.
func Translate(err error, entity string, key any) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewObjectNotFoundErrorWithCause(entity, key, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v already exists", entity, key), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewConflictErrorWithCause(fmt.Sprintf("%s %v references a missing record", entity, key), err)
	default:
		return err
	}
}

// NotFoundUnlessAffected reports a missing row when an UPDATE or DELETE
// matched nothing.
func NotFoundUnlessAffected(result *gorm.DB, entity string, key any) error {
	if result.Error != nil {
		return Translate(result.Error, entity, key)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entity, key)
	}
	return nil
}

// StaleUnlessAffected is NotFoundUnlessAffected for a guarded UPDATE whose
// WHERE clause also pins previously read column values. When nothing
// matched, exists tells a deleted row (errs.ObjectNotFoundError) apart
// from one changed by another writer (errs.ConflictError).
func StaleUnlessAffected(result *gorm.DB, exists func() (bool, error), entity string, key any) error {
	if result.Error != nil {
		return Translate(result.Error, entity, key)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	found, err := exists()
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError(entity, key)
	}
	return errs.NewConflictError(fmt.Sprintf("%s %v was modified concurrently", entity, key))
}
