package gormerr_test

import (
	"errors"
	"testing"

	"rfidship/internal/adapters/out/postgres/gormerr"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "not found", err: gorm.ErrRecordNotFound, target: errs.ErrObjectNotFound},
		{name: "duplicate", err: gorm.ErrDuplicatedKey, target: errs.ErrConflict},
		{name: "foreign key", err: gorm.ErrForeignKeyViolated, target: errs.ErrConflict},
		{name: "passthrough", err: other, target: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, gormerr.Translate(tt.err, "box", "B001202500001"), tt.target)
		})
	}

	assert.NoError(t, gormerr.Translate(nil, "box", "B001202500001"))
}

func TestNotFoundUnlessAffected(t *testing.T) {
	assert.ErrorIs(t, gormerr.NotFoundUnlessAffected(&gorm.DB{}, "user", "x"), errs.ErrObjectNotFound)
	assert.NoError(t, gormerr.NotFoundUnlessAffected(&gorm.DB{RowsAffected: 1}, "user", "x"))
	assert.ErrorIs(t,
		gormerr.NotFoundUnlessAffected(&gorm.DB{Error: gorm.ErrDuplicatedKey}, "user", "x"),
		errs.ErrConflict,
	)
}
