package systemlog

import (
	"errors"
	"fmt"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

const maxActionLength = 50

// EntryOption sets an optional audit attribute.
type EntryOption func(*Entry)

// WithTarget names the entity the action was applied to.
func WithTarget(targetType, targetID string) EntryOption {
	return func(e *Entry) {
		e.targetType = targetType
		e.targetID = targetID
	}
}

func WithDescription(description string) EntryOption {
	return func(e *Entry) {
		e.description = description
	}
}

func WithIPAddress(ipAddress string) EntryOption {
	return func(e *Entry) {
		e.ipAddress = ipAddress
	}
}

// Entry is one audit record. Its id is assigned by storage and is zero
// until the entry is persisted. Empty optional fields are absent.
//
// Entries are append-only. Apart from AssignID, called once on insert,
// nothing mutates an entry and the repository port has no update. Command
// handlers write an entry in the same unit of work as the change it
// describes, so a rolled back change leaves no trace.
type Entry struct {
	id          int64
	userUUID    kernel.UUID
	action      string
	targetType  string
	targetID    string
	description string
	ipAddress   string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewEntry creates an unsaved audit record for the acting user. The action
// is a free-form upper snake case verb such as "CREATE_BOX"; target,
// description and client address are attached with the EntryOption helpers.
//
// Example:
//
//	e, err := systemlog.NewEntry(actorID, "SHIP_SHIPMENT", now,
//		systemlog.WithTarget("shipment", "001M7Q2K9ZXA4B7C"),
//	)
func NewEntry(userUUID kernel.UUID, action string, createdAt time.Time, opts ...EntryOption) (*Entry, error) {
	return RestoreEntry(0, userUUID, action, createdAt, opts...)
}

// RestoreEntry rebuilds a stored audit record.
func RestoreEntry(id int64, userUUID kernel.UUID, action string, createdAt time.Time, opts ...EntryOption) (*Entry, error) {
	e := &Entry{
		id:        id,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := errors.Join(e.setUserUUID(userUUID), e.setAction(action)); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() int64             { return e.id }
func (e *Entry) UserUUID() kernel.UUID { return e.userUUID }
func (e *Entry) Action() string        { return e.action }
func (e *Entry) TargetType() string    { return e.targetType }
func (e *Entry) TargetID() string      { return e.targetID }
func (e *Entry) Description() string   { return e.description }
func (e *Entry) IPAddress() string     { return e.ipAddress }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }

// AssignID records the storage-assigned id once. Later calls fail.
func (e *Entry) AssignID(id int64) error {
	if e.id != 0 {
		return errs.NewConflictError(fmt.Sprintf("audit entry already has id %d", e.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	e.id = id
	return nil
}

func (e *Entry) setUserUUID(userUUID kernel.UUID) error {
	if err := userUUID.Validate(); err != nil {
		return err
	}
	e.userUUID = userUUID
	return nil
}

func (e *Entry) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	if len(action) > maxActionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid",
			fmt.Errorf("action must be at most %d characters", maxActionLength),
		)
	}
	e.action = action
	return nil
}
