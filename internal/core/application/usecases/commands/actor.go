package commands

import (
	"context"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
)

// Actor is the authenticated caller of a command together with the address
// the request came from.
type Actor struct {
	id        kernel.UUID
	ipAddress string
}

// NewActor parses the caller uuid taken from the access token.
func NewActor(id string, ipAddress string) (Actor, error) {
	uuid, err := kernel.UUIDFromString(id)
	if err != nil {
		return Actor{}, err
	}
	return Actor{id: uuid, ipAddress: ipAddress}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) IPAddress() string {
	return a.ipAddress
}

func (a Actor) Validate() error {
	return a.id.Validate()
}

// loadActiveActor fails with errs.ObjectNotFoundError for an unknown caller
// and errs.ForbiddenError for a deactivated one.
func loadActiveActor(ctx context.Context, repo ports.UserRepository, actor Actor) (*user.User, error) {
	u, err := repo.Get(ctx, actor.ID())
	if err != nil {
		return nil, err
	}
	if err = u.EnsureActive(); err != nil {
		return nil, err
	}
	return u, nil
}

// recordAudit writes one audit entry for actor through the log bound to the
// current unit of work.
func recordAudit(
	ctx context.Context,
	logs ports.SystemLogRepository,
	actor Actor,
	record services.AuditRecord,
	opts []services.Option,
) error {
	record.Actor = actor.ID()
	record.IPAddress = actor.IPAddress()
	_, err := services.NewAuditTrail(logs, opts...).Record(ctx, record)
	return err
}
