package services

import (
	"context"
	"strconv"
	"strings"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/pkg/errs"
)

// DefaultShipmentAttempts bounds the collision retries of ShipmentGenerator.
const DefaultShipmentAttempts = 100

const (
	base36Alphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	shipmentNumberLen    = 16
	shipmentTimestampLen = 8
	shipmentRandomLen    = 5
)

// ShipmentLookup is the part of the shipment repository the generator needs.
type ShipmentLookup interface {
	Exists(ctx context.Context, shipmentNo kernel.ShipmentNumber) (bool, error)
}

// ShipmentGenerator synthesizes shipment numbers of the form
// userCode (3) + base36 unix millis (8) + random base36 (5).
type ShipmentGenerator struct {
	repo ShipmentLookup
	opts options
}

func NewShipmentGenerator(repo ShipmentLookup, opts ...Option) ShipmentGenerator {
	return ShipmentGenerator{repo: repo, opts: newOptions(opts)}
}

// Generate returns an unsaved, empty shipment in Created status. It fails
// with errs.GenerationExhaustedError when every attempt collided.
func (g ShipmentGenerator) Generate(
	ctx context.Context,
	userCode kernel.UserCode,
	actor kernel.UUID,
	note string,
) (*shipment.Shipment, error) {
	if err := userCode.Validate(); err != nil {
		return nil, err
	}

	for range g.opts.maxAttempts {
		shipmentNo, err := kernel.NewShipmentNumber(g.candidate(userCode))
		if err != nil {
			return nil, err
		}

		exists, err := g.repo.Exists(ctx, shipmentNo)
		if err != nil {
			return nil, err
		}
		if !exists {
			return shipment.NewShipment(shipmentNo, userCode, actor, note, g.opts.clock(),
				shipment.WithClock(g.opts.clock))
		}
	}

	return nil, errs.NewGenerationExhaustedError("shipment number", g.opts.maxAttempts)
}

func (g ShipmentGenerator) candidate(userCode kernel.UserCode) string {
	stamp := strings.ToUpper(strconv.FormatInt(g.opts.clock().UnixMilli(), 36))
	if len(stamp) < shipmentTimestampLen {
		stamp = strings.Repeat("0", shipmentTimestampLen-len(stamp)) + stamp
	}
	stamp = stamp[len(stamp)-shipmentTimestampLen:]

	var b strings.Builder
	b.Grow(shipmentNumberLen)
	b.WriteString(userCode.String())
	b.WriteString(stamp)
	for range shipmentRandomLen {
		b.WriteByte(base36Alphabet[g.opts.random.IntN(len(base36Alphabet))])
	}
	return b.String()
}
