package services

import (
	"context"
	"errors"

	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
)

// BoxSequence is the part of the box repository the generator needs.
type BoxSequence interface {
	GetLatestByPrefix(ctx context.Context, prefix string) (kernel.BoxNumber, error)
}

// BoxGenerator allocates box numbers of the form
// B + code (3 digits) + year (4 digits) + serial (5 digits).
//
// The next serial is read from storage, so two concurrent generators can
// hand out the same number; the unique key on the box number turns that
// race into a conflict at insert time.
type BoxGenerator struct {
	repo BoxSequence
	opts options
}

func NewBoxGenerator(repo BoxSequence, opts ...Option) BoxGenerator {
	return BoxGenerator{repo: repo, opts: newOptions(opts)}
}

// Generate returns one unsaved box.
func (g BoxGenerator) Generate(ctx context.Context, code string, actor kernel.UUID) (*box.Box, error) {
	boxes, err := g.GenerateBatch(ctx, code, 1, actor)
	if err != nil {
		return nil, err
	}
	return boxes[0], nil
}

// GenerateBatch returns quantity unsaved boxes with consecutive serials.
// If the last serial would pass kernel.MaxBoxSerial nothing is generated.
func (g BoxGenerator) GenerateBatch(ctx context.Context, code string, quantity int, actor kernel.UUID) ([]*box.Box, error) {
	boxCode, err := ParseBoxCode(code)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, kernel.MaxBoxSerial)
	}

	now := g.opts.clock()
	prefix := kernel.BoxNumberPrefix(boxCode, now.Year())

	next, err := g.nextSerial(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if last := next + quantity - 1; last > kernel.MaxBoxSerial {
		return nil, errs.NewSequenceOverflowError("box serial", last, kernel.MaxBoxSerial)
	}

	boxes := make([]*box.Box, 0, quantity)
	for serial := next; serial < next+quantity; serial++ {
		boxNo, err := kernel.NewBoxNumberFromParts(prefix, serial)
		if err != nil {
			return nil, err
		}
		b, err := box.NewBox(boxNo, boxCode, actor, now, box.WithClock(g.opts.clock))
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}
	return boxes, nil
}

func (g BoxGenerator) nextSerial(ctx context.Context, prefix string) (int, error) {
	latest, err := g.repo.GetLatestByPrefix(ctx, prefix)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	serial, err := latest.Serial()
	if err != nil {
		return 0, err
	}
	return serial + 1, nil
}

// ParseBoxCode validates a 3 digit box code.
func ParseBoxCode(code string) (kernel.UserCode, error) {
	invalid := errs.NewValueIsInvalidErrorWithCause("code", errors.New("code must be exactly 3 digits"))

	boxCode, err := kernel.NewUserCode(code)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) {
			return kernel.UserCode{}, err
		}
		return kernel.UserCode{}, invalid
	}
	if !boxCode.IsNumeric() {
		return kernel.UserCode{}, invalid
	}
	return boxCode, nil
}
