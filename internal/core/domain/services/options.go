package services

import (
	"math/rand/v2"

	"rfidship/internal/core/domain/model/kernel"
)

// RandomSource picks uniformly from [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int {
	return rand.IntN(n)
}

type options struct {
	clock       kernel.Clock
	random      RandomSource
	maxAttempts int
}

// Option tunes a generator or the audit trail.
type Option func(*options)

// WithClock replaces the time source.
func WithClock(clock kernel.Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithRandom replaces the random source of the shipment generator.
func WithRandom(random RandomSource) Option {
	return func(o *options) {
		if random != nil {
			o.random = random
		}
	}
}

// WithMaxAttempts bounds the shipment number collision retries.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		clock:       kernel.SystemClock,
		random:      globalRandom{},
		maxAttempts: DefaultShipmentAttempts,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ResolveClock returns the time source selected by opts, so entities
// mutated next to a generator share its clock.
func ResolveClock(opts ...Option) kernel.Clock {
	return newOptions(opts).clock
}
