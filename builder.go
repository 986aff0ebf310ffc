package snowflake

import "time"

// Builder is a fluent alternative to NewWithConfig. A zero Builder is ready
// to use; fields left unset resolve to the same defaults as Config, and
// Build runs the same validation as NewWithConfig.
type Builder struct {
	cfg Config
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WorkerID sets the worker identity packed into every ID.
func (b *Builder) WorkerID(id int64) *Builder {
	b.cfg.WorkerID = id
	return b
}

// WorkerBits sets the width of the worker-ID field. The sequence field
// receives the rest of the layout's adjustable budget.
func (b *Builder) WorkerBits(bits uint8) *Builder {
	b.cfg.WorkerBits = bits
	return b
}

// Epoch sets the reference instant subtracted from clock readings. It must
// be strictly in the past at Build time.
func (b *Builder) Epoch(t time.Time) *Builder {
	b.cfg.Epoch = t
	return b
}

// Timeout bounds the spin-wait for the next tick. Pass NoTimeout to wait
// indefinitely.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.cfg.Timeout = d
	return b
}

// Layout selects the bit layout, for example Layout53 for float64-safe IDs.
func (b *Builder) Layout(l Layout) *Builder {
	b.cfg.Layout = l
	return b
}

// Clock injects a time source, mainly for tests.
func (b *Builder) Clock(c Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// Build validates the accumulated configuration and constructs the Generator.
func (b *Builder) Build() (*Generator, error) {
	return newGenerator(b.cfg)
}
