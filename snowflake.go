package snowflake

import (
	"fmt"
	"runtime"
	"strconv"
	"time"
)

const (
	// DefaultTimeout bounds the spin-wait for the next tick when the sequence
	// space of the current tick is exhausted.
	DefaultTimeout = time.Second

	// NoTimeout disables the spin-wait deadline: Generate blocks until the
	// clock reaches the next tick, however long that takes.
	NoTimeout time.Duration = -1
)

// DefaultEpoch is the reference instant subtracted from clock readings when a
// configuration does not provide its own: 2024-01-01 00:00:00 UTC.
var DefaultEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ID is a generated identifier. Its numeric value is ordered: IDs from one
// generator strictly increase, and IDs from different workers sort coarsely
// by generation time.
type ID int64

// Int64 returns the identifier as a plain int64.
func (id ID) Int64() int64 { return int64(id) }

// String returns the identifier in base 10.
func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// Parts holds the fields of a decomposed ID.
type Parts struct {
	Timestamp int64 // ticks since the generator's epoch
	WorkerID  int64
	Sequence  int64
}

// Config carries the options accepted by NewWithConfig. The zero value of
// every field means "use the default":
//
//   - WorkerBits 0 resolves to Layout.DefaultWorkerBits.
//   - Epoch zero resolves to DefaultEpoch.
//   - Timeout 0 resolves to DefaultTimeout; NoTimeout waits indefinitely.
//   - Layout zero resolves to Layout64.
//   - Clock nil resolves to SystemClock().
//
// WorkerID has no default and must be within the range its bit width allows.
type Config struct {
	WorkerID   int64
	WorkerBits uint8
	Epoch      time.Time
	Timeout    time.Duration
	Layout     Layout
	Clock      Clock
}

// Generator mints layout-packed unique identifiers. It owns an immutable bit
// layout resolved at construction and the mutable bookkeeping of its most
// recent generation (last tick, sequence).
//
// A Generator is not safe for concurrent use. Serialize calls with a mutex
// when goroutines must share one worker identity.
type Generator struct {
	clock Clock
	epoch time.Time
	tick  time.Duration

	lastTick int64 // tick of the most recently generated ID, 0 before the first
	sequence int64
	workerID int64

	timeout time.Duration // 0 means wait indefinitely

	maxSequence    int64
	maxWorkerID    int64
	workerShift    uint8
	timestampShift uint8
}

// New constructs a Generator with all defaults: Layout64, a 10/12 worker and
// sequence split, DefaultEpoch, and DefaultTimeout.
func New(workerID int64) (*Generator, error) {
	return newGenerator(Config{WorkerID: workerID})
}

// NewWithConfig constructs a Generator from explicit options. See Config for
// how unset fields resolve.
func NewWithConfig(cfg Config) (*Generator, error) {
	return newGenerator(cfg)
}

// newGenerator is the single validation and layout-derivation routine behind
// NewWithConfig and Builder.Build. Generate trusts every invariant
// established here and never re-validates.
func newGenerator(cfg Config) (*Generator, error) {
	layout := cfg.Layout
	if layout.isZero() {
		layout = Layout64
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	workerBits := cfg.WorkerBits
	if workerBits == 0 {
		workerBits = layout.DefaultWorkerBits
	}
	if workerBits < minBits || workerBits > layout.AdjustableBits-minBits {
		return nil, &ArgumentError{
			Name: "worker bits",
			Expect: fmt.Sprintf("%d <= worker bits <= %d",
				minBits, layout.AdjustableBits-minBits),
		}
	}

	sequenceBits := layout.AdjustableBits - workerBits
	maxWorkerID := int64(1)<<workerBits - 1
	maxSequence := int64(1)<<sequenceBits - 1

	if cfg.WorkerID < 0 || cfg.WorkerID > maxWorkerID {
		return nil, &ArgumentError{
			Name:   "worker id",
			Expect: fmt.Sprintf("0 <= worker id <= %d", maxWorkerID),
		}
	}

	epoch := cfg.Epoch
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}
	// The only clock read during construction. Choose an epoch recent enough
	// that now-epoch fits TimestampBits for the service lifetime; that part
	// is operational, not checked here or in the hot path.
	if !epoch.Before(clock.Now()) {
		return nil, ErrInvalidEpoch
	}

	timeout := cfg.Timeout
	switch {
	case timeout == 0:
		timeout = DefaultTimeout
	case timeout < 0:
		timeout = 0
	}

	return &Generator{
		clock:          clock,
		epoch:          epoch,
		tick:           layout.Tick,
		workerID:       cfg.WorkerID,
		timeout:        timeout,
		maxSequence:    maxSequence,
		maxWorkerID:    maxWorkerID,
		workerShift:    sequenceBits,
		timestampShift: workerBits + sequenceBits,
	}, nil
}

// Generate mints the next identifier.
//
// Exactly one of three paths runs, chosen by comparing the current tick with
// the tick of the previous ID:
//
//   - clock moved backwards: the leftover sequence space of the previous tick
//     is spent one step at a time, tolerating sub-tick clock jitter without
//     ever moving the generator's tick backwards. Once that space wraps,
//     Generate fails with ErrClockMovedBackwards.
//   - same tick: the sequence is incremented under its mask. When it wraps,
//     Generate spin-waits for the next tick, bounded by the configured
//     timeout, and fails with ErrWaitTimeout if the clock does not advance.
//   - later tick: the sequence resets to zero.
//
// A failed call leaves the generator's state exactly as it was, so the caller
// may handle the error and retry.
func (g *Generator) Generate() (ID, error) {
	now, err := g.ticks()
	if err != nil {
		return 0, err
	}

	switch {
	case now < g.lastTick:
		seq := (g.sequence + 1) & g.maxSequence
		if seq == 0 {
			return 0, ErrClockMovedBackwards
		}
		g.sequence = seq
		// Keep lastTick: the smaller reading is never adopted.
		return g.pack(g.lastTick), nil

	case now == g.lastTick:
		seq := (g.sequence + 1) & g.maxSequence
		if seq == 0 {
			next, err := g.nextTick()
			if err != nil {
				return 0, err
			}
			now = next
		}
		g.sequence = seq

	default:
		g.sequence = 0
	}

	g.lastTick = now
	return g.pack(now), nil
}

// Decompose splits an identifier generated under this generator's layout
// back into its timestamp, worker, and sequence fields.
func (g *Generator) Decompose(id ID) Parts {
	v := int64(id)
	return Parts{
		Timestamp: v >> g.timestampShift,
		WorkerID:  (v >> g.workerShift) & g.maxWorkerID,
		Sequence:  v & g.maxSequence,
	}
}

// Time converts the timestamp field of id back to wall-clock time, at the
// resolution of the generator's tick.
func (g *Generator) Time(id ID) time.Time {
	return g.epoch.Add(time.Duration(int64(id)>>g.timestampShift) * g.tick)
}

// WorkerID returns the worker identity packed into every ID.
func (g *Generator) WorkerID() int64 { return g.workerID }

// MaxWorkerID returns the largest worker ID the resolved layout allows.
func (g *Generator) MaxWorkerID() int64 { return g.maxWorkerID }

// MaxSequence returns the number of IDs a single tick can hold, minus one.
func (g *Generator) MaxSequence() int64 { return g.maxSequence }

func (g *Generator) pack(tick int64) ID {
	return ID(tick<<g.timestampShift | g.workerID<<g.workerShift | g.sequence)
}

func (g *Generator) ticks() (int64, error) {
	d := g.clock.Now().Sub(g.epoch)
	if d < 0 {
		return 0, ErrBeforeEpoch
	}
	return int64(d / g.tick), nil
}

// nextTick spins until the clock passes lastTick, yielding the processor on
// every iteration. The deadline comes from the process monotonic clock, not
// the injected Clock, so a stalled time source cannot also stall the timeout.
// The loop allocates nothing and makes no blocking calls.
func (g *Generator) nextTick() (int64, error) {
	var deadline time.Time
	if g.timeout > 0 {
		deadline = time.Now().Add(g.timeout)
	}

	for {
		if d := g.clock.Now().Sub(g.epoch); d >= 0 {
			if now := int64(d / g.tick); now > g.lastTick {
				return now, nil
			}
		}
		if g.timeout > 0 && !time.Now().Before(deadline) {
			return 0, ErrWaitTimeout
		}
		runtime.Gosched()
	}
}
