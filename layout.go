package snowflake

import (
	"fmt"
	"time"
)

// minBits is the smallest width allowed for the worker and sequence fields.
const minBits = 1

// Layout describes how the bits of an identifier are allocated and how fine
// its timestamp ticks. The timestamp field occupies the most significant
// positions below the sign bit, followed by the worker field and the
// sequence field, which split AdjustableBits between them per generator.
type Layout struct {
	// TimestampBits is the width of the timestamp field.
	TimestampBits uint8

	// AdjustableBits is the combined budget for the worker and sequence
	// fields.
	AdjustableBits uint8

	// Tick is the resolution of one timestamp unit.
	Tick time.Duration

	// DefaultWorkerBits is the worker-field width used when a configuration
	// leaves WorkerBits unset.
	DefaultWorkerBits uint8
}

// Layout64 is the canonical Twitter layout: a 63-bit identifier holding a
// 41-bit millisecond timestamp and 22 adjustable bits, split 10/12 between
// worker and sequence by default. The timestamp field lasts about 69 years
// past the epoch.
var Layout64 = Layout{
	TimestampBits:     41,
	AdjustableBits:    22,
	Tick:              time.Millisecond,
	DefaultWorkerBits: 10,
}

// Layout53 is a compact layout: a 52-bit identifier holding a 31-bit second
// timestamp and 21 adjustable bits, split 8/13 by default. IDs fit in the
// 53-bit mantissa of a float64, so they round-trip losslessly through JSON
// numbers and other double-precision representations.
var Layout53 = Layout{
	TimestampBits:     31,
	AdjustableBits:    21,
	Tick:              time.Second,
	DefaultWorkerBits: 8,
}

func (l Layout) isZero() bool {
	return l.TimestampBits == 0 && l.AdjustableBits == 0 && l.Tick == 0
}

func (l Layout) validate() error {
	if l.Tick <= 0 {
		return &ArgumentError{Name: "layout tick", Expect: "a positive duration"}
	}
	if l.TimestampBits < minBits || l.AdjustableBits < 2*minBits ||
		uint(l.TimestampBits)+uint(l.AdjustableBits) > 63 {
		return &ArgumentError{
			Name: "layout bits",
			Expect: fmt.Sprintf("timestamp bits >= %d, adjustable bits >= %d, sum <= 63",
				minBits, 2*minBits),
		}
	}
	return nil
}
