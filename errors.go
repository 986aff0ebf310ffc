package snowflake

import (
	"errors"
	"fmt"
)

// Errors returned by Generate. Construction reports *ArgumentError or
// ErrInvalidEpoch instead. Every error is terminal to the single failing
// call; the generator stays usable and callers decide whether to retry.
var (
	// ErrClockMovedBackwards means the system clock regressed behind the tick
	// of the previously generated ID and the leftover sequence space of that
	// tick is exhausted, so no safe ID can be produced.
	ErrClockMovedBackwards = errors.New("snowflake: clock moved backwards")

	// ErrWaitTimeout means the sequence space of the current tick was used up
	// and the clock did not advance to the next tick within the configured
	// timeout.
	ErrWaitTimeout = errors.New("snowflake: timed out waiting for the next tick")

	// ErrBeforeEpoch means the clock reading could not be converted to ticks
	// because it is earlier than the generator's epoch.
	ErrBeforeEpoch = errors.New("snowflake: current time is before the epoch")

	// ErrInvalidEpoch means the configured epoch is not strictly in the past.
	ErrInvalidEpoch = errors.New("snowflake: epoch must be before the current time")
)

// ArgumentError reports a configuration value outside its valid range.
// It is only returned at construction time; Generate never produces one.
type ArgumentError struct {
	Name   string // the offending field, e.g. "worker id"
	Expect string // the valid range, e.g. "0 <= worker id <= 1023"
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("snowflake: invalid %s, expect %s", e.Name, e.Expect)
}
