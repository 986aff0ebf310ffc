package snowflake

import "time"

// Clock supplies the current time to a Generator. Production code uses the
// system clock; tests inject controllable implementations to simulate
// frozen, stepping, or regressing clocks.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall-clock time source used by default.
func SystemClock() Clock { return systemClock{} }
