package snowflake

import (
	"errors"
	"testing"
	"time"
)

func TestBuilderMatchesNewWithConfig(t *testing.T) {
	clock := newFakeClock(testEpoch.Add(time.Hour))

	fromConfig, err := NewWithConfig(Config{
		WorkerID:   9,
		WorkerBits: 6,
		Epoch:      testEpoch,
		Timeout:    250 * time.Millisecond,
		Clock:      clock,
	})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	fromBuilder, err := NewBuilder().
		WorkerID(9).
		WorkerBits(6).
		Epoch(testEpoch).
		Timeout(250 * time.Millisecond).
		Clock(clock).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Identical inputs resolve to identical layouts, so with a frozen clock
	// both front-ends emit the same first id.
	id1, err := fromConfig.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	id2, err := fromBuilder.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if id1 != id2 {
		t.Fatalf("front-ends diverged: %d vs %d", id1, id2)
	}
}

func TestBuilderValidation(t *testing.T) {
	_, err := NewBuilder().WorkerID(64).WorkerBits(6).Build()
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}

	_, err = NewBuilder().WorkerID(1).Epoch(time.Now().Add(time.Minute)).Build()
	if !errors.Is(err, ErrInvalidEpoch) {
		t.Fatalf("expected ErrInvalidEpoch, got %v", err)
	}
}

func TestBuilderDefaults(t *testing.T) {
	gen, err := NewBuilder().WorkerID(1).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gen.MaxWorkerID() != 1023 || gen.MaxSequence() != 4095 {
		t.Fatalf("unexpected defaults: max worker %d, max sequence %d",
			gen.MaxWorkerID(), gen.MaxSequence())
	}
}
