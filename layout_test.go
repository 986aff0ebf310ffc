package snowflake

import (
	"errors"
	"testing"
	"time"
)

func TestLayoutValidation(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
	}{
		{
			name:   "zero tick",
			layout: Layout{TimestampBits: 41, AdjustableBits: 22},
		},
		{
			name:   "bits exceed 63",
			layout: Layout{TimestampBits: 50, AdjustableBits: 20, Tick: time.Millisecond},
		},
		{
			name:   "adjustable budget too small",
			layout: Layout{TimestampBits: 41, AdjustableBits: 1, Tick: time.Millisecond},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWithConfig(Config{WorkerID: 0, WorkerBits: 1, Layout: tc.layout})
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("expected ArgumentError, got %v", err)
			}
		})
	}
}

func TestCustomLayout(t *testing.T) {
	// A 32-bit centisecond timestamp with a 4/8 worker and sequence split.
	layout := Layout{
		TimestampBits:     32,
		AdjustableBits:    12,
		Tick:              10 * time.Millisecond,
		DefaultWorkerBits: 4,
	}

	gen, err := NewWithConfig(Config{WorkerID: 5, Layout: layout})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	if gen.MaxWorkerID() != 15 {
		t.Fatalf("expected max worker id 15, got %d", gen.MaxWorkerID())
	}
	if gen.MaxSequence() != 255 {
		t.Fatalf("expected max sequence 255, got %d", gen.MaxSequence())
	}

	id, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := gen.Decompose(id).WorkerID; got != 5 {
		t.Fatalf("decomposed worker id %d, want 5", got)
	}
}
