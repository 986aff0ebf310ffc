package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alasdairpan/snowflake"
	"github.com/alasdairpan/snowflake/internal/idgen/entity"
	"github.com/alasdairpan/snowflake/internal/idgen/event"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgerror"
)

type frozenClock struct {
	now time.Time
}

func (c frozenClock) Now() time.Time { return c.now }

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.MintEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev entity.MintEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) published() []entity.MintEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]entity.MintEvent(nil), p.events...)
}

type fixedStats struct {
	snap event.Stats
}

func (s fixedStats) Snapshot() event.Stats { return s.snap }

// syncRunner runs tasks inline so tests observe audit publishes immediately.
type syncRunner struct{}

func (syncRunner) Go(ctx context.Context, f func(ctx context.Context) error) {
	_ = f(ctx)
}

type staticUID struct{ id string }

func (s staticUID) Generate() string { return s.id }

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T) *snowflake.Generator {
	t.Helper()

	gen, err := snowflake.New(3)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	return gen
}

func TestMint(t *testing.T) {
	pub := &recordingPublisher{}
	uc := New(Dependency{
		Generator: newTestGenerator(t),
		Events:    pub,
		Runner:    syncRunner{},
		UID:       staticUID{id: "ev-1"},
	})

	result, err := uc.Mint(context.Background())
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if result.ID <= 0 {
		t.Fatalf("expected positive id, got %d", result.ID)
	}
	if result.WorkerID != 3 {
		t.Fatalf("worker id = %d, want 3", result.WorkerID)
	}

	events := pub.published()
	if len(events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(events))
	}
	if events[0].Count != 1 || events[0].WorkerID != 3 || events[0].EventID != "ev-1" {
		t.Fatalf("unexpected audit event: %+v", events[0])
	}
}

func TestMintBatch(t *testing.T) {
	pub := &recordingPublisher{}
	uc := New(Dependency{
		Generator: newTestGenerator(t),
		Events:    pub,
		Runner:    syncRunner{},
		UID:       staticUID{id: "ev-2"},
	})

	result, err := uc.MintBatch(context.Background(), 10)
	if err != nil {
		t.Fatalf("MintBatch: %v", err)
	}
	if len(result.IDs) != 10 {
		t.Fatalf("expected 10 ids, got %d", len(result.IDs))
	}
	for i := 1; i < len(result.IDs); i++ {
		if result.IDs[i] <= result.IDs[i-1] {
			t.Fatalf("ids not strictly increasing at %d: %v", i, result.IDs)
		}
	}

	events := pub.published()
	if len(events) != 1 || events[0].Count != 10 {
		t.Fatalf("expected one audit event with count 10, got %+v", events)
	}
}

func TestMintBatchRejectsCountOutOfRange(t *testing.T) {
	uc := New(Dependency{Generator: newTestGenerator(t)})

	for _, count := range []int{0, -1, MaxBatchSize + 1} {
		_, err := uc.MintBatch(context.Background(), count)

		var serr *pkgerror.Error
		if !errors.As(err, &serr) {
			t.Fatalf("count %d: expected *pkgerror.Error, got %v", count, err)
		}
		if serr.Code() != pkgerror.CodeInvalidInput {
			t.Fatalf("count %d: code = %v, want invalid input", count, serr.Code())
		}
	}
}

func TestMintMapsWaitTimeout(t *testing.T) {
	// Two sequence bits and a frozen clock: the sequence space drains after
	// four ids, and the fifth call times out waiting for a tick that never
	// comes.
	gen, err := snowflake.NewWithConfig(snowflake.Config{
		WorkerID:   1,
		WorkerBits: 20,
		Epoch:      testEpoch,
		Timeout:    10 * time.Millisecond,
		Clock:      frozenClock{now: testEpoch.Add(time.Hour)},
	})
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}

	uc := New(Dependency{Generator: gen})

	for i := 0; i < 4; i++ {
		if _, err := uc.Mint(context.Background()); err != nil {
			t.Fatalf("mint %d: %v", i, err)
		}
	}

	_, err = uc.Mint(context.Background())
	var serr *pkgerror.Error
	if !errors.As(err, &serr) {
		t.Fatalf("expected *pkgerror.Error, got %v", err)
	}
	if serr.Code() != pkgerror.CodeTimeout {
		t.Fatalf("code = %v, want timeout", serr.Code())
	}
}

func TestInspect(t *testing.T) {
	gen := newTestGenerator(t)
	uc := New(Dependency{Generator: gen})

	id, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	result, err := uc.Inspect(context.Background(), id.String())
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if result.ID != id.Int64() {
		t.Fatalf("id = %d, want %d", result.ID, id.Int64())
	}
	if result.WorkerID != 3 {
		t.Fatalf("worker id = %d, want 3", result.WorkerID)
	}
}

func TestInspectRejectsInvalidInput(t *testing.T) {
	uc := New(Dependency{Generator: newTestGenerator(t)})

	for _, raw := range []string{"", "abc", "-5", "12.5"} {
		_, err := uc.Inspect(context.Background(), raw)

		var serr *pkgerror.Error
		if !errors.As(err, &serr) {
			t.Fatalf("input %q: expected *pkgerror.Error, got %v", raw, err)
		}
		if serr.Code() != pkgerror.CodeInvalidInput {
			t.Fatalf("input %q: code = %v, want invalid input", raw, serr.Code())
		}
	}
}

func TestStats(t *testing.T) {
	mintedAt := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	uc := New(Dependency{
		Generator: newTestGenerator(t),
		Stats: fixedStats{snap: event.Stats{
			Events:       4,
			IDs:          40,
			LastMintedAt: mintedAt,
		}},
	})

	result, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if result.Events != 4 || result.IDs != 40 {
		t.Fatalf("unexpected totals: %+v", result)
	}
	if !result.LastMintedAt.Equal(mintedAt) {
		t.Fatalf("last minted at = %v, want %v", result.LastMintedAt, mintedAt)
	}
	if result.WorkerID != 3 {
		t.Fatalf("worker id = %d, want 3", result.WorkerID)
	}
}
