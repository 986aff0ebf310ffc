package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/alasdairpan/snowflake"
	"github.com/alasdairpan/snowflake/internal/idgen/entity"
	"github.com/alasdairpan/snowflake/internal/idgen/event"
	"github.com/alasdairpan/snowflake/internal/pkg/pkgerror"
	"github.com/alasdairpan/snowflake/internal/pkg/pkguid"
)

// MaxBatchSize caps how many identifiers one request may mint.
const MaxBatchSize = 1000

type EventPublisher interface {
	Publish(ctx context.Context, ev entity.MintEvent) error
}

type StatsReader interface {
	Snapshot() event.Stats
}

type Runner interface {
	Go(ctx context.Context, f func(ctx context.Context) error)
}

type Dependency struct {
	Generator *snowflake.Generator
	Events    EventPublisher
	Stats     StatsReader
	Runner    Runner
	UID       pkguid.StringID
	RootCtx   context.Context
}

// Usecase serializes access to one Generator and maps its errors to the
// service error model. The generator is a single-writer state machine, so
// every mint holds the mutex; throughput is bounded by its spin-wait, which
// is the intended trade (correctness over liveness).
type Usecase struct {
	mu      sync.Mutex
	gen     *snowflake.Generator
	events  EventPublisher
	stats   StatsReader
	runner  Runner
	uid     pkguid.StringID
	rootCtx context.Context
}

func New(dep Dependency) *Usecase {
	root := dep.RootCtx
	if root == nil {
		root = context.Background()
	}

	return &Usecase{
		gen:     dep.Generator,
		events:  dep.Events,
		stats:   dep.Stats,
		runner:  dep.Runner,
		uid:     dep.UID,
		rootCtx: root,
	}
}

func (u *Usecase) Mint(ctx context.Context) (MintResult, error) {
	if u.gen == nil {
		return MintResult{}, pkgerror.NewServer(errors.New("missing generator"))
	}

	u.mu.Lock()
	id, err := u.gen.Generate()
	u.mu.Unlock()
	if err != nil {
		return MintResult{}, mapGenerateErr(err)
	}

	u.audit(1)

	parts := u.gen.Decompose(id)
	return MintResult{
		ID:        id.Int64(),
		Timestamp: parts.Timestamp,
		WorkerID:  parts.WorkerID,
		Sequence:  parts.Sequence,
		Time:      u.gen.Time(id),
	}, nil
}

func (u *Usecase) MintBatch(ctx context.Context, count int) (BatchResult, error) {
	if u.gen == nil {
		return BatchResult{}, pkgerror.NewServer(errors.New("missing generator"))
	}
	if count < 1 || count > MaxBatchSize {
		return BatchResult{}, pkgerror.NewInvalidInput(
			errors.New("count must be between 1 and " + strconv.Itoa(MaxBatchSize)))
	}

	ids := make([]int64, 0, count)

	u.mu.Lock()
	for i := 0; i < count; i++ {
		id, err := u.gen.Generate()
		if err != nil {
			u.mu.Unlock()
			// The generator's state is untouched by the failed call; the
			// caller retries the whole batch.
			return BatchResult{}, mapGenerateErr(err)
		}
		ids = append(ids, id.Int64())
	}
	u.mu.Unlock()

	u.audit(count)

	return BatchResult{IDs: ids, WorkerID: u.gen.WorkerID()}, nil
}

func (u *Usecase) Inspect(ctx context.Context, raw string) (InspectResult, error) {
	if u.gen == nil {
		return InspectResult{}, pkgerror.NewServer(errors.New("missing generator"))
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return InspectResult{}, pkgerror.NewInvalidInput(errors.New("id must be a non-negative integer"))
	}

	id := snowflake.ID(value)
	parts := u.gen.Decompose(id)

	return InspectResult{
		ID:        value,
		Timestamp: parts.Timestamp,
		WorkerID:  parts.WorkerID,
		Sequence:  parts.Sequence,
		Time:      u.gen.Time(id),
	}, nil
}

func (u *Usecase) Stats(ctx context.Context) (StatsResult, error) {
	if u.gen == nil || u.stats == nil {
		return StatsResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	snap := u.stats.Snapshot()
	return StatsResult{
		WorkerID:     u.gen.WorkerID(),
		Events:       snap.Events,
		IDs:          snap.IDs,
		LastMintedAt: snap.LastMintedAt,
	}, nil
}

// audit publishes a mint event off the request path. Losing an audit event
// is logged, never surfaced: the ids are already minted and valid.
func (u *Usecase) audit(count int) {
	if u.events == nil || u.runner == nil {
		return
	}

	ev := entity.MintEvent{
		WorkerID: u.gen.WorkerID(),
		Count:    count,
		At:       time.Now(),
	}
	if u.uid != nil {
		ev.EventID = u.uid.Generate()
	}

	u.runner.Go(u.rootCtx, func(ctx context.Context) error {
		if err := u.events.Publish(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to publish mint event", "event_id", ev.EventID, "error", err)
			return err
		}
		return nil
	})
}

func mapGenerateErr(err error) error {
	switch {
	case errors.Is(err, snowflake.ErrWaitTimeout):
		return pkgerror.NewBusiness("sequence space exhausted for the current tick, retry shortly", pkgerror.CodeTimeout)
	case errors.Is(err, snowflake.ErrClockMovedBackwards):
		return pkgerror.NewBusiness("system clock moved backwards, refusing to mint", pkgerror.CodeUnavailable)
	case errors.Is(err, snowflake.ErrBeforeEpoch):
		return pkgerror.NewBusiness("system clock is before the configured epoch", pkgerror.CodeUnavailable)
	default:
		return pkgerror.NewServer(err)
	}
}
