package event

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alasdairpan/snowflake/internal/idgen/entity"
)

// Stats is a point-in-time aggregate of the audit stream.
type Stats struct {
	Events       int64
	IDs          int64
	LastMintedAt time.Time
}

type ConsumerConfig struct {
	Workers int
}

// StatsConsumer drains the bus and keeps running totals of minted
// identifiers. Duplicate event IDs are counted once, so re-published events
// cannot skew the totals.
type StatsConsumer struct {
	bus     *Bus
	workers int
	wg      sync.WaitGroup
	seen    sync.Map

	mu           sync.Mutex
	events       int64
	ids          int64
	lastMintedAt time.Time
}

func NewStatsConsumer(bus *Bus, cfg ConsumerConfig) *StatsConsumer {
	workers := cfg.Workers
	if workers < 1 {
		workers = 2
	}

	return &StatsConsumer{
		bus:     bus,
		workers: workers,
	}
}

func (c *StatsConsumer) Start() {
	for i := 0; i < c.workers; i++ {
		c.wg.Add(1)
		go c.worker()
	}
}

func (c *StatsConsumer) Stop(ctx context.Context) error {
	if c.bus != nil {
		c.bus.Close()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the totals aggregated so far.
func (c *StatsConsumer) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Events:       c.events,
		IDs:          c.ids,
		LastMintedAt: c.lastMintedAt,
	}
}

func (c *StatsConsumer) worker() {
	defer c.wg.Done()

	for ev := range c.bus.Subscribe() {
		c.processEvent(ev)
	}
}

func (c *StatsConsumer) processEvent(ev entity.MintEvent) {
	if ev.EventID != "" {
		if _, loaded := c.seen.LoadOrStore(ev.EventID, struct{}{}); loaded {
			slog.Info("skip duplicate mint event", "event_id", ev.EventID, "worker_id", ev.WorkerID)
			return
		}
	}

	c.mu.Lock()
	c.events++
	c.ids += int64(ev.Count)
	if ev.At.After(c.lastMintedAt) {
		c.lastMintedAt = ev.At
	}
	c.mu.Unlock()
}
