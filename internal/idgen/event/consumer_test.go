package event

import (
	"context"
	"testing"
	"time"

	"github.com/alasdairpan/snowflake/internal/idgen/entity"
)

func TestStatsConsumerAggregates(t *testing.T) {
	bus := NewBus(8)
	consumer := NewStatsConsumer(bus, ConsumerConfig{Workers: 2})
	consumer.Start()

	now := time.Now()
	events := []entity.MintEvent{
		{EventID: "e1", WorkerID: 1, Count: 1, At: now},
		{EventID: "e2", WorkerID: 1, Count: 10, At: now.Add(time.Second)},
		{EventID: "e2", WorkerID: 1, Count: 10, At: now.Add(time.Second)}, // duplicate
	}
	for _, ev := range events {
		if err := bus.Publish(context.Background(), ev); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := consumer.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}

	stats := consumer.Snapshot()
	if stats.Events != 2 {
		t.Fatalf("expected 2 events, got %d", stats.Events)
	}
	if stats.IDs != 11 {
		t.Fatalf("expected 11 ids, got %d", stats.IDs)
	}
	if !stats.LastMintedAt.Equal(now.Add(time.Second)) {
		t.Fatalf("unexpected last minted at: %v", stats.LastMintedAt)
	}
}

func TestBusClosedPublish(t *testing.T) {
	bus := NewBus(1)
	bus.Close()

	err := bus.Publish(context.Background(), entity.MintEvent{EventID: "e1"})
	if err != ErrBusClosed {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
}
