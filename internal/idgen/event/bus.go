package event

import (
	"context"
	"errors"
	"sync"

	"github.com/alasdairpan/snowflake/internal/idgen/entity"
)

var ErrBusClosed = errors.New("event bus is closed")

// Bus is a bounded in-process channel of mint audit events.
type Bus struct {
	mu     sync.RWMutex
	closed bool
	ch     chan entity.MintEvent
}

func NewBus(buffer int) *Bus {
	if buffer < 1 {
		buffer = 1
	}

	return &Bus{
		ch: make(chan entity.MintEvent, buffer),
	}
}

func (b *Bus) Publish(ctx context.Context, ev entity.MintEvent) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	select {
	case b.ch <- ev:
		b.mu.RUnlock()
		return nil
	case <-ctx.Done():
		b.mu.RUnlock()
		return ctx.Err()
	}
}

func (b *Bus) Subscribe() <-chan entity.MintEvent {
	return b.ch
}

func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.ch)
}
