package pkgroutine

import (
	"context"
	"errors"
	"testing"
)

func TestNewManagerDefaultMax(t *testing.T) {
	mgr := NewManager(0)
	if got := cap(mgr.sema); got != DefaultMaxGoroutine {
		t.Fatalf("expected cap %d, got %d", DefaultMaxGoroutine, got)
	}
}

func TestManagerCollectsErrors(t *testing.T) {
	mgr := NewManager(2)
	errOne := errors.New("one")
	errTwo := errors.New("two")

	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errOne
	})
	mgr.Go(context.Background(), func(ctx context.Context) error {
		return errTwo
	})

	err := mgr.Wait()
	if !errors.Is(err, errOne) || !errors.Is(err, errTwo) {
		t.Fatalf("expected both errors collected, got %v", err)
	}
}

func TestManagerSkipsCanceledContext(t *testing.T) {
	mgr := NewManager(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	mgr.Go(ctx, func(ctx context.Context) error {
		ran = true
		return nil
	})

	if err := mgr.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if ran {
		t.Fatalf("expected function to be skipped for canceled context")
	}
}

func TestManagerRecoversPanic(t *testing.T) {
	mgr := NewManager(1)

	mgr.Go(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})

	if err := mgr.Wait(); err != nil {
		t.Fatalf("expected panic to be swallowed, got %v", err)
	}
}
