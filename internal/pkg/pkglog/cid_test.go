package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := SetCorrelationID(context.Background(), "abc")
	if got := GetCorrelationID(ctx); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestCorrelationIDMissing(t *testing.T) {
	if got := GetCorrelationID(context.Background()); got != invalidCorrelationID {
		t.Fatalf("expected sentinel for missing cid, got %q", got)
	}
}
