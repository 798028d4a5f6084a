package fetch

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestNewPacerDisabledWhenZero(t *testing.T) {
	if p := newPacer(0, 0); p != nil {
		t.Fatalf("expected nil pacer when spacing disabled")
	}
	var p *pacer
	if err := p.wait(context.Background()); err != nil {
		t.Fatalf("expected nil pacer to never block, got %v", err)
	}
}

func TestPacerFirstCallDoesNotWait(t *testing.T) {
	p := newPacer(time.Hour, 0)
	start := time.Now()
	if err := p.wait(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("expected first call to proceed immediately")
	}
}

func TestPacerSpacesConsecutiveCalls(t *testing.T) {
	p := newPacer(20*time.Millisecond, 0)
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.wait(context.Background()); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("expected at least 40ms across three calls, got %s", elapsed)
	}
}

func TestPacerJitterAddsToInterval(t *testing.T) {
	p := newPacer(time.Second, time.Second)
	p.rand = func(n int64) int64 { return n - 1 }
	if got := p.spacing(); got != 2*time.Second {
		t.Fatalf("expected 2s spacing at max jitter, got %s", got)
	}
	p.rand = func(int64) int64 { return 0 }
	if got := p.spacing(); got != time.Second {
		t.Fatalf("expected 1s spacing at min jitter, got %s", got)
	}
}

func TestPacerWaitRespectsCancel(t *testing.T) {
	p := newPacer(time.Hour, 0)
	_ = p.wait(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := p.wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 0},
		{"15", 15 * time.Second},
		{"-3", 0},
		{now.Add(time.Minute).Format(http.TimeFormat), time.Minute},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"soon", 0},
	}
	for _, tc := range cases {
		if got := parseRetryAfter(tc.raw, now); got != tc.want {
			t.Fatalf("parseRetryAfter(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}
