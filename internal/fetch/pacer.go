package fetch

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// pacer spaces consecutive requests at least interval apart, plus a random
// extra of up to jitter. The first request never waits.
type pacer struct {
	mu       sync.Mutex
	interval time.Duration
	jitter   time.Duration
	next     time.Time
	now      func() time.Time
	rand     func(n int64) int64
}

func newPacer(interval, jitter time.Duration) *pacer {
	if interval <= 0 && jitter <= 0 {
		return nil
	}
	return &pacer{
		interval: interval,
		jitter:   jitter,
		now:      time.Now,
		rand:     rand.Int63n,
	}
}

// wait blocks until the caller's slot comes up or ctx is done.
func (p *pacer) wait(ctx context.Context) error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	now := p.now()
	slot := p.next
	if slot.Before(now) {
		slot = now
	}
	p.next = slot.Add(p.spacing())
	p.mu.Unlock()

	delay := slot.Sub(now)
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (p *pacer) spacing() time.Duration {
	d := p.interval
	if p.jitter > 0 {
		d += time.Duration(p.rand(int64(p.jitter) + 1))
	}
	return d
}
