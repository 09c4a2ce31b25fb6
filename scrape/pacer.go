package scrape

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/shaunakkarnik/codesync"
)

// Default pacing between detail page fetches.
const (
	DefaultDelay  = 1 * time.Second
	DefaultJitter = 1 * time.Second
)

var _ codesync.Pacer = (*JitterPacer)(nil)

// JitterPacer waits a fixed base delay plus a random jitter in [0, Jitter).
// The delay does not grow on failures.
type JitterPacer struct {
	Base   time.Duration
	Jitter time.Duration

	// Rand returns a pseudo-random number in [0, n). Defaults to rand.Int64N.
	Rand func(n int64) int64
}

// NewJitterPacer creates a JitterPacer with the given base delay and jitter bound.
func NewJitterPacer(base, jitter time.Duration) *JitterPacer {
	return &JitterPacer{Base: base, Jitter: jitter}
}

// Delay returns the next delay.
func (p *JitterPacer) Delay() time.Duration {
	d := p.Base
	if p.Jitter > 0 {
		randFn := p.Rand
		if randFn == nil {
			randFn = rand.Int64N
		}
		d += time.Duration(randFn(int64(p.Jitter)))
	}
	if d < 0 {
		return 0
	}
	return d
}

// Wait blocks for the next delay or until the context is canceled.
func (p *JitterPacer) Wait(ctx context.Context) error {
	d := p.Delay()
	if d == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
