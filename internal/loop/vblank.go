package loop

import (
	"context"
	"time"
)

// VBlank blocks until the next vertical blank.
type VBlank interface {
	Wait(ctx context.Context) error
}

// Ticker is a VBlank driven by a wall-clock ticker. Missed ticks are
// dropped, so a slow frame delays the next one instead of bunching them.
type Ticker struct {
	t *time.Ticker
}

// NewTicker starts a ticker with the given frame period.
func NewTicker(period time.Duration) *Ticker {
	return &Ticker{t: time.NewTicker(period)}
}

func (t *Ticker) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.t.C:
		return nil
	}
}

// Stop releases the ticker.
func (t *Ticker) Stop() { t.t.Stop() }

// VBlankFunc adapts a function to VBlank.
type VBlankFunc func(ctx context.Context) error

func (fn VBlankFunc) Wait(ctx context.Context) error { return fn(ctx) }
