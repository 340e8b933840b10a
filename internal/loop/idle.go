package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/input"
)

type idlePhase int

const (
	idleActive idlePhase = iota
	idleWarning
	idleExpired
)

// idleTimer tracks the time since the last frame with any button held.
type idleTimer struct {
	warn    time.Duration
	timeout time.Duration
	last    time.Time
	warned  bool
}

// observe records one frame of input. cleared is true on the frame a shown
// warning goes away.
func (t *idleTimer) observe(held input.Button, now time.Time) (phase idlePhase, cleared bool) {
	if held != 0 {
		t.last = now
	}
	idle := now.Sub(t.last)

	switch {
	case t.timeout > 0 && idle >= t.timeout:
		phase = idleExpired
	case t.warn > 0 && idle >= t.warn:
		phase = idleWarning
	}

	cleared = t.warned && phase == idleActive
	t.warned = phase == idleWarning
	return phase, cleared
}

// remaining returns the time left before the timeout, or zero without one.
func (t *idleTimer) remaining(now time.Time) time.Duration {
	if t.timeout <= 0 {
		return 0
	}
	return max(t.timeout-now.Sub(t.last), 0)
}

const (
	warnBoxX = 20
	warnBoxY = 56
	warnBoxW = config.ScreenWidth - 2*warnBoxX
	warnBoxH = 36
)

// drawIdleWarning paints the idle notice over whatever the game drew.
func drawIdleWarning(s draw.Surface, left time.Duration) {
	s.FillRect(warnBoxX, warnBoxY, warnBoxW, warnBoxH, draw.White)
	s.FillRect(warnBoxX+1, warnBoxY+1, warnBoxW-2, warnBoxH-2, draw.Black)

	line := "STILL THERE?"
	if left > 0 {
		line = fmt.Sprintf("DISCONNECT IN %dS", int(left.Round(time.Second)/time.Second))
	}
	centre := func(y int, text string, c draw.Color) {
		s.DrawText((config.ScreenWidth-draw.TextWidth(text, 1))/2, y, text, c)
	}
	centre(warnBoxY+8, line, draw.Yellow)
	centre(warnBoxY+20, "PRESS ANY KEY", draw.White)
}
