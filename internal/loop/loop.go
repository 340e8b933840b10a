// Package loop drives a game at a fixed frame rate: poll input, update,
// wait for the vertical blank, render, flip.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/game"
	"github.com/tomz197/rockfall/internal/input"
)

var (
	// ErrQuit ends a run when the player presses the quit key or the input
	// stream closes.
	ErrQuit = errors.New("quit requested")
	// ErrIdle ends a run after the idle timeout passes without input.
	ErrIdle = errors.New("idle timeout")
)

// Options configures a Driver. Game, Input, Display and VBlank are required.
type Options struct {
	Game    *game.Game
	Input   input.Source
	Display draw.Display
	VBlank  VBlank

	// FrameTime is the budget for one render; longer renders are logged.
	// Zero selects the default rate.
	FrameTime time.Duration
	// IdleWarn and IdleTimeout are measured from the last frame with any
	// button held. Zero disables either.
	IdleWarn    time.Duration
	IdleTimeout time.Duration

	Log zerolog.Logger
	Now func() time.Time
}

// Driver runs one game against one display.
type Driver struct {
	game    *game.Game
	in      input.Source
	display draw.Display
	vblank  VBlank
	budget  time.Duration
	idle    idleTimer
	log     zerolog.Logger
	now     func() time.Time

	tracker input.Tracker
	state   game.State
	frames  int
}

// NewDriver creates a driver from opts.
func NewDriver(opts Options) *Driver {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	budget := opts.FrameTime
	if budget <= 0 {
		budget = config.TargetFrameTime
	}
	return &Driver{
		game:    opts.Game,
		in:      opts.Input,
		display: opts.Display,
		vblank:  opts.VBlank,
		budget:  budget,
		idle:    idleTimer{warn: opts.IdleWarn, timeout: opts.IdleTimeout, last: now()},
		log:     opts.Log,
		now:     now,
		state:   opts.Game.State(),
	}
}

// Frames returns how many frames have been flipped.
func (d *Driver) Frames() int { return d.frames }

// Step runs a single frame. It returns ErrQuit or ErrIdle when the run
// should end, or the error from the vblank wait or the display.
func (d *Driver) Step(ctx context.Context) error {
	held, quit := d.in.Poll()
	if quit {
		return ErrQuit
	}

	now := d.now()
	phase, cleared := d.idle.observe(held, now)
	if phase == idleExpired {
		return ErrIdle
	}
	if cleared {
		d.game.Invalidate()
	}

	d.game.Update(d.tracker.Next(held))
	if st := d.game.State(); st != d.state {
		d.log.Debug().Stringer("from", d.state).Stringer("to", st).Msg("state transition")
		d.state = st
	}

	if err := d.vblank.Wait(ctx); err != nil {
		return err
	}

	start := d.now()
	d.game.Render(d.display)
	if phase == idleWarning {
		drawIdleWarning(d.display, d.idle.remaining(now))
	}
	if err := d.display.Flip(); err != nil {
		return fmt.Errorf("error flipping frame %d: %w", d.frames, err)
	}
	d.frames++

	if took := d.now().Sub(start); took > d.budget {
		d.log.Warn().Dur("took", took).Dur("budget", d.budget).Int("frame", d.frames).Msg("frame overrun")
	}
	return nil
}

// Run steps frames until ctx is cancelled, the player quits or the session
// idles out. Cancellation and quitting are not errors.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info().Stringer("state", d.state).Msg("session started")
	for {
		err := d.Step(ctx)
		if err == nil {
			continue
		}
		switch {
		case errors.Is(err, ErrQuit), errors.Is(err, context.Canceled):
			d.log.Info().Int("frames", d.frames).Int("highScore", d.game.HighScore()).Msg("session ended")
			return nil
		case errors.Is(err, ErrIdle):
			d.log.Info().Int("frames", d.frames).Int("highScore", d.game.HighScore()).Msg("session idled out")
			return err
		default:
			d.log.Error().Err(err).Int("frames", d.frames).Msg("session failed")
			return err
		}
	}
}
