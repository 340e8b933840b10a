package loop

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/game"
	"github.com/tomz197/rockfall/internal/input"
)

// script replays one held set per Poll, then reports quit.
type script struct {
	frames []input.Button
	i      int
	// hold keeps returning 0 instead of quitting once frames are used up.
	hold bool
}

func (s *script) Poll() (input.Button, bool) {
	if s.i >= len(s.frames) {
		return 0, !s.hold
	}
	b := s.frames[s.i]
	s.i++
	return b, false
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

type rig struct {
	g     *game.Game
	pb    *draw.PageBuffer
	src   *script
	clk   *clock
	calls []string
	logs  bytes.Buffer
	d     *Driver
}

func newRig(t *testing.T, opts Options) *rig {
	t.Helper()
	r := &rig{
		g:   game.New(game.Options{}),
		src: &script{},
		clk: &clock{t: time.Unix(1000, 0)},
	}
	r.pb = draw.NewPageBuffer(draw.PresenterFunc(func(draw.Frame) error {
		r.calls = append(r.calls, "present")
		return nil
	}))
	opts.Game = r.g
	opts.Input = r.src
	opts.Display = r.pb
	opts.VBlank = VBlankFunc(func(ctx context.Context) error {
		r.calls = append(r.calls, "vblank")
		r.clk.advance(time.Second / 60)
		return ctx.Err()
	})
	opts.Now = r.clk.now
	opts.Log = zerolog.New(&r.logs).Level(zerolog.DebugLevel)
	r.d = NewDriver(opts)
	return r
}

func TestDriver_FrameOrder(t *testing.T) {
	r := newRig(t, Options{})
	r.src.frames = []input.Button{input.ButtonStart, 0}

	require.NoError(t, r.d.Step(context.Background()))
	assert.Equal(t, game.KindGame, r.g.State().Kind, "update runs before the vblank wait")
	require.NoError(t, r.d.Step(context.Background()))

	assert.Equal(t, []string{"vblank", "present", "vblank", "present"}, r.calls)
	assert.Equal(t, 2, r.d.Frames())
	assert.Equal(t, 2, r.pb.Flips())
	assert.Equal(t, 1, r.g.Session().Frame)
	assert.Contains(t, r.logs.String(), `"to":"game"`)
}

func TestDriver_QuitEndsRunCleanly(t *testing.T) {
	r := newRig(t, Options{})
	r.src.frames = []input.Button{0, 0, 0}

	assert.ErrorIs(t, (&Driver{in: &script{}}).Step(context.Background()), ErrQuit)
	require.NoError(t, r.d.Run(context.Background()))
	assert.Equal(t, 3, r.d.Frames())
	assert.Contains(t, r.logs.String(), "session ended")
}

func TestDriver_CancelEndsRunCleanly(t *testing.T) {
	r := newRig(t, Options{})
	r.src.hold = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, r.d.Run(ctx))
	assert.Zero(t, r.d.Frames())
}

func TestDriver_DisplayErrorIsReturned(t *testing.T) {
	r := newRig(t, Options{})
	r.src.hold = true
	boom := errors.New("broken pipe")
	r.d.display = draw.NewPageBuffer(draw.PresenterFunc(func(draw.Frame) error { return boom }))

	err := r.d.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, r.logs.String(), "session failed")
}

func TestDriver_LogsOverrun(t *testing.T) {
	r := newRig(t, Options{FrameTime: 10 * time.Millisecond})
	r.src.hold = true
	r.d.display = draw.NewPageBuffer(draw.PresenterFunc(func(draw.Frame) error {
		r.clk.advance(25 * time.Millisecond)
		return nil
	}))

	require.NoError(t, r.d.Step(context.Background()))
	assert.Contains(t, r.logs.String(), "frame overrun")
}

func TestDriver_IdleWarningAndTimeout(t *testing.T) {
	r := newRig(t, Options{IdleWarn: time.Second, IdleTimeout: 2 * time.Second})
	r.src.hold = true
	ctx := context.Background()

	require.NoError(t, r.d.Step(ctx))
	assert.Equal(t, draw.Black, r.pb.VisibleAt(warnBoxX, warnBoxY))

	r.clk.advance(time.Second)
	require.NoError(t, r.d.Step(ctx))
	assert.Equal(t, draw.White, r.pb.VisibleAt(warnBoxX, warnBoxY), "warning box is shown")

	// any input clears the warning and the start screen is redrawn
	r.src.frames = append(r.src.frames, input.ButtonDown)
	require.NoError(t, r.d.Step(ctx))
	require.NoError(t, r.d.Step(ctx))
	assert.Equal(t, draw.Black, r.pb.VisibleAt(warnBoxX, warnBoxY))
	assert.Equal(t, draw.Black, r.pb.BackAt(warnBoxX, warnBoxY))

	r.clk.advance(3 * time.Second)
	assert.ErrorIs(t, r.d.Run(ctx), ErrIdle)
	assert.Contains(t, r.logs.String(), "session idled out")
}

func TestIdleTimer(t *testing.T) {
	start := time.Unix(0, 0)
	it := idleTimer{warn: 10 * time.Second, timeout: 20 * time.Second, last: start}

	phase, cleared := it.observe(0, start.Add(5*time.Second))
	assert.Equal(t, idleActive, phase)
	assert.False(t, cleared)

	phase, _ = it.observe(0, start.Add(12*time.Second))
	assert.Equal(t, idleWarning, phase)
	assert.Equal(t, 8*time.Second, it.remaining(start.Add(12*time.Second)))

	phase, cleared = it.observe(input.ButtonA, start.Add(13*time.Second))
	assert.Equal(t, idleActive, phase)
	assert.True(t, cleared)

	phase, _ = it.observe(0, start.Add(33*time.Second))
	assert.Equal(t, idleExpired, phase)

	off := idleTimer{last: start}
	phase, _ = off.observe(0, start.Add(time.Hour))
	assert.Equal(t, idleActive, phase, "zero durations disable the timer")
	assert.Zero(t, off.remaining(start))
}

func TestTicker_WaitHonoursContext(t *testing.T) {
	tk := NewTicker(time.Hour)
	defer tk.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, tk.Wait(ctx), context.Canceled)

	fast := NewTicker(time.Millisecond)
	defer fast.Stop()
	assert.NoError(t, fast.Wait(context.Background()))
}
