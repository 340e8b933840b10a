package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/game"
	"github.com/tomz197/rockfall/internal/input"
)

// Terminal describes an ANSI terminal: a local tty or an SSH channel.
type Terminal struct {
	In   io.Reader
	Out  io.Writer
	Size draw.TermSizeFunc
	// Idle enables the idle warning and timeout from the loop settings.
	Idle bool
}

// RunTerminal plays g on an ANSI terminal until the player quits, the
// session idles out or ctx is cancelled. The terminal must already be in
// raw mode.
func RunTerminal(ctx context.Context, t Terminal, g *game.Game, s *config.Settings, log zerolog.Logger) error {
	draw.HideCursor(t.Out)
	draw.ClearScreen(t.Out)
	defer func() {
		draw.ClearScreen(t.Out)
		draw.ShowCursor(t.Out)
	}()

	canvas := draw.NewCanvas(t.Out, t.Size)
	br, ok := t.In.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(t.In)
	}
	stream := input.StartStream(br, s.Input.HoldWindow)
	return run(ctx, g, stream, draw.NewPageBuffer(canvas), s, t.Idle, log)
}

// RunTcell plays g on a tcell screen. The caller owns the screen and must
// have initialised it.
func RunTcell(ctx context.Context, screen tcell.Screen, g *game.Game, s *config.Settings, log zerolog.Logger) error {
	screen.HideCursor()
	screen.Clear()
	src := input.StartTcell(screen, s.Input.HoldWindow)
	return run(ctx, g, src, draw.NewPageBuffer(draw.NewTcellPresenter(screen)), s, false, log)
}

func run(ctx context.Context, g *game.Game, src input.Source, display draw.Display, s *config.Settings, idle bool, log zerolog.Logger) error {
	frame := s.Loop.FrameTime()
	ticker := NewTicker(frame)
	defer ticker.Stop()

	opts := Options{
		Game:      g,
		Input:     src,
		Display:   display,
		VBlank:    ticker,
		FrameTime: frame,
		Log:       log,
	}
	if idle {
		opts.IdleWarn = s.Loop.IdleWarn
		opts.IdleTimeout = s.Loop.IdleTimeout
	}
	if err := NewDriver(opts).Run(ctx); err != nil {
		return fmt.Errorf("error running game loop: %w", err)
	}
	return nil
}
