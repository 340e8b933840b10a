package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/game"
	"github.com/tomz197/rockfall/internal/loop"
	"github.com/tomz197/rockfall/internal/sfx"
)

const audioGain = 0.6

func main() {
	path := os.Getenv(config.EnvPrefix + "_CONFIG")
	if path == "" && len(os.Args) > 1 {
		path = os.Args[1]
	}
	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// the terminal is the display, so logs only go to a file if one is set
	log, closer, err := settings.Log.Logger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(settings, log); err != nil {
		log.Error().Err(err).Msg("game error")
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(settings *config.Settings, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fx, closeFx := openEffects(settings, log)
	defer closeFx()

	g := game.New(game.Options{
		TargetScore: settings.Game.TargetScore,
		DebugCheats: settings.Game.DebugCheats,
		Effects:     fx,
	})

	switch settings.Display {
	case config.DisplayTcell:
		return runTcell(ctx, g, settings, log)
	default:
		return runANSI(ctx, g, settings, log)
	}
}

// openEffects opens the audio device. Without one the game stays silent and
// logs effects instead.
func openEffects(settings *config.Settings, log zerolog.Logger) (sfx.Player, func()) {
	if !settings.Audio.Enabled {
		return sfx.Nop{}, func() {}
	}
	sp, err := sfx.OpenSpeaker(audioGain)
	if err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		return sfx.Logger{Log: log}, func() {}
	}
	return sp, sp.Close
}

func runANSI(ctx context.Context, g *game.Game, settings *config.Settings, log zerolog.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	t := loop.Terminal{
		In:   bufio.NewReader(os.Stdin),
		Out:  os.Stdout,
		Size: draw.DefaultTermSizeFunc,
	}
	return loop.RunTerminal(ctx, t, g, settings, log)
}

func runTcell(ctx context.Context, g *game.Game, settings *config.Settings, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	return loop.RunTcell(ctx, screen, g, settings, log)
}
