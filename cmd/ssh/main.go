package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/rs/zerolog"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/game"
	"github.com/tomz197/rockfall/internal/loop"
	"github.com/tomz197/rockfall/internal/sfx"
)

const shutdownTimeout = 5 * time.Second

func main() {
	settings, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	stderr := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	log, closer, err := settings.Log.Logger(stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := serve(settings, log); err != nil {
		log.Error().Err(err).Msg("server error")
		closer.Close()
		os.Exit(1)
	}
}

func serve(settings *config.Settings, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := &arcade{
		ctx:      ctx,
		settings: settings,
		log:      log,
		scores:   &game.SharedScores{},
	}

	workingDir, err := os.Getwd()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get working directory")
	}
	log.Info().
		Str("host", settings.SSH.Host).
		Str("port", settings.SSH.Port).
		Str("hostKeyPath", settings.SSH.HostKeyPath).
		Str("workingDir", workingDir).
		Msg("ssh config")

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSH.Host, settings.SSH.Port)),
		wish.WithMiddleware(
			a.middleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	log.Info().Str("addr", s.Addr).Msg("starting ssh server")
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("error serving ssh: %w", err)
	}
	log.Info().Msg("shutting down server")

	// running games see the cancellation and end their sessions
	cancel()
	a.wg.Wait()

	sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer scancel()
	if err := s.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// arcade runs one game per SSH session. Sessions share the high score.
type arcade struct {
	ctx      context.Context
	settings *config.Settings
	log      zerolog.Logger
	scores   *game.SharedScores
	wg       sync.WaitGroup
}

func (a *arcade) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}
		a.wg.Add(1)
		defer a.wg.Done()

		log := a.log.With().
			Str("user", sess.User()).
			Str("remote", sess.RemoteAddr().String()).
			Logger()
		log.Info().Str("term", pty.Term).Int("width", pty.Window.Width).Int("height", pty.Window.Height).Msg("new game session")

		size := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				size.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(a.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		g := game.New(game.Options{
			TargetScore: a.settings.Game.TargetScore,
			DebugCheats: a.settings.Game.DebugCheats,
			Effects:     sfx.Logger{Log: log},
			Scores:      a.scores,
		})
		t := loop.Terminal{In: sess, Out: sess, Size: size.getSize, Idle: true}
		switch err := loop.RunTerminal(ctx, t, g, a.settings, log); {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
		case err != nil:
			log.Error().Err(err).Msg("game error")
		}
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
