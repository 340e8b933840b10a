package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger builds the process logger. Output goes to the configured file, or
// to fallback when no file is set; a nil fallback discards logs. The
// returned closer releases the file.
func (l LogConfig) Logger(fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if l.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(l.Level))
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("error parsing log level: %w", err)
		}
		level = parsed
	}

	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	switch {
	case l.File != "":
		f, err := os.OpenFile(l.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("error opening log file: %w", err)
		}
		out, closer = f, f
	case fallback != nil:
		out = fallback
	}

	if l.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: l.File != ""}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), closer, nil
}
