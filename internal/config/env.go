package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. ROCKFALL_LOG_LEVEL.
const EnvPrefix = "ROCKFALL"

// Display front ends for local play.
const (
	DisplayANSI  = "ansi"
	DisplayTcell = "tcell"
)

// Settings holds runtime configuration for the game binaries.
type Settings struct {
	Display string      `mapstructure:"display"`
	Audio   AudioConfig `mapstructure:"audio"`
	Input   InputConfig `mapstructure:"input"`
	Loop    LoopConfig  `mapstructure:"loop"`
	Game    GameConfig  `mapstructure:"game"`
	SSH     SSHConfig   `mapstructure:"ssh"`
	Log     LogConfig   `mapstructure:"log"`
}

// AudioConfig toggles the synthesized sound effects.
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// InputConfig controls terminal key decoding.
type InputConfig struct {
	HoldWindow time.Duration `mapstructure:"holdWindow"`
}

// LoopConfig controls the frame driver.
type LoopConfig struct {
	FPS         int           `mapstructure:"fps"`
	IdleWarn    time.Duration `mapstructure:"idleWarn"`
	IdleTimeout time.Duration `mapstructure:"idleTimeout"`
}

// GameConfig holds the session rules that may be changed without a rebuild.
type GameConfig struct {
	TargetScore int  `mapstructure:"targetScore"`
	DebugCheats bool `mapstructure:"debugCheats"`
}

// SSHConfig configures the remote play server.
type SSHConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKeyPath string `mapstructure:"hostKeyPath"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Pretty bool   `mapstructure:"pretty"`
}

// FrameTime returns the frame period for the configured rate.
func (l LoopConfig) FrameTime() time.Duration {
	if l.FPS <= 0 {
		return TargetFrameTime
	}
	return time.Second / time.Duration(l.FPS)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display", DisplayANSI)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("input.holdWindow", "150ms")
	v.SetDefault("loop.fps", TargetFPS)
	v.SetDefault("loop.idleWarn", DefaultIdleWarn.String())
	v.SetDefault("loop.idleTimeout", DefaultIdleTimeout.String())
	v.SetDefault("game.targetScore", DefaultTargetScore)
	v.SetDefault("game.debugCheats", true)
	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", "2222")
	v.SetDefault("ssh.hostKeyPath", "/app/keys/host_key")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.pretty", false)
}

// Load builds Settings from defaults, an optional config file and
// ROCKFALL_* environment variables, in increasing order of precedence.
// An empty path skips the config file.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	var errs []error
	switch s.Display {
	case DisplayANSI, DisplayTcell:
	default:
		errs = append(errs, fmt.Errorf("unknown display %q", s.Display))
	}
	if s.Loop.FPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.fps must be positive, got %d", s.Loop.FPS))
	}
	if s.Game.TargetScore <= 0 {
		errs = append(errs, fmt.Errorf("game.targetScore must be positive, got %d", s.Game.TargetScore))
	}
	if s.Input.HoldWindow <= 0 {
		errs = append(errs, errors.New("input.holdWindow must be positive"))
	}
	return errors.Join(errs...)
}
