// Package config resolves the command line settings from defaults, an optional
// YAML file, FUNDAMENTOS_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/robbyt/go-fundamentos/engines/types"
	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "FUNDAMENTOS"
	EnvConfigFile = EnvPrefix + "_CONFIG"

	KeyEngine    = "engine"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	// Engine restricts the run to one engine. Empty means the default engine
	// for run and show, and every engine for verify.
	Engine string    `mapstructure:"engine"`
	Log    LogConfig `mapstructure:"log"`
}

// LogConfig controls the diagnostics written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment lookups applied.
// Flags are bound on top of it by the caller.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyEngine, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or the file named by FUNDAMENTOS_CONFIG
// when path is empty, and unmarshals the merged settings.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the engine name, log level and log format.
func (c Config) Validate() error {
	if c.Engine != "" {
		if _, err := types.Parse(c.Engine); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// EngineOrDefault returns the configured engine, or Starlark when none is set.
func (c Config) EngineOrDefault() (types.Type, error) {
	if c.Engine == "" {
		return types.Starlark, nil
	}
	return types.Parse(c.Engine)
}

// Engines returns the configured engine, or every engine when none is set.
func (c Config) Engines() ([]types.Type, error) {
	if c.Engine == "" {
		return types.All(), nil
	}
	t, err := types.Parse(c.Engine)
	if err != nil {
		return nil, err
	}
	return []types.Type{t}, nil
}

// SlogLevel parses the level name ("debug", "info", "warn", "error").
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// Handler builds the slog handler writing to w.
func (l LogConfig) Handler(w io.Writer) (slog.Handler, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(l.Format, "json") {
		return slog.NewJSONHandler(w, opts), nil
	}
	return slog.NewTextHandler(w, opts), nil
}
