package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"artifact-pruner/internal/core/domain"
)

type Config struct {
	Prune  PruneConfig
	Logger LoggerConfig
}

type PruneConfig struct {
	Target    string
	Marker    string
	Extension string
	Tolerance time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

const (
	DefaultTarget    = "./target"
	DefaultMarker    = "deps"
	DefaultExtension = "rlib"
	DefaultTolerance = 2 * time.Hour
)

// flagKeys maps command-line flags to their configuration keys.
var flagKeys = map[string]string{
	"target":     "PRUNE_TARGET",
	"marker":     "PRUNE_MARKER",
	"extension":  "PRUNE_EXTENSION",
	"tolerance":  "PRUNE_TOLERANCE",
	"log-level":  "LOGGER_LEVEL",
	"log-format": "LOGGER_FORMAT",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("target", DefaultTarget, "root of the build output tree to scan")
	fs.String("marker", DefaultMarker, "name of the directories whose artifacts are pruned")
	fs.String("extension", DefaultExtension, "file extension of library artifacts")
	fs.Duration("tolerance", DefaultTolerance, "how far a duplicate may lag the newest build before its library is pruned (0 prunes all but the newest)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text or json)")
}

// Load resolves the configuration from flags, environment, an optional .env
// file and defaults, in that order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("PRUNE_TARGET", DefaultTarget)
	v.SetDefault("PRUNE_MARKER", DefaultMarker)
	v.SetDefault("PRUNE_EXTENSION", DefaultExtension)
	v.SetDefault("PRUNE_TOLERANCE", DefaultTolerance.String())
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	// Flags
	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	tolerance, err := time.ParseDuration(strings.TrimSpace(v.GetString("PRUNE_TOLERANCE")))
	if err != nil {
		return nil, fmt.Errorf("parse PRUNE_TOLERANCE: %w", err)
	}

	cfg := &Config{
		Prune: PruneConfig{
			Target:    v.GetString("PRUNE_TARGET"),
			Marker:    strings.TrimSpace(v.GetString("PRUNE_MARKER")),
			Extension: strings.TrimPrefix(strings.TrimSpace(v.GetString("PRUNE_EXTENSION")), "."),
			Tolerance: tolerance,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Prune.Tolerance < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidTolerance, c.Prune.Tolerance)
	}
	m := c.Prune.Marker
	if m == "" || m == "." || m == ".." || strings.ContainsAny(m, `/\`) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidMarker, m)
	}
	if c.Prune.Extension == "" {
		return domain.ErrInvalidExtension
	}
	return nil
}
