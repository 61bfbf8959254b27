// This file maps the config file and CLI context to the Config struct.

package launcher

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"
)

// Config aggregates every setting the launcher needs.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Decode  DecodeConfig  `yaml:"decode"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
	SentryDSN string `yaml:"sentryDsn"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type DecodeConfig struct {
	Kind    string `yaml:"kind"`
	Workers int    `yaml:"workers"`
}

var (
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"json", "yaml", "cbor"}
	decodeKinds   = []string{"auto", "puzzle", "solution"}
)

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
			SentryDSN: d.Logging.SentryDSN,
		},
		Output: OutputConfig{
			Format: d.Output.Format,
			Path:   d.Output.Path,
		},
		Decode: DecodeConfig{
			Kind:    d.Decode.Kind,
			Workers: d.Decode.Workers,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI overrides,
// and validates the result.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(file, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	applyCLIOverrides(ctx, &cfg)

	return cfg, cfg.validate()
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// an empty file leaves the defaults untouched
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("sentry.dsn") {
		cfg.Logging.SentryDSN = ctx.String("sentry.dsn")
	}

	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}

	if ctx.IsSet("kind") {
		cfg.Decode.Kind = ctx.String("kind")
	}
	if ctx.IsSet("workers") {
		cfg.Decode.Workers = ctx.Int("workers")
	}
}

func (c Config) validate() error {
	if !oneOf(c.Logging.Format, logFormats) {
		return fmt.Errorf("log.format %q: want one of %s", c.Logging.Format, strings.Join(logFormats, ", "))
	}
	if c.Logging.Verbosity < 0 || c.Logging.Verbosity > 5 {
		return fmt.Errorf("log.verbosity %d: want 0..5", c.Logging.Verbosity)
	}
	if !oneOf(c.Output.Format, outputFormats) {
		return fmt.Errorf("format %q: want one of %s", c.Output.Format, strings.Join(outputFormats, ", "))
	}
	if !oneOf(c.Decode.Kind, decodeKinds) {
		return fmt.Errorf("kind %q: want one of %s", c.Decode.Kind, strings.Join(decodeKinds, ", "))
	}
	if c.Decode.Workers < 1 {
		return fmt.Errorf("workers %d: want at least 1", c.Decode.Workers)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
