package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/report"
)

// configFileNames are looked up in the working directory when no file is given.
var configFileNames = []string{"simgraph.yaml", "simgraph.yml"}

// findConfigFile returns explicit if set, else the first default file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"input":      DefaultInput,
		"mode":       DefaultMode,
		"prompt":     false,
		"label":      DefaultLabel,
		"threshold":  DefaultThreshold,
		"sample":     DefaultSample,
		"source":     0,
		"workers":    0,
		"output":     DefaultOutput,
		"plot":       "",
		"log_level":  DefaultLogLevel,
		"delimiter":  DefaultDelimiter,
		"components": DefaultComponents,
		"hops":       DefaultHops,
	}
}

// Load builds a Config from defaults, the config file, the environment and
// flags, in increasing precedence. cfgFile may be empty; flags may be nil.
// Only flags marked Changed override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path := findConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// 3. Environment: SIMGRAPH_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	// Subsets default per selection so an index-only subset in the file
	// does not inherit the default column names.
	std := dataset.DefaultSubsets()
	if cfg.Subsets.Eating.Empty() {
		cfg.Subsets.Eating = std.Eating
	}
	if cfg.Subsets.Physical.Empty() {
		cfg.Subsets.Physical = std.Physical
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks ranges and formats. Mode is never rejected: unknown
// values mean all.
func (c *Config) Validate() error {
	switch {
	case c.Threshold < 0:
		return fmt.Errorf("%w: threshold %v is negative", ErrInvalidConfig, c.Threshold)
	case c.Sample < 1:
		return fmt.Errorf("%w: sample %d must be at least 1", ErrInvalidConfig, c.Sample)
	case c.Source < 0:
		return fmt.Errorf("%w: source %d is negative", ErrInvalidConfig, c.Source)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	case c.Components < 0:
		return fmt.Errorf("%w: components %d is negative", ErrInvalidConfig, c.Components)
	case c.Hops < 0:
		return fmt.Errorf("%w: hops %d is negative", ErrInvalidConfig, c.Hops)
	case utf8.RuneCountInString(c.Delimiter) != 1:
		return fmt.Errorf("%w: delimiter %q must be one character", ErrInvalidConfig, c.Delimiter)
	}
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// ModeValue parses Mode, falling back to dataset.ModeAll.
func (c *Config) ModeValue() dataset.Mode { return dataset.ParseMode(c.Mode) }

// DelimiterRune returns the field separator.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)

	return r
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}
