// Package config holds the settings for running the interpreter, gathered
// from an optional config file, TEXTQUEST_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable that sets a config
// key, e.g. TEXTQUEST_WORLD or TEXTQUEST_LOG_LEVEL.
const EnvPrefix = "TEXTQUEST"

// Config is the configuration of one run of the interpreter.
type Config struct {
	// WorldFile is the path to the TQW file to load.
	WorldFile string `mapstructure:"world"`

	// Width is the column width that output is wrapped to.
	Width int `mapstructure:"width"`

	// Direct reads input without readline, even on a terminal.
	Direct bool `mapstructure:"direct"`

	// HistoryFile is where interactive command history is kept. It is not
	// kept if empty.
	HistoryFile string `mapstructure:"history"`

	// LogLevel is the minimum log level: "debug", "info", "warn", "error".
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is the log output format: "json" or "console".
	LogFormat string `mapstructure:"log_format"`

	// LogFile is where logs are written. If empty, nothing is logged.
	LogFile string `mapstructure:"log_file"`
}

// Validate checks every setting and reports all violations at once.
func (c Config) Validate() error {
	var errs []string

	if c.WorldFile == "" {
		errs = append(errs, "world must not be empty")
	}
	if c.Width < 2 {
		errs = append(errs, fmt.Sprintf("width must be at least 2, got %d", c.Width))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level must be one of [debug, info, warn, error], got %q", c.LogLevel))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.LogFormat] {
		errs = append(errs, fmt.Sprintf("log_format must be one of [json, console], got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load builds a Config from flags, the environment and, if configFile is not
// empty, a config file in any format viper reads. flags may be nil. Only
// flags that were actually set override the other sources; flag names use
// dashes where config keys use underscores.
func Load(configFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !isKnownKey(key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("binding flag --%s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return Config{}, bindErr
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var knownKeys = []string{"world", "width", "direct", "history", "log_level", "log_format", "log_file"}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("world", "world.tqw")
	v.SetDefault("width", 70)
	v.SetDefault("direct", false)
	v.SetDefault("history", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("log_file", "")
}
