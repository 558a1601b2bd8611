package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		WorldFile: "world.tqw",
		Width:     70,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tqi", pflag.ContinueOnError)
	flags.StringP("world", "w", "world.tqw", "")
	flags.Int("width", 70, "")
	flags.Bool("direct", false, "")
	flags.String("log-level", "info", "")
	flags.String("version", "", "")
	return flags
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	cfg := Config{Width: 1, LogLevel: "trace", LogFormat: "xml"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "world must not be empty")
	assert.Contains(t, err.Error(), "width must be at least 2")
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "log_format")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("TEXTQUEST_WORLD", "castle.tqw")
	t.Setenv("TEXTQUEST_WIDTH", "40")
	t.Setenv("TEXTQUEST_LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "castle.tqw", cfg.WorldFile)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TEXTQUEST_WORLD", "castle.tqw")
	t.Setenv("TEXTQUEST_WIDTH", "40")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"-w", "cave.tqw", "--log-level", "warn", "--version", "x"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "cave.tqw", cfg.WorldFile)
	assert.Equal(t, 40, cfg.Width, "unset flag must not override env")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textquest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world: garden.tqw\nwidth: 50\nlog_format: json\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "garden.tqw", cfg.WorldFile)
	assert.Equal(t, 50, cfg.Width)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("TEXTQUEST_WIDTH", "0")

	_, err := Load("", nil)
	assert.Error(t, err)
}

func TestProperty_WidthValidation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := validConfig()
		cfg.Width = rapid.IntRange(-100, 300).Draw(t, "width")

		err := cfg.Validate()
		if cfg.Width >= 2 && err != nil {
			t.Fatalf("width %d rejected: %v", cfg.Width, err)
		}
		if cfg.Width < 2 && err == nil {
			t.Fatalf("width %d accepted", cfg.Width)
		}
	})
}
