package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/patterns/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", config.DefaultLogLevel, "")
	fs.String("log-format", config.DefaultLogFormat, "")
	fs.Bool("no-color", config.DefaultNoColor, "")
	return fs
}

// TestLoad_Defaults verifies an empty environment yields Default().
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// TestLoad_Env verifies PATTERNS_* variables override defaults.
func TestLoad_Env(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "debug")
	t.Setenv("PATTERNS_LOG_FORMAT", "json")
	t.Setenv("PATTERNS_NO_COLOR", "true")
	t.Setenv("PATTERNS_SINGLETON_CALLERS", "64")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		LogLevel:         "debug",
		LogFormat:        "json",
		NoColor:          true,
		SingletonCallers: 64,
	}, cfg)
}

// TestLoad_File verifies YAML file values are read and env still wins over the file.
func TestLoad_File(t *testing.T) {
	path := writeFile(t, "patterns.yaml", "log_level: warn\nsingleton_callers: 3\n")
	t.Setenv("PATTERNS_SINGLETON_CALLERS", "5")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, 5, cfg.SingletonCallers)
}

// TestLoad_MissingFile verifies a missing config file is an error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

// TestLoad_FlagsOverride verifies changed flags beat env; unchanged flags do not.
func TestLoad_FlagsOverride(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "warn")
	t.Setenv("PATTERNS_LOG_FORMAT", "json")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--log-level=error"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

// TestLoad_Invalid verifies validation failures are typed.
func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		key  string
	}{
		{name: "level", env: map[string]string{"PATTERNS_LOG_LEVEL": "loud"}, key: config.KeyLogLevel},
		{name: "format", env: map[string]string{"PATTERNS_LOG_FORMAT": "xml"}, key: config.KeyLogFormat},
		{name: "callers zero", env: map[string]string{"PATTERNS_SINGLETON_CALLERS": "0"}, key: config.KeySingletonCallers},
		{name: "callers huge", env: map[string]string{"PATTERNS_SINGLETON_CALLERS": "1000000"}, key: config.KeySingletonCallers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("", nil)
			require.ErrorIs(t, err, config.ErrInvalidValue)

			var ive config.InvalidValueError
			require.ErrorAs(t, err, &ive)
			assert.Equal(t, tc.key, ive.Key)
		})
	}
}

// TestValidate_Default verifies the defaults are valid.
func TestValidate_Default(t *testing.T) {
	t.Parallel()

	require.NoError(t, config.Default().Validate())
}

// TestLoad_NamesIgnoreCase verifies upper-case and padded level/format names are
// accepted and normalized.
func TestLoad_NamesIgnoreCase(t *testing.T) {
	t.Setenv("PATTERNS_LOG_LEVEL", "DEBUG")
	t.Setenv("PATTERNS_LOG_FORMAT", " Json ")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

// TestValidate_NamesIgnoreCase verifies Validate accepts mixed-case names on its own.
func TestValidate_NamesIgnoreCase(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.LogLevel = "Warn"
	cfg.LogFormat = "TEXT"
	require.NoError(t, cfg.Validate())
}
