// Package config loads CLI settings from flags, PATTERNS_* environment variables
// and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is a prefix to all ENV variables used in this app
	EnvPrefix = "PATTERNS"

	// DefaultLogLevel is the slog level name used when nothing is configured
	DefaultLogLevel = "info"
	// DefaultLogFormat selects the text handler
	DefaultLogFormat = "text"
	// DefaultNoColor keeps colored console output on (subject to terminal detection)
	DefaultNoColor = false
	// DefaultSingletonCallers is how many goroutines race for the singleton demo
	DefaultSingletonCallers = 8
	// MaxSingletonCallers bounds the singleton demo
	MaxSingletonCallers = 10_000
)

// Keys, as used in the config file. Environment variables are EnvPrefix + "_" + upper(key).
const (
	KeyLogLevel         = "log_level"
	KeyLogFormat        = "log_format"
	KeyNoColor          = "no_color"
	KeySingletonCallers = "singleton_callers"
)

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"no-color":   KeyNoColor,
}

// ErrInvalidValue matches every InvalidValueError via errors.Is.
var ErrInvalidValue = errors.New("config: invalid value")

// InvalidValueError reports a setting that failed validation.
type InvalidValueError struct {
	Key   string
	Value string
}

// Error implements the error interface.
func (e InvalidValueError) Error() string {
	return "config: invalid value " + strconv.Quote(e.Value) + " for " + strconv.Quote(e.Key)
}

// Is reports whether target is ErrInvalidValue.
func (e InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// Config is the resolved CLI configuration.
type Config struct {
	LogLevel         string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat        string `mapstructure:"log_format" yaml:"log_format"`
	NoColor          bool   `mapstructure:"no_color" yaml:"no_color"`
	SingletonCallers int    `mapstructure:"singleton_callers" yaml:"singleton_callers"`
}

// Default returns the configuration used when no source overrides anything.
func Default() Config {
	return Config{
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
		NoColor:          DefaultNoColor,
		SingletonCallers: DefaultSingletonCallers,
	}
}

// Load resolves the configuration.
//
// path may be empty. flags may be nil; when given, the flags named in flagKeys
// override environment and file values if they were set on the command line.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	def := Default()
	bindEnvVariable(v, KeyLogLevel, def.LogLevel)
	bindEnvVariable(v, KeyLogFormat, def.LogFormat)
	bindEnvVariable(v, KeyNoColor, def.NoColor)
	bindEnvVariable(v, KeySingletonCallers, def.SingletonCallers)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.LogLevel = normalize(cfg.LogLevel)
	cfg.LogFormat = normalize(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field. Level and format names are matched ignoring case
// and surrounding whitespace.
func (c Config) Validate() error {
	switch normalize(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return InvalidValueError{Key: KeyLogLevel, Value: c.LogLevel}
	}
	switch normalize(c.LogFormat) {
	case "text", "json":
	default:
		return InvalidValueError{Key: KeyLogFormat, Value: c.LogFormat}
	}
	if c.SingletonCallers < 1 || c.SingletonCallers > MaxSingletonCallers {
		return InvalidValueError{Key: KeySingletonCallers, Value: strconv.Itoa(c.SingletonCallers)}
	}
	return nil
}

func normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func bindEnvVariable(v *viper.Viper, key string, fallback any) {
	v.SetDefault(key, fallback)
	// BindEnv only fails when called without a key.
	_ = v.BindEnv(key)
}
