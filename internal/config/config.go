package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/sysd/exercises/persistent-trie/internal/scenario"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to environment variable overrides, e.g. PTRIE_LOG_LEVEL
const EnvPrefix = "PTRIE"

// Log output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all configuration for the demo driver
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ScenarioConfig holds the steps to replay. An empty list selects the
// built-in reference scenario.
type ScenarioConfig struct {
	Steps []scenario.Step `mapstructure:"steps"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", FormatConsole)
}

// Steps returns the configured scenario, or the reference one if none is set
func (c *Config) Steps() []scenario.Step {
	if len(c.Scenario.Steps) == 0 {
		return scenario.Default()
	}
	return c.Scenario.Steps
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.Log.Validate()
}

// ZerologLevel parses the configured level. An empty level is rejected, since
// zerolog would silently accept it and drop every event.
func (c LogConfig) ZerologLevel() (zerolog.Level, error) {
	if c.Level == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: log level is empty", ErrInvalidConfig)
	}
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}
	return level, nil
}

// Validate checks the log level and format
func (c LogConfig) Validate() error {
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}

	switch c.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Format)
	}

	return nil
}
