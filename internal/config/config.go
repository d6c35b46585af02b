package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"console/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Console struct {
		Capacity int           `yaml:"capacity"`
		Throttle time.Duration `yaml:"throttle"`
		Panes    int           `yaml:"panes"`
	}
	Socket struct {
		Path   string  `yaml:"path"`
		Buffer int     `yaml:"buffer"`
		Rate   float64 `yaml:"rate"`
		Burst  int     `yaml:"burst"`
	}
	Settings struct {
		Dir string `yaml:"dir"`
	}
	Sentry struct {
		DSN         string `yaml:"dsn"`
		Environment string `yaml:"environment"`
	}
	Version int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
	}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Console.Capacity = DefaultCapacity
	cfg.Console.Throttle = DefaultThrottle
	cfg.Console.Panes = DefaultPanes

	cfg.Socket.Path = filepath.Join(SocketDir, SocketName)
	cfg.Socket.Buffer = SocketBufferSize
	cfg.Socket.Rate = DefaultIngestRate
	cfg.Socket.Burst = DefaultIngestBurst

	cfg.Settings.Dir = defaultSettingsDir()

	return cfg
}

// Load reads .env and console.yaml from the working directory, applies
// CONSOLE_* environment overrides and validates the result
func Load() (*Config, error) {
	return LoadFrom(ConfigFile)
}

// LoadFrom is Load with an explicit config file path
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case !os.IsNotExist(err):
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("console.capacity", cfg.Console.Capacity)
	v.SetDefault("console.throttle", cfg.Console.Throttle)
	v.SetDefault("console.panes", cfg.Console.Panes)
	v.SetDefault("socket.path", cfg.Socket.Path)
	v.SetDefault("socket.buffer", cfg.Socket.Buffer)
	v.SetDefault("socket.rate", cfg.Socket.Rate)
	v.SetDefault("socket.burst", cfg.Socket.Burst)
	v.SetDefault("settings.dir", cfg.Settings.Dir)
	v.SetDefault("sentry.dsn", cfg.Sentry.DSN)
	v.SetDefault("sentry.environment", cfg.Sentry.Environment)
	v.SetDefault("version", cfg.Version)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateConsole(); err != nil {
		return err
	}

	return c.validateSocket()
}

// validateConsole validates buffer and redraw settings
func (c *Config) validateConsole() error {
	if c.Console.Capacity <= 0 {
		return errors.ErrInvalidCapacity
	}

	if c.Console.Throttle < 0 {
		return errors.ErrInvalidThrottle
	}

	if c.Console.Panes <= 0 || c.Console.Panes > MaxPanes {
		return fmt.Errorf("%w: %d (must be 1-%d)", errors.ErrInvalidPanes, c.Console.Panes, MaxPanes)
	}

	return nil
}

// validateSocket validates socket ingestion settings
func (c *Config) validateSocket() error {
	if c.Socket.Path == "" {
		return errors.ErrSocketPathRequired
	}

	if c.Socket.Buffer <= 0 {
		return errors.ErrInvalidSocketBuffer
	}

	if c.Socket.Rate <= 0 || c.Socket.Burst <= 0 {
		return errors.ErrInvalidIngestRate
	}

	return nil
}

// SettingsPath returns the path of the persisted settings file
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Settings.Dir, SettingsFileName)
}

// defaultSettingsDir resolves the per-user config directory, falling back to the temp dir
func defaultSettingsDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), SettingsDirName)
	}

	return filepath.Join(dir, SettingsDirName)
}
