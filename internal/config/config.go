// Package config provides configuration types, defaults, and loading for
// token-studio.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rcliao/token-studio/internal/export"
	"github.com/rcliao/token-studio/internal/log"
)

// EnvPrefix is the prefix of environment overrides, e.g. TOKEN_STUDIO_DB.
const EnvPrefix = "TOKEN_STUDIO"

// LocalPath is the project-local config file, checked first.
const LocalPath = ".token-studio/config.yaml"

// Config is the full configuration.
type Config struct {
	DB      string        `mapstructure:"db" yaml:"db"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// StorageConfig controls where and how much state is persisted.
type StorageConfig struct {
	Key        string `mapstructure:"key" yaml:"key"`
	QuotaBytes int64  `mapstructure:"quota_bytes" yaml:"quota_bytes"`
}

// ExportConfig holds defaults for the export command.
type ExportConfig struct {
	Prefix      string `mapstructure:"prefix" yaml:"prefix"`
	Dir         string `mapstructure:"dir" yaml:"dir"`
	Minify      bool   `mapstructure:"minify" yaml:"minify"`
	Metadata    bool   `mapstructure:"metadata" yaml:"metadata"`
	PaletteName string `mapstructure:"palette_name" yaml:"palette_name"`
}

// LogConfig sets the log level. Empty means warn, or debug when --debug is
// passed.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultDBPath is ~/.token-studio/tokens.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".token-studio", "tokens.db")
}

// UserPath is ~/.config/token-studio/config.yaml.
func UserPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "token-studio", "config.yaml")
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DB: DefaultDBPath(),
		Storage: StorageConfig{
			Key:        "design-token-studio",
			QuotaBytes: 5 << 20,
		},
		Export: ExportConfig{
			Dir:         ".",
			PaletteName: export.DefaultPaletteName,
		},
	}
}

// SetDefaults registers every key with v so env overrides and Unmarshal
// see them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("db", d.DB)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.quota_bytes", d.Storage.QuotaBytes)
	v.SetDefault("export.prefix", d.Export.Prefix)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.minify", d.Export.Minify)
	v.SetDefault("export.metadata", d.Export.Metadata)
	v.SetDefault("export.palette_name", d.Export.PaletteName)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration into v and decodes it. An explicit cfgFile
// must exist. Otherwise LocalPath is tried, then UserPath; neither being
// present is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(LocalPath):
		v.SetConfigFile(LocalPath)
	default:
		v.AddConfigPath(filepath.Dir(UserPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.DB) == "" {
		errs = append(errs, "db path is required")
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		errs = append(errs, "storage.key is required")
	}
	if c.Storage.QuotaBytes <= 0 {
		errs = append(errs, "storage.quota_bytes must be positive")
	}
	if c.Log.Level != "" {
		if _, ok := log.ParseLevel(c.Log.Level); !ok {
			errs = append(errs, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// LogLevel is the minimum level written to stderr: debug with --debug,
// log.level when set, warn otherwise.
func (c *Config) LogLevel() log.Level {
	if c.Debug {
		return log.LevelDebug
	}
	if c.Log.Level == "" {
		return log.LevelWarn
	}
	lvl, _ := log.ParseLevel(c.Log.Level)
	return lvl
}
