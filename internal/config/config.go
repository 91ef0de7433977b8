package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"flatdb/internal/storage/filestore"
)

// EnvPrefix prefixes every environment override, e.g. FLATDB_DATA_DIR.
const EnvPrefix = "FLATDB"

// Config is everything the CLI needs to open a database.
type Config struct {
	DataDir     string    `mapstructure:"data_dir"`
	Format      string    `mapstructure:"format"`
	HistoryFile string    `mapstructure:"history_file"`
	Log         LogConfig `mapstructure:"log"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// New returns a viper instance with defaults and environment overrides
// set up. Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("data_dir", "./data")
	v.SetDefault("format", string(filestore.FormatCSV))
	v.SetDefault("history_file", "")
	v.SetDefault("log.level", "WARN")
	v.SetDefault("log.format", "text")

	// FLATDB_LOG_LEVEL -> log.level
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file into v and unmarshals the result.
// An empty configFile means no file.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("config: read %s: %w", configFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.DataDir, "history.txt")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the database cannot open with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config: data_dir must not be empty")
	}
	if _, err := filestore.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// StorageFormat returns the validated storage format.
func (c *Config) StorageFormat() filestore.Format {
	f, _ := filestore.ParseFormat(c.Format)
	return f
}
