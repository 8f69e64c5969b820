package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Store  StoreConfig
	Export ExportConfig
	UI     UIConfig
}

// StoreConfig holds sqlite settings. An empty path disables the store;
// measurements then live only in memory until exported.
type StoreConfig struct {
	Path string
}

// ExportConfig holds export settings.
type ExportConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxCellWidth  int `mapstructure:"max_cell_width"`
	MaxCellHeight int `mapstructure:"max_cell_height"`
}

// Load reads configuration from file and env. Env var overrides use prefix ROWTALLY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("store.path", "")
	v.SetDefault("export.path", "measurements.csv")
	v.SetDefault("ui.max_cell_width", 40)
	v.SetDefault("ui.max_cell_height", 6)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROWTALLY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rowtally"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROWTALLY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("ROWTALLY_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "rowtally", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.path", cfg.Store.Path)
	v.Set("export.path", cfg.Export.Path)
	v.Set("ui.max_cell_width", cfg.UI.MaxCellWidth)
	v.Set("ui.max_cell_height", cfg.UI.MaxCellHeight)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
