package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Tab bar styles.
const (
	TabStyleAuto    = "auto"
	TabStyleNative  = "native"
	TabStyleButtons = "buttons"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds the rotating log file settings.
type LogConfig struct {
	Path       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	// TabStyle picks the tab bar: native DumbTab, push buttons, or auto
	// (native when the host supports it).
	TabStyle   string `mapstructure:"tab_style"`
	GlyphArrow string `mapstructure:"glyph_arrow"`
	// Keys overrides the keys of host actions, e.g. abort = ["ctrl+q"].
	Keys map[string][]string `mapstructure:"keys"`
}

// NativeTabs reports whether the host should offer the DumbTab widget.
func (u UIConfig) NativeTabs() bool {
	return strings.ToLower(strings.TrimSpace(u.TabStyle)) != TabStyleButtons
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "cwmkit")
}

// Load reads configuration from file and env. Env var overrides use prefix CWMKIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "cwmkit.db"))
	v.SetDefault("log.path", filepath.Join(dataDir(), "cwmkit.log"))
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("ui.tab_style", TabStyleAuto)
	v.SetDefault("ui.glyph_arrow", "►")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CWMKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cwmkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CWMKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(c.UI.TabStyle)) {
	case TabStyleAuto, TabStyleNative, TabStyleButtons:
	default:
		return Config{}, fmt.Errorf("ui.tab_style %q: want auto, native or buttons", c.UI.TabStyle)
	}
	return c, nil
}

// Path returns the file Save writes: CWMKIT_CONFIG when set, else the
// default location.
func Path() string {
	if p := os.Getenv("CWMKIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "cwmkit", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.Set("log.max_backups", cfg.Log.MaxBackups)
	v.Set("ui.tab_style", cfg.UI.TabStyle)
	v.Set("ui.glyph_arrow", cfg.UI.GlyphArrow)
	if len(cfg.UI.Keys) > 0 {
		v.Set("ui.keys", cfg.UI.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
