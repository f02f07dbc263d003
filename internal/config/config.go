package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const envConfig = "POSPREVIEW_CONFIG"

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Content ContentConfig `toml:"content"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	View   string `toml:"view"`
	Format string `toml:"format"`
	Width  int    `toml:"width"`
	Pretty bool   `toml:"pretty"`
}

// ContentConfig points at an optional content file overriding the
// built-in records.
type ContentConfig struct {
	Path string `toml:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// Path returns the config file to use: explicit, then $POSPREVIEW_CONFIG,
// then ~/.config/pospreview/config.toml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "pospreview", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// POSPREVIEW_. A missing default file is fine; a missing file that was asked
// for by flag or env is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	explicit := path != "" || os.Getenv(envConfig) != ""
	file := Path(path)
	v.SetConfigFile(file)

	v.SetEnvPrefix("POSPREVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	return decode(v)
}

// Default returns the configuration used when no file or env sets a key.
// It panics if the built-in defaults do not decode.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	c, err := decode(v)
	if err != nil {
		panic(err)
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.view", "report")
	v.SetDefault("ui.format", "text")
	v.SetDefault("ui.width", 0)
	v.SetDefault("ui.pretty", false)
	v.SetDefault("content.path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
}

// Save writes cfg to path, creating the config directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.view", cfg.UI.View)
	v.Set("ui.format", cfg.UI.Format)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.pretty", cfg.UI.Pretty)
	v.Set("content.path", cfg.Content.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.pretty", cfg.Log.Pretty)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Write prints cfg as TOML.
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
