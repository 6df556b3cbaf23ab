package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName        = "slider"
	envPrefix      = "SLIDER"
	configFileName = "slider"
)

// Config holds runtime settings for the slider program.
type Config struct {
	Keys  KeysConfig `mapstructure:"keys"`
	Deck  DeckConfig `mapstructure:"deck"`
	Log   LogConfig  `mapstructure:"log"`
	Mouse bool       `mapstructure:"mouse"`
}

// KeysConfig designates the key codes for each action (Bubble Tea key strings).
type KeysConfig struct {
	Previous []string `mapstructure:"previous"`
	Next     []string `mapstructure:"next"`
	Quit     []string `mapstructure:"quit"`
	Modal    string   `mapstructure:"modal"`
}

// DeckConfig points at the deck file. Empty means the built-in deck.
type DeckConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig selects log level and sink.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("keys.previous", []string{"left"})
	v.SetDefault("keys.next", []string{"right"})
	v.SetDefault("keys.quit", []string{"q", "ctrl+c"})
	v.SetDefault("keys.modal", "o")
	v.SetDefault("deck.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("mouse", true)
}

// Load reads settings into a Config. When path is empty the standard
// locations are searched and a missing file is not an error; an explicit
// path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG_FILE")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks key bindings and log level.
func (c *Config) Validate() error {
	if len(c.Keys.Previous) == 0 || len(c.Keys.Next) == 0 {
		return fmt.Errorf("config: keys.previous and keys.next must not be empty")
	}
	prev := make(map[string]bool, len(c.Keys.Previous))
	for _, k := range c.Keys.Previous {
		prev[k] = true
	}
	for _, k := range c.Keys.Next {
		if prev[k] {
			return fmt.Errorf("config: key %q bound to both previous and next", k)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}
