// Package config loads shade configuration from file, environment, and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains all tunable settings for the theme engine.
type Config struct {
	// ConfigDir is the cruzalex configuration root (themes, current link, hooks).
	ConfigDir string `mapstructure:"config_dir"`

	// ThemesRoot is the directory containing one subdirectory per theme.
	ThemesRoot string `mapstructure:"themes_root"`

	// HooksDir holds user hook scripts named with a two-digit order prefix.
	HooksDir string `mapstructure:"hooks_dir"`

	// StateDir is where durable theme state and the switch journal live.
	StateDir string `mapstructure:"state_dir"`

	// HookTimeout bounds a single hook invocation, reloads included.
	HookTimeout time.Duration `mapstructure:"hook_timeout"`

	// ReloadTimeout bounds an individual external reload command.
	ReloadTimeout time.Duration `mapstructure:"reload_timeout"`

	// KillGrace is how long a timed-out external command gets before SIGKILL.
	KillGrace time.Duration `mapstructure:"kill_grace"`

	// RendererName is the wallpaper renderer command; instances of it are
	// found for replacement by matching this as process name.
	RendererName string `mapstructure:"renderer_name"`

	// LogLevel sets the zerolog level (trace/debug/info/warn/error).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the documented default configuration.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	configDir := filepath.Join(home, ".config", "cruzalex")
	stateDir := filepath.Join(home, ".local", "state", "cruzalex")
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		stateDir = filepath.Join(xdg, "cruzalex")
	}

	return Config{
		ConfigDir:     configDir,
		ThemesRoot:    filepath.Join(configDir, "themes"),
		HooksDir:      filepath.Join(configDir, "hooks"),
		StateDir:      stateDir,
		HookTimeout:   10 * time.Second,
		ReloadTimeout: 2 * time.Second,
		KillGrace:     time.Second,
		RendererName:  "swaybg",
		LogLevel:      "info",
	}
}

// Load reads configuration from shade.yaml in the config dir, with SHADE_*
// environment variables taking precedence over the file and defaults filling
// the rest. A missing config file is not an error.
func Load() (Config, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigName("shade")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaults.ConfigDir)
	v.SetEnvPrefix("SHADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("config_dir", defaults.ConfigDir)
	v.SetDefault("themes_root", defaults.ThemesRoot)
	v.SetDefault("hooks_dir", defaults.HooksDir)
	v.SetDefault("state_dir", defaults.StateDir)
	v.SetDefault("hook_timeout", defaults.HookTimeout)
	v.SetDefault("reload_timeout", defaults.ReloadTimeout)
	v.SetDefault("kill_grace", defaults.KillGrace)
	v.SetDefault("renderer_name", defaults.RendererName)
	v.SetDefault("log_level", defaults.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.ThemesRoot == "" {
		cfg.ThemesRoot = filepath.Join(cfg.ConfigDir, "themes")
	}
	if cfg.HooksDir == "" {
		cfg.HooksDir = filepath.Join(cfg.ConfigDir, "hooks")
	}

	return cfg, nil
}
