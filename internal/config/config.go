package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Coach    CoachConfig
	UI       UIConfig
	Progress ProgressConfig
	Log      LogConfig
	Journal  JournalConfig
	Keys     map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CoachConfig tunes the placeholder bot.
type CoachConfig struct {
	TypingDelay time.Duration `mapstructure:"typing_delay"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NavPosition   string `mapstructure:"nav_position"`
	Timezone      string
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ProgressConfig drives the dashboard counter animation.
type ProgressConfig struct {
	AnimationDuration time.Duration `mapstructure:"animation_duration"`
	AnimationFrames   int           `mapstructure:"animation_frames"`
}

// LogConfig places the log file. The TUI owns stdout, so logs never go there.
type LogConfig struct {
	Path  string
	Level string
}

// JournalConfig toggles mirroring chats into sqlite.
type JournalConfig struct {
	Enabled bool
}

const envPrefix = "FITCOACH"

// Path is the config file location: FITCOACH_CONFIG or the XDG-style default.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "fitcoach", "config.toml")
}

func newViper(path string) *viper.Viper {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "fitcoach", "fitcoach.db"))
	v.SetDefault("coach.typing_delay", 1500*time.Millisecond)
	v.SetDefault("ui.nav_position", "bottom")
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.markdown_style", "dark")
	v.SetDefault("progress.animation_duration", 2*time.Second)
	v.SetDefault("progress.animation_frames", 60)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "fitcoach", "fitcoach.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("journal.enabled", true)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads .env (if present), then the config file (if present), then
// environment overrides with prefix FITCOACH_. An explicit path wins over
// FITCOACH_CONFIG.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	if path == "" {
		path = Path()
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Coach.TypingDelay <= 0 {
		c.Coach.TypingDelay = 1500 * time.Millisecond
	}
	switch c.UI.NavPosition {
	case "top", "bottom":
	default:
		c.UI.NavPosition = "bottom"
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("coach.typing_delay", cfg.Coach.TypingDelay.String())
	v.Set("ui.nav_position", cfg.UI.NavPosition)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.markdown_style", cfg.UI.MarkdownStyle)
	v.Set("progress.animation_duration", cfg.Progress.AnimationDuration.String())
	v.Set("progress.animation_frames", cfg.Progress.AnimationFrames)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Watch re-decodes the config file whenever it changes and hands the result
// to onChange. Decode failures go to onError. The watch lives as long as
// the process; the file must exist when Watch is called.
func Watch(path string, onChange func(Config), onError func(error)) error {
	if path == "" {
		path = Path()
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c, err := decode(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(c)
	})
	v.WatchConfig()
	return nil
}

// Location resolves UI.Timezone, falling back to local time.
func (c Config) Location() *time.Location {
	if c.UI.Timezone == "" || c.UI.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.UI.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
