// Package config provides configuration types and defaults for elcmp.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/lib/diag"
)

// EnvPrefix is the prefix for environment overrides, e.g. ELCMP_SERVER_ADDR.
const EnvPrefix = "ELCMP"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "elcmp.yaml"

// Config holds all configuration options for elcmp.
type Config struct {
	ComponentsDir string        `mapstructure:"components_dir"`
	Extension     string        `mapstructure:"extension"`
	Autoload      []string      `mapstructure:"autoload"` // folders under components_dir
	Page          string        `mapstructure:"page"`     // top-level component
	LogLevel      string        `mapstructure:"log_level"`
	Layout        LayoutConfig  `mapstructure:"layout"`
	Server        ServerConfig  `mapstructure:"server"`
	Metrics       bool          `mapstructure:"metrics"`
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// LayoutConfig describes the page wrapped around full-page responses.
// Header and Footer name components.
type LayoutConfig struct {
	Title       string   `mapstructure:"title"`
	Header      string   `mapstructure:"header"`
	Footer      string   `mapstructure:"footer"`
	Stylesheets []string `mapstructure:"stylesheets"`
	Scripts     []string `mapstructure:"scripts"`
}

// ServerConfig holds the HTTP server options used by `elcmp serve`.
type ServerConfig struct {
	Addr      string `mapstructure:"addr"`
	StaticDir string `mapstructure:"static_dir"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		ComponentsDir: "components",
		Extension:     elcmp.DefaultExtension,
		Autoload:      []string{"."},
		Page:          "index",
		LogLevel:      "info",
		Layout: LayoutConfig{
			Title: "elcmp",
		},
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "static",
		},
		Metrics:       true,
		Watch:         false,
		WatchDebounce: 200 * time.Millisecond,
	}
}

// SetDefaults registers Defaults on v so every key is known to viper,
// including for environment lookups.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("components_dir", d.ComponentsDir)
	v.SetDefault("extension", d.Extension)
	v.SetDefault("autoload", d.Autoload)
	v.SetDefault("page", d.Page)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("layout.title", d.Layout.Title)
	v.SetDefault("layout.header", d.Layout.Header)
	v.SetDefault("layout.footer", d.Layout.Footer)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("metrics", d.Metrics)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce", d.WatchDebounce)
}

// Load reads configuration into a Config.
//
// When file is empty, DefaultFile is used if it exists in the working
// directory; a missing default file is not an error. Environment variables
// prefixed with EnvPrefix override file values.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks option values that viper cannot type-check.
func (c Config) Validate() error {
	if c.ComponentsDir == "" {
		return errors.New("components_dir must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("extension %q must start with a dot", c.Extension)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return diag.ParseLevel(c.LogLevel)
}
