// Package config loads dailyreport settings from file, environment and
// defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/parser"
)

// EnvPrefix prefixes every environment override, e.g. DAILYREPORT_SERVER_URL.
const EnvPrefix = "DAILYREPORT"

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Login   LoginConfig   `mapstructure:"login"`
	Extract ExtractConfig `mapstructure:"extract"`
	Layout  parser.Layout `mapstructure:"layout"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig describes the reporting API.
type ServerConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoginConfig holds login defaults. The password is only read from the
// environment or .env, never written back.
type LoginConfig struct {
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ExtractConfig tunes workbook extraction.
type ExtractConfig struct {
	Concurrency    int  `mapstructure:"concurrency"`
	SkipUnreadable bool `mapstructure:"skip_unreadable"`
}

// SessionConfig locates the stored session.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	layout := parser.DefaultLayout()

	v.SetDefault("server.url", "http://localhost:8081")
	v.SetDefault("server.timeout", 60*time.Second)
	v.SetDefault("login.username", "")
	v.SetDefault("login.password", "")
	v.SetDefault("login.timeout", 10*time.Second)
	v.SetDefault("extract.concurrency", 1)
	v.SetDefault("extract.skip_unreadable", false)
	v.SetDefault("session.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	for name, w := range layout.Windows() {
		v.SetDefault("layout."+name+".start", w.Start)
		v.SetDefault("layout."+name+".end", w.End)
	}
}

// Load reads configuration. path may be empty, in which case only
// environment variables and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Timeout <= 0 {
		errs = append(errs, errors.New("server.timeout must be positive"))
	}
	if c.Extract.Concurrency < 0 {
		errs = append(errs, errors.New("extract.concurrency must not be negative"))
	}
	windows := c.Layout.Windows()
	for _, name := range parser.SectionNames {
		if w := windows[name]; w.Start < 0 || w.End < w.Start {
			errs = append(errs, fmt.Errorf("layout.%s: invalid window %d..%d", name, w.Start, w.End))
		}
	}
	return errors.Join(errs...)
}
