// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads mdview settings from defaults,
// an optional YAML file, and MDVIEW_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"rsc.io/mdview"
)

// Config holds the complete mdview configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

// RenderConfig selects the rendering options.
type RenderConfig struct {
	EscapeHTML       bool   `mapstructure:"escape_html"`
	Sanitize         bool   `mapstructure:"sanitize"`
	Highlight        bool   `mapstructure:"highlight"`
	HighlightStyle   string `mapstructure:"highlight_style"`
	NormalizeUnicode bool   `mapstructure:"normalize_unicode"`
	YAMLFrontMatter  bool   `mapstructure:"yaml_front_matter"`
}

// ServerConfig holds the document viewer settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Root            string        `mapstructure:"root"`
	Extensions      []string      `mapstructure:"extensions"`
	Watch           bool          `mapstructure:"watch"`
	LiveReload      bool          `mapstructure:"live_reload"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Highlight:      true,
			HighlightStyle: "github",
		},
		Server: ServerConfig{
			Addr:            "localhost:6060",
			Root:            ".",
			Extensions:      []string{".md", ".markdown"},
			Watch:           true,
			LiveReload:      true,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from the file at path, or when path is empty,
// from mdview.yaml in the current directory or $HOME/.config/mdview.
// A missing default file is not an error. Environment variables such as
// MDVIEW_SERVER_ADDR override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MDVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("mdview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "mdview"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("render.escape_html", d.Render.EscapeHTML)
	v.SetDefault("render.sanitize", d.Render.Sanitize)
	v.SetDefault("render.highlight", d.Render.Highlight)
	v.SetDefault("render.highlight_style", d.Render.HighlightStyle)
	v.SetDefault("render.normalize_unicode", d.Render.NormalizeUnicode)
	v.SetDefault("render.yaml_front_matter", d.Render.YAMLFrontMatter)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.root", d.Server.Root)
	v.SetDefault("server.extensions", d.Server.Extensions)
	v.SetDefault("server.watch", d.Server.Watch)
	v.SetDefault("server.live_reload", d.Server.LiveReload)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address is required")
	}
	if c.Server.Root == "" {
		return errors.New("server root is required")
	}
	if len(c.Server.Extensions) == 0 {
		return errors.New("at least one document extension is required")
	}
	for _, ext := range c.Server.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return errors.Errorf("invalid extension %q (must start with '.')", ext)
		}
	}
	if c.Server.LiveReload && !c.Server.Watch {
		return errors.New("live reload requires watch")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return errors.Errorf("invalid log format: %s (must be console or json)", c.Log.Format)
	}
	return nil
}

// Parser returns the rendering options as an engine parser.
func (r RenderConfig) Parser() *mdview.Parser {
	return &mdview.Parser{
		EscapeHTML:       r.EscapeHTML,
		Sanitize:         r.Sanitize,
		Highlight:        r.Highlight,
		NormalizeUnicode: r.NormalizeUnicode,
		YAMLFrontMatter:  r.YAMLFrontMatter,
	}
}
