// Package config provides configuration types and defaults for asmview.
package config

import (
	"time"
)

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar" yaml:"show_status_bar"`
	TabWidth        int  `mapstructure:"tab_width" yaml:"tab_width"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "one-light", "high-contrast"
	Preset string `mapstructure:"preset" yaml:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode" yaml:"mode"`

	// Colors allows overriding individual color tokens, e.g.
	//   colors:
	//     "syntax.keyword": "#FF0000"
	Colors map[string]string `mapstructure:"colors" yaml:"colors"`
}

// Config holds all configuration options for asmview.
type Config struct {
	Language            string      `mapstructure:"language" yaml:"language"`
	AutoRefresh         bool        `mapstructure:"auto_refresh" yaml:"auto_refresh"`
	AutoRefreshDebounce int         `mapstructure:"auto_refresh_debounce" yaml:"auto_refresh_debounce"` // milliseconds
	UI                  UIConfig    `mapstructure:"ui" yaml:"ui"`
	Theme               ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// Defaults returns the stock configuration.
func Defaults() Config {
	return Config{
		Language:            "Assembly",
		AutoRefresh:         true,
		AutoRefreshDebounce: 250,
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			TabWidth:        4,
		},
		Theme: ThemeConfig{
			Preset: "default",
		},
	}
}

// RefreshDebounce returns the auto-refresh debounce as a duration.
func (c Config) RefreshDebounce() time.Duration {
	if c.AutoRefreshDebounce <= 0 {
		return 250 * time.Millisecond
	}
	return time.Duration(c.AutoRefreshDebounce) * time.Millisecond
}
