package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blacktop/asmview/internal/log"
)

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# asmview configuration
#
# Language to highlight with when the file extension is ambiguous.
language: Assembly

# Re-highlight automatically when the viewed file changes on disk.
auto_refresh: true
# Debounce for file change bursts, in milliseconds.
auto_refresh_debounce: 250

ui:
  show_line_numbers: true
  show_status_bar: true
  tab_width: 4

theme:
  # Built-in presets: default, one-light, high-contrast
  preset: default
  # Force "light" or "dark"; leave empty for terminal detection.
  mode: ""
  # Override individual color tokens:
  # colors:
  #   "syntax.keyword": "#FF0000"
  #   "syntax.comment": "#6A9955"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
