package styles

import (
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// appliedTheme names the currently applied preset. Render caches key on it.
var appliedTheme = "default"

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ThemeName returns the name of the applied preset (plus a marker when
// individual colors were overridden).
func ThemeName() string { return appliedTheme }

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	name := "default"
	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
		name = cfg.Preset
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}
	if len(cfg.Colors) > 0 {
		name += "+custom"
	}

	switch cfg.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "":
		// Terminal detection
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	applyColors(colors)
	rebuildStyles()
	appliedTheme = name

	return nil
}

func applyColors(colors map[ColorToken]string) {
	// Presets carry one value per token; it is used for both light and dark
	// terminals so an explicit preset always wins over detection.
	set := func(dst *lipgloss.AdaptiveColor, token ColorToken) {
		if hex, ok := colors[token]; ok {
			*dst = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}

	set(&TextPrimaryColor, TokenTextPrimary)
	set(&TextSecondaryColor, TokenTextSecondary)
	set(&TextMutedColor, TokenTextMuted)

	set(&BackgroundColor, TokenBackground)
	set(&BorderDefaultColor, TokenBorderDefault)
	set(&OverlayTitleColor, TokenOverlayTitle)
	set(&StatusErrorColor, TokenStatusError)

	set(&SyntaxKeywordColor, TokenSyntaxKeyword)
	set(&SyntaxCommentColor, TokenSyntaxComment)
	set(&SyntaxRegisterColor, TokenSyntaxRegister)
	set(&SyntaxNumberColor, TokenSyntaxNumber)
	set(&SyntaxLabelColor, TokenSyntaxLabel)
}

func isValidToken(token ColorToken) bool {
	for _, t := range AllTokens() {
		if t == token {
			return true
		}
	}
	return false
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
