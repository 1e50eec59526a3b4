// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Chrome
	TokenBackground    ColorToken = "background"
	TokenBorderDefault ColorToken = "border.default"
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenStatusError   ColorToken = "status.error"

	// Syntax highlighting captures
	TokenSyntaxKeyword  ColorToken = "syntax.keyword" //nolint:gosec // UI color token, not credentials
	TokenSyntaxComment  ColorToken = "syntax.comment"
	TokenSyntaxRegister ColorToken = "syntax.register"
	TokenSyntaxNumber   ColorToken = "syntax.number"
	TokenSyntaxLabel    ColorToken = "syntax.label"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenBackground,
		TokenBorderDefault,
		TokenOverlayTitle,
		TokenStatusError,
		TokenSyntaxKeyword,
		TokenSyntaxComment,
		TokenSyntaxRegister,
		TokenSyntaxNumber,
		TokenSyntaxLabel,
	}
}
