package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#383A42", Dark: "#D4D4D4"} // Default source text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Status bar values, scrollbar thumb
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Line numbers, hints, scrollbar track

	// Chrome
	BackgroundColor    = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#1E1E1E"}
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#569CD6"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Syntax capture colors
	SyntaxKeywordColor  = lipgloss.AdaptiveColor{Light: "#A626A4", Dark: "#569CD6"}
	SyntaxCommentColor  = lipgloss.AdaptiveColor{Light: "#A0A1A7", Dark: "#6A9955"}
	SyntaxRegisterColor = lipgloss.AdaptiveColor{Light: "#0184BC", Dark: "#4EC9B0"}
	SyntaxNumberColor   = lipgloss.AdaptiveColor{Light: "#986801", Dark: "#B5CEA8"}
	SyntaxLabelColor    = lipgloss.AdaptiveColor{Light: "#C18401", Dark: "#DCDCAA"}
)

// captureColors is the fixed capture name -> color table. Unknown names fall
// back to TextPrimaryColor; the resolver is total and never fails.
var captureColors map[string]lipgloss.AdaptiveColor

// captureStyles holds prebuilt per-capture styles for the render hot path.
var captureStyles map[string]lipgloss.Style

var defaultTextStyle lipgloss.Style

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	captureColors = map[string]lipgloss.AdaptiveColor{
		"keyword":  SyntaxKeywordColor,
		"comment":  SyntaxCommentColor,
		"register": SyntaxRegisterColor,
		"number":   SyntaxNumberColor,
		"label":    SyntaxLabelColor,
	}
	defaultTextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	captureStyles = make(map[string]lipgloss.Style, len(captureColors))
	for name, color := range captureColors {
		captureStyles[name] = lipgloss.NewStyle().Foreground(color)
	}
}

// CaptureColor resolves a capture name to its color: exact table match or
// the default text color. No prefix matching, no inheritance between names.
func CaptureColor(name string) lipgloss.AdaptiveColor {
	if c, ok := captureColors[name]; ok {
		return c
	}
	return TextPrimaryColor
}

// CaptureStyle resolves a capture name to a prebuilt render style. Like
// CaptureColor it is total: unknown names get the default text style.
func CaptureStyle(name string) lipgloss.Style {
	if s, ok := captureStyles[name]; ok {
		return s
	}
	return defaultTextStyle
}
