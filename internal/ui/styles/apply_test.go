package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Every capture name the grammar vocabulary defines, plus an unrecognized
// one, must resolve to a concrete color. The resolver is total.
func TestCaptureColor_Totality(t *testing.T) {
	names := []string{"keyword", "comment", "register", "number", "label", "foo", ""}
	for _, name := range names {
		color := CaptureColor(name)
		require.NotEmpty(t, color.Dark, "capture %q must resolve to a color", name)
		require.NotEmpty(t, color.Light, "capture %q must resolve to a color", name)
	}
}

func TestCaptureColor_UnknownFallsBackToDefault(t *testing.T) {
	require.Equal(t, TextPrimaryColor, CaptureColor("foo"))
	require.Equal(t, TextPrimaryColor, CaptureColor(""))
}

func TestCaptureColor_ExactMatchOnly(t *testing.T) {
	// No prefix matching or inheritance between capture names.
	require.Equal(t, SyntaxKeywordColor, CaptureColor("keyword"))
	require.Equal(t, TextPrimaryColor, CaptureColor("keyword.control"))
	require.Equal(t, TextPrimaryColor, CaptureColor("keywor"))
}

func TestCaptureStyle_Totality(t *testing.T) {
	for _, name := range []string{"keyword", "comment", "register", "number", "label", "foo"} {
		// Must not panic and must render text unchanged in content.
		out := CaptureStyle(name).Render("mov")
		require.Contains(t, out, "mov")
	}
}

func TestApplyTheme_UnknownPreset(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "solarized-unicorn"})
	require.ErrorContains(t, err, "unknown theme preset")
}

func TestApplyTheme_UnknownToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"syntax.operator": "#FFFFFF"}})
	require.ErrorContains(t, err, "unknown color token")
}

func TestApplyTheme_InvalidHex(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"syntax.keyword": "blue"}})
	require.ErrorContains(t, err, "invalid hex color")
}

func TestApplyTheme_InvalidMode(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Mode: "sepia"})
	require.ErrorContains(t, err, "unknown theme mode")
}

func TestApplyTheme_PresetAndOverrides(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, ApplyTheme(ThemeConfig{})) })

	err := ApplyTheme(ThemeConfig{
		Preset: "high-contrast",
		Colors: map[string]string{"syntax.keyword": "#FF0000"},
	})
	require.NoError(t, err)

	require.Equal(t, "#FF0000", SyntaxKeywordColor.Dark)
	require.Equal(t, "#00FF7F", SyntaxCommentColor.Dark)
	require.Equal(t, "high-contrast+custom", ThemeName())

	// The prebuilt capture table follows the applied colors.
	require.Equal(t, SyntaxKeywordColor, CaptureColor("keyword"))
}

func TestIsValidHexColor(t *testing.T) {
	require.True(t, isValidHexColor("#FFF"))
	require.True(t, isValidHexColor("#1e1e1e"))
	require.False(t, isValidHexColor("1e1e1e"))
	require.False(t, isValidHexColor("#12345"))
	require.False(t, isValidHexColor("#GGGGGG"))
}
