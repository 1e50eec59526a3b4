package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":       DefaultPreset,
	"one-light":     OneLightPreset,
	"high-contrast": HighContrastPreset,
}

// DefaultPreset is the stock dark scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#D4D4D4",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBackground:    "#1E1E1E",
		TokenBorderDefault: "#696969",
		TokenOverlayTitle:  "#569CD6",
		TokenStatusError:   "#FF8787",

		TokenSyntaxKeyword:  "#569CD6",
		TokenSyntaxComment:  "#6A9955",
		TokenSyntaxRegister: "#4EC9B0",
		TokenSyntaxNumber:   "#B5CEA8",
		TokenSyntaxLabel:    "#DCDCAA",
	},
}

// OneLightPreset suits light terminal backgrounds.
var OneLightPreset = Preset{
	Name:        "one-light",
	Description: "Light theme based on One Light",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#383A42",
		TokenTextSecondary: "#696C77",
		TokenTextMuted:     "#A0A1A7",

		TokenBackground:    "#FAFAFA",
		TokenBorderDefault: "#D9DCCF",
		TokenOverlayTitle:  "#1E66F5",
		TokenStatusError:   "#E45649",

		TokenSyntaxKeyword:  "#A626A4",
		TokenSyntaxComment:  "#A0A1A7",
		TokenSyntaxRegister: "#0184BC",
		TokenSyntaxNumber:   "#986801",
		TokenSyntaxLabel:    "#C18401",
	},
}

// HighContrastPreset maximizes legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast theme for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#E0E0E0",
		TokenTextMuted:     "#9E9E9E",

		TokenBackground:    "#000000",
		TokenBorderDefault: "#FFFFFF",
		TokenOverlayTitle:  "#00BFFF",
		TokenStatusError:   "#FF5555",

		TokenSyntaxKeyword:  "#00BFFF",
		TokenSyntaxComment:  "#00FF7F",
		TokenSyntaxRegister: "#00FFFF",
		TokenSyntaxNumber:   "#ADFF2F",
		TokenSyntaxLabel:    "#FFFF00",
	},
}
