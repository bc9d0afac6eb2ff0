package domain

// FontFamily is the typeface family the widget renders the quote in.
type FontFamily string

// Font families understood by the widget.
const (
	FontSerif FontFamily = "serif"
	FontSans  FontFamily = "sans"
	FontMono  FontFamily = "mono"
)

// DisplayName returns the label shown in the host application's picker.
func (f FontFamily) DisplayName() string {
	switch f {
	case FontSerif:
		return "Classic"
	case FontSans:
		return "Modern"
	case FontMono:
		return "Type"
	default:
		return string(f)
	}
}

// TextSize is the quote text size preset.
type TextSize string

// Text size presets.
const (
	TextSmall  TextSize = "sm"
	TextMedium TextSize = "md"
	TextLarge  TextSize = "lg"
)

// Points returns the font size in points for the preset.
func (s TextSize) Points() int {
	switch s {
	case TextSmall:
		return 26
	case TextLarge:
		return 40
	default:
		return 30
	}
}

// AppearanceSettings is the presentation preference written by the host
// application.
type AppearanceSettings struct {
	Font FontFamily
	Size TextSize
}

// DefaultAppearance returns the settings used when none are stored.
func DefaultAppearance() AppearanceSettings {
	return AppearanceSettings{
		Font: FontSerif,
		Size: TextMedium,
	}
}
