package render

import (
	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/palette"
)

// ColorTheme defines application colors. Chrome is drawn as markup, so these
// colors go through the same pair registry as document text.
type ColorTheme struct {
	HeaderFg   palette.Color
	HeaderBg   palette.Color
	StatusFg   palette.Color
	StatusBg   palette.Color
	ErrorFg    palette.Color
	ErrorBg    palette.Color
	HelpTitle  palette.Color
	HelpKeysFg palette.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		HeaderFg:   palette.White,
		HeaderBg:   palette.Blue,
		StatusFg:   palette.Black,
		StatusBg:   palette.White,
		ErrorFg:    palette.White,
		ErrorBg:    palette.Red,
		HelpTitle:  palette.Yellow,
		HelpKeysFg: palette.Cyan,
	}
}

func (t ColorTheme) header(text string) string {
	return markup.Colorize(text, t.HeaderFg, t.HeaderBg)
}

func (t ColorTheme) status(text string) string {
	return markup.Colorize(text, t.StatusFg, t.StatusBg)
}

func (t ColorTheme) errorText(text string) string {
	return markup.Colorize(text, t.ErrorFg, t.ErrorBg)
}
