package render

import (
	"fmt"

	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/palette"
	statepkg "github.com/kk-code-lab/cellfit/internal/state"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

// buildHelpOverlayLines returns the help screen as markup lines.
func buildHelpOverlayLines(state *statepkg.AppState, theme ColorTheme) []string {
	wrapDesc := "Wrap long lines"
	colorDesc := "Show colors"
	if state != nil && state.Wrap {
		wrapDesc = "Clip long lines with ..."
	}
	if state != nil && state.Styled {
		colorDesc = "Show plain text"
	}

	sections := []helpOverlaySection{
		{
			title: "Scrolling",
			entries: []helpOverlayEntry{
				{keys: "j / ↓ / ↵", desc: "Scroll down one row"},
				{keys: "k / ↑", desc: "Scroll up one row"},
				{keys: "space / f / PgDn", desc: "Page down"},
				{keys: "b / PgUp", desc: "Page up"},
				{keys: "g / Home", desc: "Go to top"},
				{keys: "G / End", desc: "Go to end"},
			},
		},
		{
			title: "View",
			entries: []helpOverlayEntry{
				{keys: "w", desc: wrapDesc},
				{keys: "c", desc: colorDesc},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q / Esc", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	lines := make([]string, 0, 16)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, markup.Colorize(section.title, theme.HelpTitle, palette.Unset))
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry, theme))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry, theme ColorTheme) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return "  " + markup.Colorize(fmt.Sprintf("%-18s", key), theme.HelpKeysFg, palette.Unset) + " " + desc
}
