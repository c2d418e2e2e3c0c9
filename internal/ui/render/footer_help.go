package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/cellfit/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}
	if state.HelpVisible {
		return []string{"?/Esc/q: close help"}
	}

	segments := []string{
		"j/k: scroll",
		"space/b: page",
		"g/G: top/end",
	}
	return append(segments, persistentHelpSegments(state)...)
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	return []string{
		fmt.Sprintf("w: wrap %s", onOff(state.Wrap)),
		fmt.Sprintf("c: color %s", onOff(state.Styled)),
		"?: help",
		"q: quit",
	}
}

// formatPosition describes which lines are visible, e.g. "12-40/300".
func formatPosition(state *statepkg.AppState) string {
	total := state.Doc.LineCount()
	rows := state.VisibleRows()
	if len(rows) == 0 {
		return fmt.Sprintf("0/%d", total)
	}
	first := rows[0].Line + 1
	last := rows[len(rows)-1].Line + 1
	if first == last {
		return fmt.Sprintf("%d/%d", first, total)
	}
	return fmt.Sprintf("%d-%d/%d", first, last, total)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
