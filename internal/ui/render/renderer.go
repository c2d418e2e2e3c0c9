package render

import (
	"strings"

	"github.com/kk-code-lab/cellfit/internal/markup"
	statepkg "github.com/kk-code-lab/cellfit/internal/state"
	"github.com/kk-code-lab/cellfit/internal/textutil"
	"github.com/kk-code-lab/cellfit/internal/ui/surface"
)

const appTitle = "cellfit"

// Renderer handles all UI rendering
type Renderer struct {
	win        surface.Surface
	dispatcher *Dispatcher
	theme      ColorTheme
}

// NewRenderer creates a renderer drawing onto win.
func NewRenderer(win surface.Surface, dispatcher *Dispatcher) *Renderer {
	return &Renderer{
		win:        win,
		dispatcher: dispatcher,
		theme:      GetColorTheme(),
	}
}

// Render draws the header, the body and the status line. The caller shows
// the frame.
func (r *Renderer) Render(state *statepkg.AppState) error {
	r.win.Clear()

	rows, cols := r.win.Size()
	if rows <= 0 || cols <= 0 || state == nil {
		return nil
	}

	if err := r.drawHeader(state, cols); err != nil {
		return err
	}
	if rows > 2 {
		body, err := r.win.Derive(rows-2, cols, 1, 0)
		if err != nil {
			return err
		}
		if state.HelpVisible {
			err = r.drawHelp(body, state, cols)
		} else {
			err = r.drawBody(body, state)
		}
		if err != nil {
			return err
		}
	}
	if rows > 1 {
		return r.drawStatusLine(state, rows-1, cols)
	}
	return nil
}

// drawHeader renders the top bar with the title and the document name
func (r *Renderer) drawHeader(state *statepkg.AppState, cols int) error {
	text := " " + appTitle
	if state.Doc != nil && state.Doc.Name != "" {
		text += "  " + textutil.SanitizeTerminalText(state.Doc.Name)
	}
	return r.dispatcher.DrawAt(r.win, 0, 0, r.theme.header(fitBar(text, cols)), state.Styled)
}

func (r *Renderer) drawBody(body surface.Surface, state *statepkg.AppState) error {
	for i, row := range state.VisibleRows() {
		if err := r.dispatcher.DrawAt(body, i, 0, row.Markup, state.Styled); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawHelp(body surface.Surface, state *statepkg.AppState, cols int) error {
	height, _ := body.Size()
	for i, line := range buildHelpOverlayLines(state, r.theme) {
		if i >= height {
			break
		}
		fitted, err := markup.Fit(line, cols)
		if err != nil {
			return err
		}
		if err := r.dispatcher.DrawAt(body, i, 0, fitted, state.Styled); err != nil {
			return err
		}
	}
	return nil
}

// drawStatusLine renders the position, the toggles and any layout error.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, row, cols int) error {
	if state.LastError != nil {
		text := fitBar(" "+state.LastError.Error(), cols)
		return r.dispatcher.DrawAt(r.win, row, 0, r.theme.errorText(text), state.Styled)
	}

	text := buildFooterHelpText(state)
	if !state.HelpVisible {
		text = " " + formatPosition(state) + " |" + text
	}
	return r.dispatcher.DrawAt(r.win, row, 0, r.theme.status(fitBar(text, cols)), state.Styled)
}

// fitBar truncates or pads plain text to exactly cols columns.
func fitBar(text string, cols int) string {
	fitted, err := markup.Fit(text, cols)
	if err != nil {
		return ""
	}
	fitted = markup.Strip(fitted)
	if pad := cols - textutil.StringWidth(fitted); pad > 0 {
		fitted += strings.Repeat(" ", pad)
	}
	return fitted
}
