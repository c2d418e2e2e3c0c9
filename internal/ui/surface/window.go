package surface

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/cellfit/internal/palette"
	"github.com/kk-code-lab/cellfit/internal/textutil"
	"github.com/rivo/uniseg"
)

// screenContext is shared by a root window and everything derived from it;
// pairs are a property of the terminal, not of a single window.
type screenContext struct {
	screen tcell.Screen
	colors bool
	pairs  map[palette.Pair]tcell.Style
}

// Window is a Surface backed by a tcell screen region.
type Window struct {
	ctx        *screenContext
	top, left  int
	rows, cols int
	cursorRow  int
	cursorCol  int
}

// NewWindow returns a window covering the whole screen. colors gates pair
// registration; callers typically pass screen.Colors() > 0.
func NewWindow(screen tcell.Screen, colors bool) *Window {
	w := &Window{
		ctx: &screenContext{
			screen: screen,
			colors: colors,
			pairs:  make(map[palette.Pair]tcell.Style),
		},
	}
	w.Resize()
	return w
}

// Resize refreshes a root window's size from the screen.
func (w *Window) Resize() {
	cols, rows := w.ctx.screen.Size()
	w.rows, w.cols = rows, cols
	w.cursorRow = min(w.cursorRow, max(rows-1, 0))
	w.cursorCol = min(w.cursorCol, max(cols-1, 0))
}

// Size returns the window dimensions.
func (w *Window) Size() (int, int) {
	return w.rows, w.cols
}

// Cursor returns the cursor position relative to the window.
func (w *Window) Cursor() (int, int) {
	return w.cursorRow, w.cursorCol
}

// HasColors reports whether color pairs render on this screen.
func (w *Window) HasColors() bool {
	return w.ctx.colors
}

// InitPair binds pair to fg/bg for every window on the screen.
func (w *Window) InitPair(pair palette.Pair, fg, bg palette.Color) error {
	if !w.ctx.colors {
		return ErrNoColors
	}
	if pair == palette.PairDefault {
		return fmt.Errorf("init pair %d: %w", pair, ErrReservedPair)
	}
	w.ctx.pairs[pair] = tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	return nil
}

// DrawAt draws text starting at row, col.
func (w *Window) DrawAt(row, col int, text string, pair palette.Pair) error {
	if row < 0 || col < 0 || row >= w.rows || col >= w.cols {
		return fmt.Errorf("draw at %d,%d in %dx%d window: %w", row, col, w.rows, w.cols, ErrOutOfBounds)
	}
	w.cursorRow, w.cursorCol = row, col
	return w.Draw(text, pair)
}

// Draw places text cell by cell from the cursor. Text wraps at the right
// edge and is clipped at the bottom. Graphemes with no width, such as a
// stray control rune, take no cell and are not drawn, so the cursor moves by
// exactly textutil.StringWidth(text) columns.
func (w *Window) Draw(text string, pair palette.Pair) error {
	style := w.style(pair)

	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if w.cursorRow >= w.rows {
			return nil
		}
		runes := gr.Runes()
		width := textutil.StringWidth(gr.Str())
		if width <= 0 {
			continue
		}
		if w.cursorCol+width > w.cols {
			w.cursorRow++
			w.cursorCol = 0
			if w.cursorRow >= w.rows || width > w.cols {
				return nil
			}
		}
		w.ctx.screen.SetContent(w.left+w.cursorCol, w.top+w.cursorRow, runes[0], runes[1:], style)
		w.cursorCol += width
	}
	return nil
}

// Derive creates a sub-window sharing this window's screen and pairs.
func (w *Window) Derive(rows, cols, beginRow, beginCol int) (Surface, error) {
	r, c, err := subRect(w.rows, w.cols, rows, cols, beginRow, beginCol)
	if err != nil {
		return nil, fmt.Errorf("derive %dx%d at %d,%d: %w", rows, cols, beginRow, beginCol, err)
	}
	return &Window{
		ctx:  w.ctx,
		top:  w.top + beginRow,
		left: w.left + beginCol,
		rows: r,
		cols: c,
	}, nil
}

// DeriveAt creates a sub-window reaching to this window's bottom-right corner.
func (w *Window) DeriveAt(beginRow, beginCol int) (Surface, error) {
	return w.Derive(0, 0, beginRow, beginCol)
}

// Clear blanks the window with the default style.
func (w *Window) Clear() {
	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			w.ctx.screen.SetContent(w.left+x, w.top+y, ' ', nil, tcell.StyleDefault)
		}
	}
	w.cursorRow, w.cursorCol = 0, 0
}

func (w *Window) style(pair palette.Pair) tcell.Style {
	if style, ok := w.ctx.pairs[pair]; ok {
		return style
	}
	return tcell.StyleDefault
}

func tcellColor(c palette.Color) tcell.Color {
	idx, ok := c.Index()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}
