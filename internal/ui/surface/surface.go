// Package surface defines the character-cell targets text is drawn onto.
package surface

import (
	"errors"

	"github.com/kk-code-lab/cellfit/internal/palette"
)

var (
	// ErrOutOfBounds is returned for positions or sub-windows outside a surface.
	ErrOutOfBounds = errors.New("position outside surface")
	// ErrNoColors is returned when registering a pair on a surface without color.
	ErrNoColors = errors.New("surface has no color support")
	// ErrReservedPair is returned when registering the default pair.
	ErrReservedPair = errors.New("color pair is reserved")
)

// Surface is a rectangular grid of cells with a cursor.
type Surface interface {
	// DrawAt moves the cursor to row, col and draws text from there.
	DrawAt(row, col int, text string, pair palette.Pair) error
	// Draw draws text starting at the cursor.
	Draw(text string, pair palette.Pair) error
	// InitPair binds pair to a foreground/background combination.
	InitPair(pair palette.Pair, fg, bg palette.Color) error
	// HasColors reports whether pairs other than the default render.
	HasColors() bool
	// Derive creates a sub-surface of rows x cols at beginRow, beginCol. A zero
	// size extends to the parent's edge.
	Derive(rows, cols, beginRow, beginCol int) (Surface, error)
	// DeriveAt creates a sub-surface covering the parent from beginRow, beginCol.
	DeriveAt(beginRow, beginCol int) (Surface, error)
	// Size returns the surface dimensions.
	Size() (rows, cols int)
	// Clear blanks the surface and homes the cursor.
	Clear()
}

// subRect validates a derive request against a parent of prows x pcols and
// returns the resolved size.
func subRect(prows, pcols, rows, cols, beginRow, beginCol int) (int, int, error) {
	if beginRow < 0 || beginCol < 0 || beginRow >= prows || beginCol >= pcols || rows < 0 || cols < 0 {
		return 0, 0, ErrOutOfBounds
	}
	if rows == 0 {
		rows = prows - beginRow
	}
	if cols == 0 {
		cols = pcols - beginCol
	}
	if beginRow+rows > prows || beginCol+cols > pcols {
		return 0, 0, ErrOutOfBounds
	}
	return rows, cols, nil
}
