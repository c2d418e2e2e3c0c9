package surface

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/palette"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

type streamState struct {
	out    io.Writer
	colors bool
	pairs  map[palette.Pair]markup.Code
	row    int
	col    int
	err    error
}

// Stream is a Surface that writes to an io.Writer, one row after another.
// The cursor can only move forward; colored pairs are written as escape
// sequences followed by a reset.
type Stream struct {
	st        *streamState
	top, left int
	cols      int
}

// NewStream returns a stream surface cols wide with unbounded rows.
func NewStream(out io.Writer, cols int, colors bool) *Stream {
	return &Stream{
		st: &streamState{
			out:    out,
			colors: colors,
			pairs:  make(map[palette.Pair]markup.Code),
		},
		cols: cols,
	}
}

// Size returns the stream width; rows are unbounded.
func (s *Stream) Size() (int, int) {
	return math.MaxInt32, s.cols
}

// HasColors reports whether pairs are written as escapes.
func (s *Stream) HasColors() bool {
	return s.st.colors
}

// InitPair records the escape sequence for pair.
func (s *Stream) InitPair(pair palette.Pair, fg, bg palette.Color) error {
	if !s.st.colors {
		return ErrNoColors
	}
	if pair == palette.PairDefault {
		return fmt.Errorf("init pair %d: %w", pair, ErrReservedPair)
	}
	s.st.pairs[pair] = markup.Code{Fg: fg, Bg: bg}
	return nil
}

// DrawAt advances to row, col with newlines and spaces, then draws text.
func (s *Stream) DrawAt(row, col int, text string, pair palette.Pair) error {
	if row < 0 || col < 0 || (s.cols > 0 && col >= s.cols) {
		return fmt.Errorf("draw at %d,%d: %w", row, col, ErrOutOfBounds)
	}
	absRow, absCol := s.top+row, s.left+col
	st := s.st
	if absRow < st.row || (absRow == st.row && absCol < st.col) {
		return fmt.Errorf("draw at %d,%d behind cursor %d,%d: %w", row, col, st.row-s.top, st.col-s.left, ErrOutOfBounds)
	}
	if absRow > st.row {
		st.write(strings.Repeat("\n", absRow-st.row))
		st.row, st.col = absRow, 0
	}
	if absCol > st.col {
		st.write(strings.Repeat(" ", absCol-st.col))
		st.col = absCol
	}
	return s.Draw(text, pair)
}

// Draw writes text at the cursor. Control runes are dropped.
func (s *Stream) Draw(text string, pair palette.Pair) error {
	st := s.st
	text = textutil.StripControls(text)
	code, colored := st.pairs[pair]
	if colored && st.colors && pair != palette.PairDefault {
		st.write(code.Sequence() + text + markup.Reset)
	} else {
		st.write(text)
	}
	st.col += textutil.StringWidth(text)
	return st.err
}

// Derive returns a view of the stream offset by beginRow, beginCol.
func (s *Stream) Derive(rows, cols, beginRow, beginCol int) (Surface, error) {
	if rows < 0 || cols < 0 || beginRow < 0 || beginCol < 0 || (s.cols > 0 && beginCol >= s.cols) {
		return nil, fmt.Errorf("derive at %d,%d: %w", beginRow, beginCol, ErrOutOfBounds)
	}
	width := 0
	if s.cols > 0 {
		width = s.cols - beginCol
	}
	if cols > 0 {
		if s.cols > 0 && beginCol+cols > s.cols {
			return nil, fmt.Errorf("derive %d columns at %d: %w", cols, beginCol, ErrOutOfBounds)
		}
		width = cols
	}
	return &Stream{st: s.st, top: s.top + beginRow, left: s.left + beginCol, cols: width}, nil
}

// DeriveAt returns a view of the stream from beginRow, beginCol onward.
func (s *Stream) DeriveAt(beginRow, beginCol int) (Surface, error) {
	return s.Derive(0, 0, beginRow, beginCol)
}

// Clear is a no-op: written output cannot be taken back.
func (s *Stream) Clear() {}

// End terminates the last row and returns the first write error seen.
func (s *Stream) End() error {
	if s.st.col > 0 || s.st.row > 0 {
		s.st.write("\n")
		s.st.row++
		s.st.col = 0
	}
	return s.st.err
}

func (st *streamState) write(text string) {
	if st.err != nil || text == "" {
		return
	}
	_, st.err = io.WriteString(st.out, text)
}
