package textutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWidth is returned when a column budget cannot hold any layout.
var ErrInvalidWidth = errors.New("invalid column budget")

// Fragment is a run of glyphs from one line that fits a column budget.
type Fragment struct {
	Text   string
	Width  int
	Offset int // rune offset of the first glyph within the line
}

// IndexedFragment addresses a fragment by its line and its position within
// that line.
type IndexedFragment struct {
	Fragment
	Line  int
	Index int
}

// Segment packs line into fragments no wider than budget. A glyph wider than
// budget gets a fragment of its own. An empty line, or one whose last
// fragment exactly fills budget, ends with an empty fragment so there is
// always a cell for the cursor after the text.
func Segment(line string, budget int) ([]Fragment, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("segment line: %w: %d", ErrInvalidWidth, budget)
	}
	return segment(line, budget), nil
}

func segment(line string, budget int) []Fragment {
	var (
		fragments []Fragment
		builder   strings.Builder
		current   = Fragment{}
		runes     = 0
		started   = false
	)

	flush := func() {
		current.Text = builder.String()
		fragments = append(fragments, current)
		builder.Reset()
	}

	for _, ru := range line {
		w := RuneWidth(ru)
		if started && current.Width+w > budget {
			flush()
			current = Fragment{Offset: runes}
		}
		builder.WriteRune(ru)
		current.Width += w
		started = true
		runes++
	}
	if started {
		flush()
	}

	if len(fragments) == 0 || fragments[len(fragments)-1].Width == budget {
		fragments = append(fragments, Fragment{Offset: runes})
	}
	return fragments
}

// SegmentLines segments every line, see SegmentRange.
func SegmentLines(lines []string, budget int) ([]IndexedFragment, error) {
	return SegmentRange(lines, budget, 0, len(lines))
}

// SegmentRange segments lines[start:end] and tags each fragment with its
// line index and its index within the line. start is clamped into
// [0, len(lines)] and end to at most len(lines); an inverted range is empty.
func SegmentRange(lines []string, budget, start, end int) ([]IndexedFragment, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("segment lines: %w: %d", ErrInvalidWidth, budget)
	}
	if start < 0 {
		start = 0
	}
	if start > len(lines) {
		start = len(lines)
	}
	if end > len(lines) {
		end = len(lines)
	}

	var out []IndexedFragment
	for line := start; line < end; line++ {
		for idx, frag := range segment(lines[line], budget) {
			out = append(out, IndexedFragment{Fragment: frag, Line: line, Index: idx})
		}
	}
	return out, nil
}

// FragmentAt returns the position of the fragment of line that holds the
// rune at offset, or -1 when line has no fragments. An offset past the end
// of the line resolves to its last fragment.
func FragmentAt(fragments []IndexedFragment, line, offset int) int {
	found := -1
	for i, frag := range fragments {
		if frag.Line > line {
			break
		}
		if frag.Line == line && (found < 0 || frag.Offset <= offset) {
			found = i
		}
	}
	return found
}
