package state

import (
	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

// Relayout recomputes Rows for the current width and wrap mode and keeps the
// text that was at the top of the body in view: the new top row is the one
// holding the first glyph of the old top row.
func (s *AppState) Relayout() error {
	anchor, offset := s.TopLine(), 0
	if anchor >= 0 {
		offset = s.Rows[s.ScrollOffset].Offset
	}

	rows, err := layoutRows(s.Doc, s.ScreenWidth, s.Wrap)
	if err != nil {
		s.Rows = nil
		s.ScrollOffset = 0
		return err
	}
	s.Rows = rows

	if anchor >= 0 {
		frags := make([]textutil.IndexedFragment, len(rows))
		for i, row := range rows {
			frags[i] = row.IndexedFragment
		}
		if idx := textutil.FragmentAt(frags, anchor, offset); idx >= 0 {
			s.ScrollOffset = idx
		}
	}
	s.clampScroll()
	return nil
}

func layoutRows(doc *Document, width int, wrap bool) ([]Row, error) {
	if doc == nil {
		return nil, nil
	}
	if wrap {
		return wrappedRows(doc, width)
	}
	return clippedRows(doc, width)
}

// wrappedRows gives every fragment its own row. The empty fragment that
// follows a line filling the width exactly is a cursor cell, not content,
// and is skipped.
func wrappedRows(doc *Document, width int) ([]Row, error) {
	frags, err := textutil.SegmentLines(doc.Plain, width)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(frags))
	for _, frag := range frags {
		if frag.Index > 0 && frag.Text == "" {
			continue
		}
		end := frag.Offset + len([]rune(frag.Text))
		rows = append(rows, Row{
			IndexedFragment: frag,
			Markup:          markup.Encode(markup.Slice(doc.Runs[frag.Line], frag.Offset, end)),
		})
	}
	return rows, nil
}

// clippedRows gives every line one row, truncating lines that overflow.
func clippedRows(doc *Document, width int) ([]Row, error) {
	rows := make([]Row, 0, len(doc.Plain))
	for line, plain := range doc.Plain {
		text, err := markup.FitRuns(doc.Runs[line], width)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			IndexedFragment: textutil.IndexedFragment{
				Fragment: textutil.Fragment{Text: plain, Width: textutil.StringWidth(plain)},
				Line:     line,
			},
			Markup: text,
		})
	}
	return rows, nil
}
