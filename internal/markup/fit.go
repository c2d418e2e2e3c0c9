package markup

import "github.com/kk-code-lab/cellfit/internal/textutil"

// Fit clips markup text to width columns, see FitRuns.
func Fit(text string, width int) (string, error) {
	return FitRuns(Parse(text), width)
}

// FitRuns encodes runs clipped to width columns. Clipped text ends with Reset
// followed by textutil.Ellipsis so the marker is drawn uncolored. Widths
// narrower than the ellipsis keep the glyphs that fit and no marker.
//
// Columns are counted with textutil.StringWidth, the same measure the
// segmenter wraps with. ansi.Truncate counts grapheme clusters instead and
// would leave rows the layout considers too wide.
func FitRuns(runs []Run, width int) (string, error) {
	plain := PlainText(runs)
	if textutil.StringWidth(plain) <= width {
		return Encode(runs), nil
	}
	if width < len(textutil.Ellipsis) {
		frags, err := textutil.Segment(plain, width)
		if err != nil {
			return "", err
		}
		head := frags[0]
		if head.Width > width {
			return "", nil
		}
		return Encode(Slice(runs, 0, len([]rune(head.Text)))), nil
	}

	short, err := textutil.Truncate(plain, width)
	if err != nil {
		return "", err
	}
	keep := len([]rune(short)) - len(textutil.Ellipsis)
	return Encode(Slice(runs, 0, keep)) + Reset + textutil.Ellipsis, nil
}
