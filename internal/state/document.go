package state

import (
	"strings"

	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/textutil"
	"golang.org/x/text/unicode/norm"
)

// Document is a markup text split into lines, with the parsed runs and the
// plain text of every line precomputed for layout.
type Document struct {
	Name  string
	Lines []string
	Runs  [][]markup.Run
	Plain []string
}

// NewDocument prepares text for viewing: line endings are unified, text is
// NFC-normalized so combining sequences measure like their composed forms,
// tabs are expanded against the plain text columns, and control and bidi
// runes are replaced by what the surfaces will draw. Plain and Runs hold
// exactly the cells a line occupies.
func NewDocument(name, text string, tabWidth int) *Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	text = norm.NFC.String(text)

	lines := strings.Split(text, "\n")
	doc := &Document{
		Name:  name,
		Lines: make([]string, len(lines)),
		Runs:  make([][]markup.Run, len(lines)),
		Plain: make([]string, len(lines)),
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		runs := prepareRuns(markup.Parse(line), tabWidth)
		doc.Runs[i] = runs
		doc.Plain[i] = markup.PlainText(runs)
		doc.Lines[i] = markup.Encode(runs)
	}
	return doc
}

// prepareRuns expands tabs and sanitizes run by run while tracking the
// column across runs, so colored spans do not shift tab stops.
func prepareRuns(runs []markup.Run, tabWidth int) []markup.Run {
	column := 0
	for i, run := range runs {
		if tabWidth > 0 && strings.ContainsRune(run.Text, '\t') {
			prefix := strings.Repeat("x", column%tabWidth)
			expanded := textutil.ExpandTabs(prefix+run.Text, tabWidth)
			run.Text = expanded[len(prefix):]
		}
		run.Text = textutil.SanitizeTerminalText(run.Text)
		runs[i] = run
		column += textutil.StringWidth(run.Text)
	}
	return runs
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}
