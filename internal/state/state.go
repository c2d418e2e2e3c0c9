package state

import "github.com/kk-code-lab/cellfit/internal/textutil"

// Row is one screen row of the body: the fragment it shows and the markup
// to draw for it.
type Row struct {
	textutil.IndexedFragment
	Markup string
}

// AppState holds everything the renderer needs to draw the viewer.
type AppState struct {
	Doc *Document

	ScreenWidth  int
	ScreenHeight int

	// Rows is the laid-out body; ScrollOffset indexes the top visible row.
	Rows         []Row
	ScrollOffset int

	Wrap        bool
	Styled      bool
	HelpVisible bool

	LastError error
}

// NewAppState returns a state for doc that still needs a Relayout.
func NewAppState(doc *Document, width, height int, wrap, styled bool) *AppState {
	return &AppState{
		Doc:          doc,
		ScreenWidth:  width,
		ScreenHeight: height,
		Wrap:         wrap,
		Styled:       styled,
	}
}

// BodyHeight is the number of rows between the header and the status line.
func (s *AppState) BodyHeight() int {
	return max(s.ScreenHeight-2, 0)
}

// MaxScroll is the largest offset that still fills the body.
func (s *AppState) MaxScroll() int {
	return max(len(s.Rows)-s.BodyHeight(), 0)
}

// VisibleRows returns the rows that fit the body at the current offset.
func (s *AppState) VisibleRows() []Row {
	if s.ScrollOffset >= len(s.Rows) {
		return nil
	}
	end := min(s.ScrollOffset+s.BodyHeight(), len(s.Rows))
	return s.Rows[s.ScrollOffset:end]
}

// TopLine returns the document line shown in the first body row, or -1.
func (s *AppState) TopLine() int {
	if s.ScrollOffset < 0 || s.ScrollOffset >= len(s.Rows) {
		return -1
	}
	return s.Rows[s.ScrollOffset].Line
}

func (s *AppState) clampScroll() {
	s.ScrollOffset = min(max(s.ScrollOffset, 0), s.MaxScroll())
}
