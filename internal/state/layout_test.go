package state

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

func newTestState(t *testing.T, text string, width, height int, wrap bool) *AppState {
	t.Helper()
	state := NewAppState(NewDocument("test", text, 4), width, height, wrap, true)
	if err := state.Relayout(); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	return state
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line%d", i)
	}
	return strings.Join(lines, "\n")
}

func rowMarkup(rows []Row) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Markup
	}
	return out
}

func TestRelayoutWrapSplitsColoredLines(t *testing.T) {
	state := newTestState(t, "\x1b[91mabcdef\nxy", 3, 10, true)

	want := []string{"\x1b[91mabc", "\x1b[91mdef", "xy"}
	if diff := cmp.Diff(want, rowMarkup(state.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if state.Rows[1].Line != 0 || state.Rows[1].Index != 1 {
		t.Fatalf("second row address = (%d,%d), want (0,1)", state.Rows[1].Line, state.Rows[1].Index)
	}
}

func TestRelayoutWrapKeepsEmptyLines(t *testing.T) {
	state := newTestState(t, "ab\n\ncd", 10, 10, true)
	if len(state.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(state.Rows))
	}
	if state.Rows[1].Markup != "" || state.Rows[1].Line != 1 {
		t.Fatalf("unexpected empty row: %+v", state.Rows[1])
	}
}

func TestRelayoutWrapWideGlyphs(t *testing.T) {
	state := newTestState(t, "日本語", 4, 10, true)
	want := []string{"日本", "語"}
	if diff := cmp.Diff(want, rowMarkup(state.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRelayoutClipTruncatesWithEllipsis(t *testing.T) {
	state := newTestState(t, "abcdefgh\n\x1b[94mabcdefgh\nshort", 5, 10, false)

	want := []string{
		"ab\x1b[0m...",
		"\x1b[94mab\x1b[0m...",
		"short",
	}
	if diff := cmp.Diff(want, rowMarkup(state.Rows)); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRelayoutClipNarrowerThanEllipsis(t *testing.T) {
	state := newTestState(t, "abcdefgh", 2, 10, false)
	if got := state.Rows[0].Markup; got != "ab" {
		t.Fatalf("row = %q, want %q", got, "ab")
	}
}

func TestRelayoutWrapRejectsZeroWidth(t *testing.T) {
	state := NewAppState(NewDocument("test", "abc", 4), 0, 10, true, true)
	if err := state.Relayout(); !errors.Is(err, textutil.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
	if state.Rows != nil {
		t.Fatalf("expected no rows after a failed layout")
	}
}

func TestRelayoutKeepsTopLineInView(t *testing.T) {
	state := newTestState(t, numberedLines(10), 80, 5, true)
	state.ScrollOffset = 4

	state.ScreenWidth = 3
	if err := state.Relayout(); err != nil {
		t.Fatalf("Relayout: %v", err)
	}

	// Every "lineN" now takes two rows.
	if state.ScrollOffset != 8 {
		t.Fatalf("ScrollOffset = %d, want 8", state.ScrollOffset)
	}
	if state.TopLine() != 4 {
		t.Fatalf("TopLine = %d, want 4", state.TopLine())
	}
}

func TestRelayoutKeepsTopTextOfWrappedLine(t *testing.T) {
	state := newTestState(t, "l0\nabcdefghijklmnopqrst\nend", 5, 4, true)
	state.ScrollOffset = 3
	if got := state.Rows[3].Text; got != "klmno" {
		t.Fatalf("row 3 = %q, want klmno", got)
	}

	state.ScreenWidth = 10
	if err := state.Relayout(); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	if got := state.Rows[state.ScrollOffset].Text; got != "klmnopqrst" {
		t.Fatalf("top row after widening = %q, want klmnopqrst", got)
	}

	state.ScreenWidth = 4
	if err := state.Relayout(); err != nil {
		t.Fatalf("Relayout: %v", err)
	}
	if got := state.Rows[state.ScrollOffset].Text; got != "ijkl" {
		t.Fatalf("top row after narrowing = %q, want ijkl", got)
	}
}

func TestVisibleRows(t *testing.T) {
	state := newTestState(t, numberedLines(10), 80, 5, false)
	state.ScrollOffset = 8

	state.clampScroll()
	if state.ScrollOffset != 7 {
		t.Fatalf("ScrollOffset = %d, want 7", state.ScrollOffset)
	}
	rows := state.VisibleRows()
	if len(rows) != 3 || rows[0].Line != 7 || rows[2].Line != 9 {
		t.Fatalf("unexpected visible rows: %+v", rows)
	}
}
