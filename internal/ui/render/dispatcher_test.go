package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kk-code-lab/cellfit/internal/log"
	"github.com/kk-code-lab/cellfit/internal/palette"
	"github.com/kk-code-lab/cellfit/internal/ui/surface"
)

type drawCall struct {
	Positioned bool
	Row, Col   int
	Text       string
	Pair       palette.Pair
}

type pairCall struct {
	Pair   palette.Pair
	Fg, Bg palette.Color
}

// recordingSurface captures draw and pair registration calls.
type recordingSurface struct {
	colors  bool
	draws   []drawCall
	pairs   []pairCall
	drawErr error
}

func (s *recordingSurface) DrawAt(row, col int, text string, pair palette.Pair) error {
	s.draws = append(s.draws, drawCall{Positioned: true, Row: row, Col: col, Text: text, Pair: pair})
	return s.drawErr
}

func (s *recordingSurface) Draw(text string, pair palette.Pair) error {
	s.draws = append(s.draws, drawCall{Text: text, Pair: pair})
	return s.drawErr
}

func (s *recordingSurface) InitPair(pair palette.Pair, fg, bg palette.Color) error {
	if !s.colors {
		return surface.ErrNoColors
	}
	s.pairs = append(s.pairs, pairCall{Pair: pair, Fg: fg, Bg: bg})
	return nil
}

func (s *recordingSurface) HasColors() bool { return s.colors }

func (s *recordingSurface) Derive(rows, cols, beginRow, beginCol int) (surface.Surface, error) {
	return s, nil
}

func (s *recordingSurface) DeriveAt(beginRow, beginCol int) (surface.Surface, error) {
	return s, nil
}

func (s *recordingSurface) Size() (int, int) { return 24, 80 }

func (s *recordingSurface) Clear() {}

func newColorDispatcher(s *recordingSurface, maxPairs int) *Dispatcher {
	return NewDispatcher(palette.NewRegistry(s, maxPairs))
}

func TestDispatcherDrawsRunsWithPairs(t *testing.T) {
	s := &recordingSurface{colors: true}
	d := newColorDispatcher(s, 0)

	if err := d.DrawAt(s, 2, 3, "\x1b[91mred\x1b[0m plain", true); err != nil {
		t.Fatalf("DrawAt: %v", err)
	}

	want := []drawCall{
		{Positioned: true, Row: 2, Col: 3, Text: "red", Pair: 101},
		{Text: " plain", Pair: palette.PairDefault},
	}
	if diff := cmp.Diff(want, s.draws); diff != "" {
		t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
	}
	wantPairs := []pairCall{{Pair: 101, Fg: palette.Red, Bg: palette.Unset}}
	if diff := cmp.Diff(wantPairs, s.pairs); diff != "" {
		t.Fatalf("pair registrations mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcherPlainOnSurfaceWithoutColors(t *testing.T) {
	s := &recordingSurface{colors: false}
	d := newColorDispatcher(s, 0)

	if err := d.DrawAt(s, 0, 0, "\x1b[91mred\x1b[0m plain", true); err != nil {
		t.Fatalf("DrawAt: %v", err)
	}

	want := []drawCall{{Positioned: true, Text: "red plain", Pair: palette.PairDefault}}
	if diff := cmp.Diff(want, s.draws); diff != "" {
		t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if len(s.pairs) != 0 {
		t.Fatalf("expected no pair registrations, got %v", s.pairs)
	}
}

func TestDispatcherUnstyledStripsMarkup(t *testing.T) {
	s := &recordingSurface{colors: true}
	d := newColorDispatcher(s, 0)

	if err := d.Draw(s, "a\x1b[92mb\x1b[0mc", false); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []drawCall{{Text: "abc", Pair: palette.PairDefault}}
	if diff := cmp.Diff(want, s.draws); diff != "" {
		t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcherWithoutRegistry(t *testing.T) {
	s := &recordingSurface{colors: true}
	d := NewDispatcher(nil)

	if d.ColorActive() {
		t.Fatalf("expected color to be inactive")
	}
	if err := d.Draw(s, "\x1b[94mblue", true); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if len(s.draws) != 1 || s.draws[0].Text != "blue" || s.draws[0].Pair != palette.PairDefault {
		t.Fatalf("unexpected draws %+v", s.draws)
	}
}

func TestDispatcherEmptyTextStillPositions(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "only escapes", text: "\x1b[91m\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &recordingSurface{colors: true}
			d := newColorDispatcher(s, 0)

			if err := d.DrawAt(s, 4, 1, tt.text, true); err != nil {
				t.Fatalf("DrawAt: %v", err)
			}
			want := []drawCall{{Positioned: true, Row: 4, Col: 1, Text: "", Pair: palette.PairDefault}}
			if diff := cmp.Diff(want, s.draws); diff != "" {
				t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatcherSkipsEmptyRunsAndReusesPairs(t *testing.T) {
	s := &recordingSurface{colors: true}
	d := newColorDispatcher(s, 0)

	text := "\x1b[91m\x1b[92mgreen\x1b[91mred\x1b[92mgreen"
	if err := d.Draw(s, text, true); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	want := []drawCall{
		{Text: "green", Pair: 101},
		{Text: "red", Pair: 102},
		{Text: "green", Pair: 101},
	}
	if diff := cmp.Diff(want, s.draws); diff != "" {
		t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if len(s.pairs) != 2 {
		t.Fatalf("expected 2 pair registrations, got %v", s.pairs)
	}
}

func TestDispatcherFallsBackWhenPairsExhausted(t *testing.T) {
	var logs bytes.Buffer
	log.Init(&logs, log.LevelWarn)
	t.Cleanup(func() { log.Init(io.Discard, log.LevelInfo) })

	s := &recordingSurface{colors: true}
	// Room for a single pair beyond the default.
	d := newColorDispatcher(s, palette.SlotBase+2)

	if err := d.Draw(s, "\x1b[91ma", true); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	s.draws = nil

	for range 2 {
		if err := d.DrawAt(s, 1, 0, "\x1b[91mx\x1b[92my", true); err != nil {
			t.Fatalf("DrawAt: %v", err)
		}
	}

	want := []drawCall{
		{Positioned: true, Row: 1, Text: "xy", Pair: palette.PairDefault},
		{Positioned: true, Row: 1, Text: "xy", Pair: palette.PairDefault},
	}
	if diff := cmp.Diff(want, s.draws); diff != "" {
		t.Fatalf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if n := strings.Count(logs.String(), "falling back to plain text"); n != 1 {
		t.Fatalf("expected one exhaustion warning, got %d in %q", n, logs.String())
	}
}

func TestDispatcherPropagatesDrawErrors(t *testing.T) {
	boom := errors.New("boom")
	s := &recordingSurface{colors: true, drawErr: boom}
	d := newColorDispatcher(s, 0)

	if err := d.Draw(s, "\x1b[91ma\x1b[92mb", true); !errors.Is(err, boom) {
		t.Fatalf("expected draw error, got %v", err)
	}
	if len(s.draws) != 1 {
		t.Fatalf("expected drawing to stop after the first error, got %d calls", len(s.draws))
	}
}
