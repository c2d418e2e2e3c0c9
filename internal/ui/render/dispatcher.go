package render

import (
	"errors"
	"sync"

	"github.com/kk-code-lab/cellfit/internal/log"
	"github.com/kk-code-lab/cellfit/internal/markup"
	"github.com/kk-code-lab/cellfit/internal/palette"
	"github.com/kk-code-lab/cellfit/internal/ui/surface"
)

// Dispatcher draws color markup onto surfaces. A dispatcher without a
// registry never colors: color support was not activated.
type Dispatcher struct {
	registry      *palette.Registry
	exhaustedOnce sync.Once
}

// NewDispatcher returns a dispatcher resolving pairs through registry, which
// may be nil.
func NewDispatcher(registry *palette.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// ColorActive reports whether color support was activated.
func (d *Dispatcher) ColorActive() bool {
	return d.registry != nil
}

type position struct {
	row, col int
}

type styledRun struct {
	text string
	pair palette.Pair
}

// DrawAt draws text with its first run placed at row, col.
func (d *Dispatcher) DrawAt(s surface.Surface, row, col int, text string, styled bool) error {
	return d.draw(s, &position{row: row, col: col}, text, styled)
}

// Draw draws text from the surface's cursor.
func (d *Dispatcher) Draw(s surface.Surface, text string, styled bool) error {
	return d.draw(s, nil, text, styled)
}

func (d *Dispatcher) draw(s surface.Surface, pos *position, text string, styled bool) error {
	if styled && d.registry != nil && s.HasColors() {
		runs, err := d.resolve(markup.Parse(text))
		if err == nil {
			return drawRuns(s, pos, runs)
		}
		if !errors.Is(err, palette.ErrPairsExhausted) {
			return err
		}
		d.exhaustedOnce.Do(func() {
			log.Warn("color pairs exhausted, falling back to plain text",
				"capacity", d.registry.Capacity(), "err", err)
		})
	}
	return drawText(s, pos, markup.Strip(text), palette.PairDefault)
}

// resolve binds every non-empty run to a pair before anything is drawn, so
// exhaustion never leaves a half-colored line behind.
func (d *Dispatcher) resolve(runs []markup.Run) ([]styledRun, error) {
	out := make([]styledRun, 0, len(runs))
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		pair := palette.PairDefault
		if run.HasCode && !run.Code.IsDefault() {
			var err error
			pair, err = d.registry.Resolve(run.Code.Fg, run.Code.Bg)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, styledRun{text: run.Text, pair: pair})
	}
	return out, nil
}

func drawRuns(s surface.Surface, pos *position, runs []styledRun) error {
	if len(runs) == 0 {
		return drawText(s, pos, "", palette.PairDefault)
	}
	if err := drawText(s, pos, runs[0].text, runs[0].pair); err != nil {
		return err
	}
	for _, run := range runs[1:] {
		if err := s.Draw(run.text, run.pair); err != nil {
			return err
		}
	}
	return nil
}

func drawText(s surface.Surface, pos *position, text string, pair palette.Pair) error {
	if pos != nil {
		return s.DrawAt(pos.row, pos.col, text, pair)
	}
	return s.Draw(text, pair)
}
