// Package markup parses inline color escapes (ESC '[' params 'm') into runs
// of plain text tagged with the colors they should be drawn in.
package markup

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/kk-code-lab/cellfit/internal/palette"
)

const (
	// Reset returns the terminal to its default attribute.
	Reset = "\x1b[0m"
)

// Parameter bands. 30 and 40 are accepted as aliases for black so text
// produced by older tooling keeps rendering.
const (
	fgBase     = 90
	bgBase     = 100
	fgBlackAlt = 30
	bgBlackAlt = 40
)

// Code is a decoded color escape. Zero values mean "terminal default".
type Code struct {
	Fg, Bg palette.Color
}

// IsDefault reports whether c leaves both colors unset.
func (c Code) IsDefault() bool {
	return c.Fg == palette.Unset && c.Bg == palette.Unset
}

// Run is a piece of plain text and the code that precedes it. The leading
// run of a string has HasCode false.
type Run struct {
	Text    string
	Code    Code
	HasCode bool
}

// Parse splits text into runs at every color escape. The result always has
// at least one element; empty runs are kept so run boundaries mirror the
// escapes in the input. Escapes that are not color codes are dropped without
// splitting the surrounding text.
func Parse(text string) []Run {
	runs := []Run{{}}
	if strings.IndexByte(text, ansi.ESC) < 0 {
		runs[0].Text = text
		return runs
	}

	var b strings.Builder
	b.Grow(len(text))
	p := ansi.NewParser()
	state := ansi.NormalState
	for len(text) > 0 {
		seq, _, n, newState := ansi.DecodeSequence(text, state, p)
		text = text[n:]
		state = newState
		if !isSequence(seq) {
			b.WriteString(seq)
			continue
		}
		if state != ansi.NormalState || !isColorSequence(seq, p) {
			continue
		}
		runs[len(runs)-1].Text = b.String()
		b.Reset()
		runs = append(runs, Run{Code: decode(p.Params()), HasCode: true})
	}
	runs[len(runs)-1].Text = b.String()
	return runs
}

// Strip removes every escape sequence from text.
func Strip(text string) string {
	if strings.IndexByte(text, ansi.ESC) < 0 {
		return text
	}
	return ansi.Strip(text)
}

func isSequence(seq string) bool {
	switch seq[0] {
	case ansi.ESC, ansi.CSI, ansi.DCS, ansi.OSC, ansi.APC, ansi.SOS, ansi.PM:
		return true
	}
	return false
}

// isColorSequence reports whether seq is a plain CSI 'm' with no private
// marker, intermediates or sub-parameters.
func isColorSequence(seq string, p *ansi.Parser) bool {
	if !ansi.HasCsiPrefix(seq) {
		return false
	}
	cmd := ansi.Cmd(p.Command())
	if cmd.Final() != 'm' || cmd.Prefix() != 0 || cmd.Intermediate() != 0 {
		return false
	}
	for _, param := range p.Params() {
		if param.HasMore() {
			return false
		}
	}
	return true
}

// decode maps escape parameters to colors. Later parameters win within a
// band; parameters outside both bands are ignored.
func decode(params ansi.Params) Code {
	var code Code
	params.ForEach(-1, func(_, n int, _ bool) {
		switch {
		case n >= fgBase && n < fgBase+8:
			code.Fg, _ = palette.FromIndex(n - fgBase)
		case n >= bgBase && n < bgBase+8:
			code.Bg, _ = palette.FromIndex(n - bgBase)
		case n == fgBlackAlt:
			code.Fg = palette.Black
		case n == bgBlackAlt:
			code.Bg = palette.Black
		}
	})
	return code
}
