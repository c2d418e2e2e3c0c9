package markup

import (
	"strconv"
	"strings"

	"github.com/kk-code-lab/cellfit/internal/palette"
)

// Sequence renders c as an escape sequence. The default code renders as Reset.
func (c Code) Sequence() string {
	var params []string
	if idx, ok := c.Fg.Index(); ok {
		params = append(params, strconv.Itoa(fgBase+idx))
	}
	if idx, ok := c.Bg.Index(); ok {
		params = append(params, strconv.Itoa(bgBase+idx))
	}
	if len(params) == 0 {
		return Reset
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// Colorize wraps text in the escape for (fg, bg) followed by Reset.
func Colorize(text string, fg, bg palette.Color) string {
	return Code{Fg: fg, Bg: bg}.Sequence() + text + Reset
}

// Encode turns runs back into markup. Runs without a code are written as
// bare text.
func Encode(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		if run.HasCode {
			b.WriteString(run.Code.Sequence())
		}
		b.WriteString(run.Text)
	}
	return b.String()
}

// PlainText concatenates the text of runs.
func PlainText(runs []Run) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.Text)
	}
	return b.String()
}

// Slice returns the runs covering plain-text rune offsets [from, to). Each
// piece keeps the code of the run it was cut from; empty pieces are dropped.
func Slice(runs []Run, from, to int) []Run {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return nil
	}

	var out []Run
	pos := 0
	for _, run := range runs {
		if pos >= to {
			break
		}
		n := len([]rune(run.Text))
		runStart, runEnd := pos, pos+n
		pos = runEnd
		if runEnd <= from || n == 0 {
			continue
		}

		lo := max(from, runStart) - runStart
		hi := min(to, runEnd) - runStart
		text := run.Text
		if lo > 0 || hi < n {
			text = string([]rune(run.Text)[lo:hi])
		}
		out = append(out, Run{Text: text, Code: run.Code, HasCode: run.HasCode})
	}
	return out
}
