package markup

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kk-code-lab/cellfit/internal/palette"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		fg, bg palette.Color
		want   string
	}{
		{palette.Red, palette.Unset, "\x1b[91mx\x1b[0m"},
		{palette.White, palette.Blue, "\x1b[97;104mx\x1b[0m"},
		{palette.Unset, palette.Unset, "\x1b[0mx\x1b[0m"},
	}
	for _, tt := range tests {
		if got := Colorize("x", tt.fg, tt.bg); got != tt.want {
			t.Fatalf("Colorize(x, %s, %s)=%q want %q", tt.fg, tt.bg, got, tt.want)
		}
	}
}

func TestEncodeInvertsParse(t *testing.T) {
	inputs := []string{
		"plain",
		"a\x1b[91mb\x1b[0mc",
		"\x1b[92;105mgreen on magenta\x1b[0m",
	}
	for _, in := range inputs {
		runs := Parse(in)
		if diff := cmp.Diff(runs, Parse(Encode(runs))); diff != "" {
			t.Fatalf("Parse(Encode(Parse(%q))) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestSlice(t *testing.T) {
	runs := Parse("ab\x1b[91mcdé\x1b[0mfg")

	tests := []struct {
		name     string
		from, to int
		want     []Run
	}{
		{
			name: "inside the leading run",
			from: 0, to: 1,
			want: []Run{{Text: "a"}},
		},
		{
			name: "across a code boundary",
			from: 1, to: 4,
			want: []Run{
				{Text: "b"},
				{Text: "cd", Code: Code{Fg: palette.Red}, HasCode: true},
			},
		},
		{
			name: "starting inside a colored run keeps its code",
			from: 3, to: 7,
			want: []Run{
				{Text: "dé", Code: Code{Fg: palette.Red}, HasCode: true},
				{Text: "fg", HasCode: true},
			},
		},
		{
			name: "empty range",
			from: 4, to: 4,
			want: nil,
		},
		{
			name: "range past the end",
			from: 5, to: 99,
			want: []Run{{Text: "fg", HasCode: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(runs, tt.from, tt.to)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Slice(%d, %d) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}
