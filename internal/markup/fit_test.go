package markup

import (
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/kk-code-lab/cellfit/internal/textutil"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "\x1b[91mred\x1b[0m", width: 3, want: "\x1b[91mred\x1b[0m"},
		{name: "plain clipped", text: "abcdefgh", width: 5, want: "ab\x1b[0m..."},
		{name: "colored clipped", text: "\x1b[94mabcdefgh", width: 5, want: "\x1b[94mab\x1b[0m..."},
		{name: "only ellipsis", text: "abcdefgh", width: 3, want: "\x1b[0m..."},
		{name: "narrow", text: "abcdefgh", width: 2, want: "ab"},
		{name: "wide glyph does not fit", text: "日本", width: 1, want: ""},
		{name: "cut across runs", text: "ab\x1b[92mcdefgh", width: 6, want: "ab\x1b[92mc\x1b[0m..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fit(tt.text, tt.width)
			if err != nil {
				t.Fatalf("Fit: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Fit(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestFitZeroWidth(t *testing.T) {
	if got, err := Fit("", 0); err != nil || got != "" {
		t.Fatalf("empty text at width 0 = %q, %v", got, err)
	}
	if _, err := Fit("x", 0); !errors.Is(err, textutil.ErrInvalidWidth) {
		t.Fatalf("expected ErrInvalidWidth, got %v", err)
	}
}

func TestFitCountsLayoutColumns(t *testing.T) {
	// The joined pair is two wide runes to the layout but one 2-cell grapheme to ansi.
	text := "ab\U0001F469\u200d\U0001F467"
	if got := textutil.StringWidth(text); got != 6 {
		t.Fatalf("layout width = %d, want 6", got)
	}
	if got := ansi.Truncate(text, 4, textutil.Ellipsis); got != text {
		t.Fatalf("ansi.Truncate clipped %q to %q", text, got)
	}

	got, err := Fit(text, 4)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if want := "a\x1b[0m..."; got != want {
		t.Fatalf("Fit(%q, 4) = %q, want %q", text, got, want)
	}
}
