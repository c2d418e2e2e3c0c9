package textutil

import "github.com/mattn/go-runewidth"

// East-Asian ambiguous runes are treated as narrow so layout does not depend
// on the locale of the process.
var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// RuneWidth reports how many terminal columns r occupies: 0 for combining and
// zero-width marks, 2 for wide and fullwidth runes, 1 for everything else.
func RuneWidth(r rune) int {
	w := widthCondition.RuneWidth(r)
	switch {
	case w < 0:
		return 0
	case w > 2:
		return 2
	}
	return w
}

// StringWidth reports the printable width of text as the sum of its rune widths.
func StringWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += RuneWidth(ru)
	}
	return width
}
