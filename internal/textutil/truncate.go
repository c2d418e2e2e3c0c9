package textutil

import "fmt"

// Ellipsis marks truncated text. It is three columns wide.
const Ellipsis = "..."

const ellipsisWidth = 3

// Truncate shortens text to budget columns, replacing the tail with Ellipsis.
// Text that already fits is returned unchanged. Budgets narrower than the
// ellipsis are rejected.
func Truncate(text string, budget int) (string, error) {
	if budget < ellipsisWidth {
		return "", fmt.Errorf("truncate: %w: %d is narrower than the ellipsis", ErrInvalidWidth, budget)
	}
	if StringWidth(text) <= budget {
		return text, nil
	}

	available := budget - ellipsisWidth
	if available == 0 {
		return Ellipsis, nil
	}
	head := segment(text, available)[0]
	if head.Width > available {
		return Ellipsis, nil
	}
	return head.Text + Ellipsis, nil
}
