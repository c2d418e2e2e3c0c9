package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SCROLL ACTIONS =====

type ScrollUpAction struct{}
type ScrollDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type ToggleWrapAction struct{}
type ToggleColorAction struct{}
type ToggleHelpAction struct{}

// ===== MISC ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
