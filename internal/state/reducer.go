package state

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct{}

// NewStateReducer creates a new reducer
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies action to state in place and returns it. Layout errors are
// also recorded in LastError so the status line can show them.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== SCROLLING =====

	case ScrollUpAction:
		return r.scrollTo(state, state.ScrollOffset-1)

	case ScrollDownAction:
		return r.scrollTo(state, state.ScrollOffset+1)

	case ScrollPageUpAction:
		page := state.BodyHeight()
		if page <= 0 {
			return state, nil
		}
		return r.scrollTo(state, state.ScrollOffset-page)

	case ScrollPageDownAction:
		page := state.BodyHeight()
		if page <= 0 {
			return state, nil
		}
		return r.scrollTo(state, state.ScrollOffset+page)

	case ScrollToStartAction:
		return r.scrollTo(state, 0)

	case ScrollToEndAction:
		return r.scrollTo(state, state.MaxScroll())

	// ===== VIEW =====

	case ResizeAction:
		if a.Width == state.ScreenWidth && a.Height == state.ScreenHeight {
			return state, nil
		}
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		return r.relayout(state)

	case ToggleWrapAction:
		state.Wrap = !state.Wrap
		return r.relayout(state)

	case ToggleColorAction:
		state.Styled = !state.Styled
		return state, nil

	case ToggleHelpAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case QuitAction:
		return state, nil
	}

	return state, nil
}

func (r *StateReducer) scrollTo(state *AppState, offset int) (*AppState, error) {
	state.ScrollOffset = offset
	state.clampScroll()
	return state, nil
}

func (r *StateReducer) relayout(state *AppState) (*AppState, error) {
	err := state.Relayout()
	state.LastError = err
	return state, err
}
