package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/cellfit/internal/config"
	"github.com/kk-code-lab/cellfit/internal/log"
	"github.com/kk-code-lab/cellfit/internal/palette"
	statepkg "github.com/kk-code-lab/cellfit/internal/state"
	inputui "github.com/kk-code-lab/cellfit/internal/ui/input"
	renderui "github.com/kk-code-lab/cellfit/internal/ui/render"
	"github.com/kk-code-lab/cellfit/internal/ui/surface"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	win        *surface.Window
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// NewApplication opens the terminal and prepares doc for viewing.
func NewApplication(doc *statepkg.Document, cfg config.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	app, err := newApplicationWithScreen(screen, doc, cfg)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplicationWithScreen(screen tcell.Screen, doc *statepkg.Document, cfg config.Config) (*Application, error) {
	colors := cfg.Render.Color && screen.Colors() > 0
	win := surface.NewWindow(screen, colors)

	var registry *palette.Registry
	if colors {
		registry = palette.NewRegistry(win, cfg.Render.MaxPairs)
	}
	dispatcher := renderui.NewDispatcher(registry)
	log.Debug("color support", "active", dispatcher.ColorActive(), "screen_colors", screen.Colors())

	w, h := screen.Size()
	state := statepkg.NewAppState(doc, w, h, cfg.Render.Wrap, dispatcher.ColorActive())
	if err := state.Relayout(); err != nil {
		// A terminal too narrow to lay out is reported, not fatal.
		state.LastError = err
	}

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:   screen,
		win:      win,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(win, dispatcher),
		input:    inputHandler,
		actionCh: actionCh,
	}, nil
}

// State returns the current view state.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	close(app.actionCh)
	app.screen.Fini()
	return nil
}
