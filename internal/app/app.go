// Package app wires the terminal device, viewport controller, and prompt
// editor into the event loop: read one event, dispatch it through a small
// prefix-aware key switch, repaint, repeat until quit.
package app

import (
	"github.com/grovetools/jsonview/internal/logging"
	"github.com/grovetools/jsonview/internal/prompt"
	"github.com/grovetools/jsonview/internal/term"
	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
	"github.com/grovetools/jsonview/internal/viewport"
	"github.com/grovetools/jsonview/internal/vtree"
)

// Mode distinguishes ordinary key dispatch from the search prompt being
// edited.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

type searchSnapshot struct {
	query  string
	sel    *vtree.N
	start  vtree.L
	offset int
	down   bool
}

// App owns the whole running program: the terminal device, the tree and
// its viewport controller, and the search prompt.
type App struct {
	Dev    *term.Device
	Ctrl   *viewport.Controller
	Prompt *prompt.Editor

	mode              Mode
	searchForward     bool
	lastSearchForward bool
	preSearch         searchSnapshot
	pendingZ          bool
	quit              bool
}

// New builds an App over root, querying the device's current size for the
// initial viewport and reserving the bottom row for the status/prompt
// line.
func New(dev *term.Device, root *value.V, th theme.Theme) (*App, error) {
	width, height, err := dev.Size()
	if err != nil {
		return nil, err
	}
	canvasHeight := height - 1
	if canvasHeight < 1 {
		canvasHeight = 1
	}

	tree := vtree.New(root, th, width)
	ctrl := viewport.New(tree, th, width, canvasHeight)

	a := &App{Dev: dev, Ctrl: ctrl, lastSearchForward: true}
	a.Prompt = prompt.New(func(q string) {
		a.Ctrl.SetQuery(a.Dev, q)
	})
	return a, nil
}

// Run repaints the initial frame and then loops reading and dispatching
// events until a quit command or terminating signal arrives.
func (a *App) Run() error {
	log := logging.For("app")
	a.Ctrl.Repaint(a.Dev)
	a.Dev.Flush()

	for !a.quit {
		ev, err := a.Dev.ReadEvent()
		if err != nil {
			log.WithError(err).Error("read event")
			return err
		}
		a.dispatch(ev)
		if err := a.Dev.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) dispatch(ev term.Event) {
	switch ev.Kind {
	case term.EventResize:
		a.handleResize()
	case term.EventSignal:
		a.quit = true
	case term.EventKey:
		a.handleKey(ev.Key)
	case term.EventMouse:
		a.handleMouse(ev.Mouse)
	}
}

func (a *App) handleResize() {
	width, height, err := a.Dev.Size()
	if err != nil {
		return
	}
	canvasHeight := height - 1
	if canvasHeight < 1 {
		canvasHeight = 1
	}
	a.Ctrl.Resize(a.Dev, width, canvasHeight)
}

func (a *App) handleKey(k term.Key) {
	if a.mode == ModeSearch {
		a.handleSearchKey(k)
		return
	}
	a.handleNormalKey(k)
}

func (a *App) handleMouse(m term.MouseEvent) {
	switch {
	case m.WheelUp:
		a.Ctrl.Scroll(a.Dev, -3)
	case m.WheelDown:
		a.Ctrl.Scroll(a.Dev, 3)
	case !m.Release:
		a.Ctrl.Click(a.Dev, m.Y)
	}
}

func (a *App) beginSearch(forward bool) {
	a.preSearch = searchSnapshot{
		query:  a.Ctrl.Query,
		sel:    a.Ctrl.Sel,
		start:  a.Ctrl.Start,
		offset: a.Ctrl.Offset,
		down:   a.Ctrl.Down,
	}
	a.searchForward = forward
	a.mode = ModeSearch
	a.Prompt.Reset()
	a.drawPromptLine()
}

func (a *App) restoreSnapshot() {
	a.Ctrl.Query = a.preSearch.query
	a.Ctrl.Sel = a.preSearch.sel
	a.Ctrl.Start = a.preSearch.start
	a.Ctrl.Offset = a.preSearch.offset
	a.Ctrl.Down = a.preSearch.down
	a.Ctrl.Repaint(a.Dev)
}

func (a *App) drawPromptLine() {
	prefix := "/"
	if !a.searchForward {
		prefix = "?"
	}
	a.Dev.MoveTo(a.Ctrl.Height+1, 1)
	a.Dev.EraseToEOL()
	a.Dev.Print(prefix + a.Prompt.Text())
	a.Dev.MoveTo(a.Ctrl.Height+1, 1+len(prefix)+a.Prompt.Cursor())
}
