// Package terminal is a tcell frontend that draws the board with two
// character columns per cell and reads arrow, WASD and hjkl keys.
package terminal

import (
	"sync"

	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	cellWidth  = 2
	headerRows = 1
	eventQueue = 64
)

var keyDirections = map[tcell.Key]types.Direction{
	tcell.KeyUp:    types.Up,
	tcell.KeyDown:  types.Down,
	tcell.KeyLeft:  types.Left,
	tcell.KeyRight: types.Right,
}

var runeDirections = map[rune]types.Direction{
	'w': types.Up,
	'k': types.Up,
	's': types.Down,
	'j': types.Down,
	'a': types.Left,
	'h': types.Left,
	'd': types.Right,
	'l': types.Right,
}

var glyphs = map[ui.CellKind][cellWidth]rune{
	ui.CellBorder: {'█', '█'},
	ui.CellFood:   {'●', ' '},
	ui.CellBody:   {'█', '█'},
	ui.CellHead:   {'█', '█'},
}

type Terminal struct {
	screen  tcell.Screen
	palette ui.Palette
	logger  *log.Logger
	events  chan tcell.Event
	done    chan struct{}
	exited  chan struct{}

	pending []types.Direction
	quit    bool

	finiOnce sync.Once
}

// New opens the real terminal.
func New(palette ui.Palette, logger *log.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	return NewWithScreen(screen, palette, logger)
}

// NewWithScreen initialises screen and starts reading its events.
func NewWithScreen(screen tcell.Screen, palette ui.Palette, logger *log.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising screen")
	}
	screen.HideCursor()

	t := &Terminal{
		screen:  screen,
		palette: palette,
		logger:  logger,
		events:  make(chan tcell.Event, eventQueue),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards screen events until the screen is finalised or the
// terminal is closed, even if nobody drains events any more.
func (t *Terminal) readEvents() {
	defer close(t.exited)
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// pump moves everything queued by readEvents into pending without blocking.
func (t *Terminal) pump() {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.quit = true
				return
			}
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.quit = true
			return
		case tcell.KeyRune:
			r := ev.Rune()
			if r == 'q' || r == 'Q' {
				t.quit = true
			} else if d, ok := runeDirections[r]; ok {
				t.pending = append(t.pending, d)
			}
			return
		}
		if d, ok := keyDirections[ev.Key()]; ok {
			t.pending = append(t.pending, d)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Terminal) PollInput() []types.Direction {
	t.pump()
	dirs := t.pending
	t.pending = nil
	return dirs
}

func (t *Terminal) QuitRequested() bool {
	t.pump()
	return t.quit
}

func (t *Terminal) Render(g *game.Game) {
	bg := tcell.StyleDefault.Background(toTcell(t.palette.Background))
	t.screen.Fill(' ', bg)

	rows := g.Grid.Rows
	grid := bg.Foreground(toTcell(t.palette.Line))
	for y := 1; y < rows-1; y++ {
		for x := 1; x < rows-1; x++ {
			t.screen.SetContent(x*cellWidth, y+headerRows, '·', nil, grid)
		}
	}

	for _, c := range ui.Scene(g, t.palette) {
		style := bg.Foreground(toTcell(c.Color))
		glyph := glyphs[c.Kind]
		for i := 0; i < cellWidth; i++ {
			t.screen.SetContent(c.Pos.X*cellWidth+i, c.Pos.Y+headerRows, glyph[i], nil, style)
		}
	}

	text := bg.Foreground(toTcell(t.palette.Text)).Bold(true)
	for i, r := range ui.ScoreText(g) {
		t.screen.SetContent(i, 0, r, nil, text)
	}
	t.screen.Show()
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	t.finiOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
