// Package window is the raylib frontend: a square window with grid lines,
// a border ring, the snake, the snack and a score readout.
package window

import (
	"snake-classic/game"
	"snake-classic/game/types"
	"snake-classic/ui"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	windowTitle   = "Snake"
	scoreFontSize = 30
)

var keyDirections = map[int32]types.Direction{
	rl.KeyUp:    types.Up,
	rl.KeyW:     types.Up,
	rl.KeyK:     types.Up,
	rl.KeyDown:  types.Down,
	rl.KeyS:     types.Down,
	rl.KeyJ:     types.Down,
	rl.KeyLeft:  types.Left,
	rl.KeyA:     types.Left,
	rl.KeyH:     types.Left,
	rl.KeyRight: types.Right,
	rl.KeyD:     types.Right,
	rl.KeyL:     types.Right,
}

type Options struct {
	WindowSize int
	Rows       int
	LineWidth  int
	Palette    ui.Palette
}

// Renderer owns the raylib window. raylib must be driven from the main
// goroutine, so all methods must be called from there.
type Renderer struct {
	layout  Layout
	palette ui.Palette
	logger  *log.Logger
	quit    bool
}

func NewRenderer(opts Options, logger *log.Logger) *Renderer {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.WindowSize), int32(opts.WindowSize), windowTitle)
	// Esc is handled as a quit key like q, not as raylib's implicit close.
	rl.SetExitKey(rl.KeyNull)

	logger.Debug("window opened", "size", opts.WindowSize, "rows", opts.Rows)
	return &Renderer{
		layout:  NewLayout(opts.WindowSize, opts.Rows, opts.LineWidth),
		palette: opts.Palette,
		logger:  logger,
	}
}

// PollInput drains raylib's key queue in press order.
func (r *Renderer) PollInput() []types.Direction {
	var dirs []types.Direction
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if key == rl.KeyEscape || key == rl.KeyQ {
			r.quit = true
			continue
		}
		if d, ok := keyDirections[key]; ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (r *Renderer) QuitRequested() bool {
	if rl.WindowShouldClose() {
		r.quit = true
	}
	return r.quit
}

func (r *Renderer) Render(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(toRL(r.palette.Background))

	line := toRL(r.palette.Line)
	for _, seg := range r.layout.GridLines() {
		rl.DrawLineEx(
			rl.Vector2{X: seg.X1, Y: seg.Y1},
			rl.Vector2{X: seg.X2, Y: seg.Y2},
			r.layout.LineWidth, line)
	}

	for _, c := range ui.Scene(g, r.palette) {
		x, y, w, h := r.layout.CellRect(c.Pos)
		rl.DrawRectangle(x, y, w, h, toRL(c.Color))
	}

	rl.DrawText(ui.ScoreText(g), 0, 0, scoreFontSize, toRL(r.palette.Text))
	rl.EndDrawing()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func toRL(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
