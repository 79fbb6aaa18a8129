package game

import (
	"context"
	"io"
	"time"

	"snake-classic/game/manager"
	"snake-classic/game/types"

	"github.com/charmbracelet/log"
)

// Frontend draws the game and collects player input between ticks.
type Frontend interface {
	// PollInput returns the directions pressed since the last call, oldest
	// first. It never blocks.
	PollInput() []types.Direction
	Render(g *Game)
	QuitRequested() bool
}

// Sounds plays cues for game events.
type Sounds interface {
	Eat()
	Lose()
	Win()
}

type LoopResult struct {
	Status manager.Status
	Cause  manager.CollisionType
	Score  int
	Ticks  int
	Quit   bool
}

type Loop struct {
	Game     *Game
	Frontend Frontend
	Sounds   Sounds
	Logger   *log.Logger
}

// Run advances the game once per value received on ticks until the game is
// won or lost, the frontend asks to quit, or ctx is cancelled. Quit requests
// are only observed between ticks.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time) (LoopResult, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", l.Game.UUID)
	logger.Info("game started", "rows", l.Game.Grid.Rows, "food", l.Game.GetFood().Pos)

	res := LoopResult{Status: l.Game.Status(), Score: l.Game.Score()}
	for {
		select {
		case <-ctx.Done():
			logger.Info("game interrupted", "reason", ctx.Err())
			res.Quit = true
			return res, nil
		case <-ticks:
		}

		if l.Frontend.QuitRequested() {
			logger.Info("quit requested", "score", l.Game.Score())
			res.Quit = true
			return res, nil
		}

		events := l.Frontend.PollInput()
		tr, err := l.Game.Tick(events)
		res.Ticks++
		res.Status, res.Cause, res.Score = tr.Status, tr.Cause, tr.Score
		if err != nil {
			logger.Error("tick failed", "step", l.Game.Steps, "err", err)
			return res, err
		}

		if tr.Ate {
			logger.Debug("snack eaten", "score", tr.Score, "next", l.Game.GetFood().Pos)
		}
		// Lose and Win cues may block until they finish playing.
		l.Frontend.Render(l.Game)
		l.playCue(tr)

		if tr.Status.Terminal() {
			logger.Info("game over", "status", tr.Status, "cause", tr.Cause, "score", tr.Score, "steps", l.Game.Steps)
			return res, nil
		}
	}
}

func (l *Loop) playCue(tr TickResult) {
	if l.Sounds == nil {
		return
	}
	switch tr.Status {
	case manager.Lost:
		l.Sounds.Lose()
	case manager.Won:
		l.Sounds.Win()
	default:
		if tr.Ate {
			l.Sounds.Eat()
		}
	}
}
