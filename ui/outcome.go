package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/manager"

	"github.com/charmbracelet/lipgloss"
)

var (
	lostStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e7471d"))
	wonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#aad751"))
	quitStyle = lipgloss.NewStyle().Faint(true)
)

// OutcomeMessage is the line printed when the session ends. A session that
// stopped while still playing without a quit request was ended by an error.
func OutcomeMessage(res game.LoopResult) string {
	switch {
	case res.Status == manager.Won:
		return "You won. Congratulations"
	case res.Status == manager.Lost:
		return fmt.Sprintf("You lost. Score: %d", res.Score)
	case res.Quit:
		return fmt.Sprintf("You quit. Score: %d", res.Score)
	default:
		return fmt.Sprintf("Game aborted. Score: %d", res.Score)
	}
}

// RenderOutcome styles OutcomeMessage for the terminal. lipgloss drops the
// styling when stdout is not a color terminal.
func RenderOutcome(res game.LoopResult) string {
	msg := OutcomeMessage(res)
	switch res.Status {
	case manager.Won:
		return wonStyle.Render(msg)
	case manager.Lost:
		return lostStyle.Render(msg)
	default:
		return quitStyle.Render(msg)
	}
}
