package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearStatusMsg clears the status line if it still shows status seq.
type clearStatusMsg struct{ seq int }

func clearStatusAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
