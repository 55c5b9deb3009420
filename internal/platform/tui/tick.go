// Package tui provides the Bubble Tea host: the game loop, key bindings,
// colored screen rendering and the mode picker.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the host tick period for the given rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedMillis returns the time between two ticks. The first tick of a
// session has no predecessor and counts as one nominal period.
func elapsedMillis(prev, now time.Time, tickRate int) int64 {
	if prev.IsZero() || now.Before(prev) {
		return tickInterval(tickRate).Milliseconds()
	}
	return now.Sub(prev).Milliseconds()
}
