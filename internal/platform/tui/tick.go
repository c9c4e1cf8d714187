// Package tui provides the Bubble Tea integration for the golf game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-golf/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick chain so ticks of an abandoned game are dropped.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// frameInterval returns the time between two ticks at the given rate.
func frameInterval(tickRate int) time.Duration {
	return config.TimingConfig{TickRate: tickRate}.FrameInterval()
}

// frameBudget returns how long to wait before the next tick after a frame
// that took elapsed. An overrunning frame starts the next one immediately.
func frameBudget(interval, elapsed time.Duration) time.Duration {
	return max(interval-elapsed, 0)
}

// tickCmd returns a Bubble Tea command that sends a tick message after d.
func tickCmd(d time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
