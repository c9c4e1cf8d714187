// Package match sequences a round of golf: whose turn it is, which hole is
// being played, what the screen should show and when to move on.
package match

import "errors"

// State is the logical screen of a match.
type State int

const (
	StateShowIntro State = iota
	StatePlaceBall
	StatePlay
	StateShowStandings
	StateShowWinner
	StateReturnToMenu
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateShowIntro:
		return "ShowIntro"
	case StatePlaceBall:
		return "PlaceBall"
	case StatePlay:
		return "Play"
	case StateShowStandings:
		return "ShowStandings"
	case StateShowWinner:
		return "ShowWinner"
	case StateReturnToMenu:
		return "ReturnToMenu"
	default:
		return "Unknown"
	}
}

// MaxPlayers is the largest supported number of players.
const MaxPlayers = 4

var (
	// ErrNoPlayers is returned when a match is started without players.
	ErrNoPlayers = errors.New("match: at least one player is required")
	// ErrTooManyPlayers is returned for more than MaxPlayers players.
	ErrTooManyPlayers = errors.New("match: too many players")
)
