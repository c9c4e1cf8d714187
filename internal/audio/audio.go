// Package audio defines the game's sound effects and the player the
// game logic talks to. Playback is fire and forget: callers never wait
// for a sound and never see an error. Device backends live in
// subpackages so the game packages build without them.
package audio

// Sample identifies a sound effect.
type Sample int

const (
	SampleHit    Sample = iota // Ball hits an obstacle
	SampleTeeOff               // Stroke accepted
	SampleHoled                // Ball drops into the cup
)

// String returns the sample name.
func (s Sample) String() string {
	switch s {
	case SampleHit:
		return "hit"
	case SampleTeeOff:
		return "tee-off"
	case SampleHoled:
		return "holed"
	default:
		return "unknown"
	}
}

// Player plays sound effects.
type Player interface {
	Play(Sample)
}

// Nop discards every sample.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Sample) {}

// Resetter is implemented by players that turn themselves off after a
// device failure. Reset turns them back on; a new match calls it so a
// failure only silences the match it happened in.
type Resetter interface {
	Reset()
}
