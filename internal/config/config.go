// Package config provides YAML-based configuration loading for the golf
// game: physics constants, stroke rules, timing, playfield size, palette
// colors and audio settings.
package config

import "time"

// GolfConfig contains all configuration for a golf session.
type GolfConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Stroke    StrokeConfig    `yaml:"stroke"`
	Timing    TimingConfig    `yaml:"timing"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Palette   PaletteConfig   `yaml:"palette"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PhysicsConfig defines the ball simulation constants.
// Distances ending in _sq are squared pixel distances.
type PhysicsConfig struct {
	Friction           float64 `yaml:"friction"`
	Restitution        float64 `yaml:"restitution"`
	StopSpeedSq        float64 `yaml:"stop_speed_sq"`
	RingRadius         float64 `yaml:"ring_radius"`
	RingPoints         int     `yaml:"ring_points"`
	NormalRadius       float64 `yaml:"normal_radius"`
	NormalPoints       int     `yaml:"normal_points"`
	UncollideSteps     int     `yaml:"uncollide_steps"`
	CupSnapSq          float64 `yaml:"cup_snap_sq"`
	CupSteerSq         float64 `yaml:"cup_steer_sq"`
	CupPullSq          float64 `yaml:"cup_pull_sq"`
	CupSteerMaxSpeedSq float64 `yaml:"cup_steer_max_speed_sq"`
	SteerFactor        float64 `yaml:"steer_factor"`
	PullFactor         float64 `yaml:"pull_factor"`
}

// StrokeConfig defines how swipes become strokes.
type StrokeConfig struct {
	MaxBallDistance float64 `yaml:"max_ball_distance"` // Swipe line must pass this close to the ball
	ReferenceMillis int     `yaml:"reference_millis"`  // Swipes faster than this keep full power
	MinImpulseSq    float64 `yaml:"min_impulse_sq"`
	MercyStrokes    int     `yaml:"mercy_strokes"` // Turn ends once strokes exceed this
}

// TimingConfig defines the frame clock and UI timings.
type TimingConfig struct {
	TickRate          int `yaml:"tick_rate"`
	MessageSeconds    int `yaml:"message_seconds"`
	DoubleClickMillis int `yaml:"double_click_millis"`
}

// MessageFrames returns how many frames a message stays on screen.
func (t TimingConfig) MessageFrames() int {
	return t.TickRate * t.MessageSeconds
}

// DoubleClickWindow returns the maximum gap between two clicks of a double click.
func (t TimingConfig) DoubleClickWindow() time.Duration {
	return time.Duration(t.DoubleClickMillis) * time.Millisecond
}

// FrameInterval returns the target duration of one frame.
func (t TimingConfig) FrameInterval() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 20
	}
	return time.Second / time.Duration(t.TickRate)
}

// PlayfieldConfig defines the course raster size in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaletteConfig holds the hex colors used to paint and classify a hole.
// Fairway, Down, Up, Cup and Tee are non-colliding; Lawn and Wall block.
type PaletteConfig struct {
	Lawn    string `yaml:"lawn"`
	Fairway string `yaml:"fairway"`
	Down    string `yaml:"down"`
	Up      string `yaml:"up"`
	Cup     string `yaml:"cup"`
	Tee     string `yaml:"tee"`
	Wall    string `yaml:"wall"`
}

// AudioConfig defines sound effect settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Linear gain in [0,1], 0 is silent
}
