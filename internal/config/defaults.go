package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the hardcoded golf configuration.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Physics: PhysicsConfig{
			Friction:           0.987,
			Restitution:        0.75,
			StopSpeedSq:        0.42,
			RingRadius:         3,
			RingPoints:         9,
			NormalRadius:       4,
			NormalPoints:       45,
			UncollideSteps:     9,
			CupSnapSq:          9,
			CupSteerSq:         49,
			CupPullSq:          81,
			CupSteerMaxSpeedSq: 16,
			SteerFactor:        2.5,
			PullFactor:         2,
		},
		Stroke: StrokeConfig{
			MaxBallDistance: 30,
			ReferenceMillis: 24,
			MinImpulseSq:    2,
			MercyStrokes:    9,
		},
		Timing: TimingConfig{
			TickRate:          20,
			MessageSeconds:    2,
			DoubleClickMillis: 500,
		},
		Playfield: PlayfieldConfig{
			Width:  240,
			Height: 144,
		},
		Palette: PaletteConfig{
			Lawn:    "#1e5a1e",
			Fairway: "#3cb43c",
			Down:    "#b4a03c",
			Up:      "#3c8cb4",
			Cup:     "#101010",
			Tee:     "#78d278",
			Wall:    "#8c5a32",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGolfYAML
}
