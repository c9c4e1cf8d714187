package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/config"
)

func TestStroke(t *testing.T) {
	cfg := config.DefaultGolfConfig().Stroke
	ball := r2.Vec{X: 100, Y: 100}

	tests := []struct {
		name       string
		start, end r2.Vec
		millis     int
		want       r2.Vec
		ok         bool
	}{
		{"fast swipe through ball", r2.Vec{X: 80, Y: 100}, r2.Vec{X: 120, Y: 100}, 10, r2.Vec{X: 20, Y: 0}, true},
		{"slow swipe scaled down", r2.Vec{X: 80, Y: 100}, r2.Vec{X: 120, Y: 100}, 48, r2.Vec{X: 10, Y: 0}, true},
		{"slanted line passing near ball", r2.Vec{X: 100, Y: 70}, r2.Vec{X: 110, Y: 130}, 24, r2.Vec{X: 180.0 / 37, Y: 1080.0 / 37}, true},
		{"diagonal", r2.Vec{X: 90, Y: 90}, r2.Vec{X: 110, Y: 110}, 24, r2.Vec{X: 10, Y: 10}, true},
		{"too far from ball", r2.Vec{X: 80, Y: 140}, r2.Vec{X: 120, Y: 140}, 10, r2.Vec{}, false},
		{"stops before ball", r2.Vec{X: 80, Y: 100}, r2.Vec{X: 95, Y: 100}, 10, r2.Vec{}, false},
		{"too weak", r2.Vec{X: 99, Y: 100}, r2.Vec{X: 101, Y: 100}, 10, r2.Vec{}, false},
		{"zero length", r2.Vec{X: 90, Y: 90}, r2.Vec{X: 90, Y: 90}, 10, r2.Vec{}, false},
		{"starts at ball", r2.Vec{X: 100, Y: 100}, r2.Vec{X: 130, Y: 100}, 10, r2.Vec{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Stroke(cfg, ball, tc.start, tc.end, tc.millis)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.InDelta(t, tc.want.X, got.X, 1e-9)
				assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			}
		})
	}
}
