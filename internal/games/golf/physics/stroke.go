package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/config"
)

// Stroke converts a swipe into an impulse for a ball at rest at ball.
//
// The swipe line from start to end must pass within MaxBallDistance of the
// ball, and the swipe must continue past the point closest to the ball.
// The impulse is the distance from the swipe start to that point, scaled
// down for swipes slower than ReferenceMillis. Impulses not stronger than
// MinImpulseSq are rejected.
func Stroke(cfg config.StrokeConfig, ball, start, end r2.Vec, elapsedMillis int) (r2.Vec, bool) {
	v := r2.Sub(end, start)
	n := r2.Vec{X: -v.Y, Y: v.X}
	d := v.X*n.Y - v.Y*n.X
	if d == 0 {
		return r2.Vec{}, false
	}

	rel := r2.Sub(ball, start)
	t := (rel.X*n.Y - rel.Y*n.X) / d
	foot := r2.Add(r2.Scale(t, v), start)

	if r2.Norm2(r2.Sub(ball, foot)) >= cfg.MaxBallDistance*cfg.MaxBallDistance {
		return r2.Vec{}, false
	}
	reach := r2.Norm2(r2.Sub(foot, start))
	if reach == 0 || r2.Norm2(v)/reach <= 1 {
		return r2.Vec{}, false
	}

	power := 1.0
	if elapsedMillis > cfg.ReferenceMillis {
		power = float64(cfg.ReferenceMillis) / float64(elapsedMillis)
	}
	p := r2.Scale(power, r2.Sub(foot, start))
	if r2.Norm2(p) <= cfg.MinImpulseSq {
		return r2.Vec{}, false
	}
	return p, true
}
