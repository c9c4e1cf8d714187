// Package physics advances the golf ball one fixed step at a time over a
// color-keyed collision surface.
package physics

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

// Surface answers pixel queries about the current hole.
type Surface interface {
	Blocked(x, y int) bool
	SurfaceType(x, y int) course.SurfaceType
	Bounds() core.Rect
}

// Events reports what happened during a step.
type Events uint8

const (
	EventCollided  Events = 1 << iota // Ball hit an obstacle
	EventHoled                        // Ball dropped into a cup
	EventStopped                      // Ball came to rest
	EventRecovered                    // Ball left the surface and was put back on the tee
)

// Has reports whether all events in mask occurred.
func (e Events) Has(mask Events) bool {
	return e&mask == mask
}

// Ball is a snapshot of the ball state.
type Ball struct {
	Pos   r2.Vec
	Vel   r2.Vec
	Holed bool
}

// Moving reports whether the ball has a non-zero velocity.
func (b Ball) Moving() bool {
	return b.Vel.X != 0 || b.Vel.Y != 0
}

// Engine owns the ball and simulates it on the active hole.
type Engine struct {
	cfg    config.PhysicsConfig
	sound  audio.Player
	logger *log.Logger

	ring    []r2.Vec // Collision test offsets
	normals []r2.Vec // Unit directions for the normal estimate

	hole *course.Hole
	surf Surface
	ball Ball
}

// Option configures an Engine.
type Option func(*Engine)

// WithSound sets the player for hit and holed sounds.
func WithSound(p audio.Player) Option {
	return func(e *Engine) {
		e.sound = p
	}
}

// WithLogger sets the logger for recovered anomalies.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine. SetHole must be called before Step.
func New(cfg config.PhysicsConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:    cfg,
		sound:  audio.Nop{},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.normals = circle(cfg.NormalPoints, 1)
	e.ring = circle(cfg.RingPoints, cfg.RingRadius)
	return e
}

// circle returns n points evenly spaced on a circle of radius r.
func circle(n int, r float64) []r2.Vec {
	pts := make([]r2.Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r2.Vec{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	return pts
}

// SetHole activates a hole and its painted surface.
func (e *Engine) SetHole(h *course.Hole, s Surface) {
	e.hole = h
	e.surf = s
}

// PlaceBall puts the ball at rest at the given point and clears holed.
func (e *Engine) PlaceBall(x, y float64) {
	e.ball = Ball{Pos: r2.Vec{X: x, Y: y}}
}

// AddImpulse adds to the ball's velocity.
func (e *Engine) AddImpulse(dx, dy float64) {
	e.ball.Vel = r2.Add(e.ball.Vel, r2.Vec{X: dx, Y: dy})
}

// Ball returns a snapshot of the ball.
func (e *Engine) Ball() Ball {
	return e.ball
}

// IsMoving reports whether the ball has a non-zero velocity.
func (e *Engine) IsMoving() bool {
	return e.ball.Moving()
}

// Step advances the ball by one frame. A holed ball does not move.
func (e *Engine) Step() Events {
	if e.ball.Holed || e.surf == nil {
		return 0
	}
	b := &e.ball
	wasMoving := b.Moving()
	var ev Events

	b.Pos = r2.Add(b.Pos, b.Vel)
	speed := r2.Norm2(b.Vel)

	if e.colliding() {
		ev |= EventCollided
		e.sound.Play(audio.SampleHit)
		e.uncollide()
		e.bounce()
		if e.colliding() {
			e.uncollide()
		}
	} else {
		x, y := e.pixel()
		switch t := e.surf.SurfaceType(x, y); t {
		case course.SurfaceNormal:
			if speed < e.cfg.StopSpeedSq {
				b.Vel = r2.Vec{}
			}
		default:
			if z, ok := e.hole.ForceAt(x, y, t); ok {
				b.Vel = r2.Add(b.Vel, z.Force)
			}
		}
	}

	b.Vel = r2.Scale(e.cfg.Friction, b.Vel)

	if e.captureCups(speed) {
		ev |= EventHoled
	}

	x, y := e.pixel()
	if !e.surf.Bounds().Contains(x, y) {
		e.returnToTee()
		ev |= EventRecovered
	}

	if wasMoving && !b.Moving() && !b.Holed {
		ev |= EventStopped
	}
	return ev
}

// pixel returns the integer pixel under the ball center.
func (e *Engine) pixel() (int, int) {
	return int(e.ball.Pos.X), int(e.ball.Pos.Y)
}

// colliding reports whether any ring point around the ball is blocked.
func (e *Engine) colliding() bool {
	for _, off := range e.ring {
		p := r2.Add(e.ball.Pos, off)
		if e.surf.Blocked(int(p.X), int(p.Y)) {
			return true
		}
	}
	return false
}

// uncollide backs the ball out along its velocity, at most one pixel per
// axis per step, until the ring is clear or the step budget runs out.
func (e *Engine) uncollide() {
	v := e.ball.Vel
	ax, ay := math.Abs(v.X), math.Abs(v.Y)
	dom := math.Max(ax, ay)
	if dom == 0 {
		return
	}
	n := r2.Scale(1/dom, v)
	for left := e.cfg.UncollideSteps; ; left-- {
		e.ball.Pos = r2.Sub(e.ball.Pos, n)
		if left <= 0 || !e.colliding() {
			return
		}
	}
}

// bounce reflects the velocity about the normal estimated from the blocked
// directions around the ball, damped by the restitution factor.
func (e *Engine) bounce() {
	var n r2.Vec
	for _, dir := range e.normals {
		p := r2.Add(e.ball.Pos, r2.Scale(e.cfg.NormalRadius, dir))
		if e.surf.Blocked(int(p.X), int(p.Y)) {
			n = r2.Add(n, dir)
		}
	}
	d := r2.Norm2(n)
	if d == 0 {
		return
	}
	v := e.ball.Vel
	k := -r2.Dot(v, n) / d
	e.ball.Vel = r2.Scale(e.cfg.Restitution, r2.Add(r2.Scale(2*k, n), v))
	e.ball.Pos = r2.Add(e.ball.Pos, e.ball.Vel)
}

// captureCups applies the cup behaviours and reports whether the ball was
// holed. speed is the squared speed the ball entered the step with.
func (e *Engine) captureCups(speed float64) bool {
	holed := false
	b := &e.ball
	for _, cup := range e.hole.Cups {
		cx, cy := cup.Center()
		delta := r2.Sub(r2.Vec{X: float64(cx), Y: float64(cy)}, b.Pos)
		dist := r2.Norm2(delta)
		if dist >= e.cfg.CupPullSq {
			continue
		}
		if dist < e.cfg.CupSteerSq && speed < e.cfg.CupSteerMaxSpeedSq {
			if dist < e.cfg.CupSnapSq {
				b.Pos = r2.Vec{X: float64(cx), Y: float64(cy)}
				b.Vel = r2.Vec{}
				b.Holed = true
				holed = true
				e.sound.Play(audio.SampleHoled)
			} else {
				b.Vel = r2.Scale(1/(e.cfg.SteerFactor*math.Sqrt(dist)), delta)
			}
		} else if dist != 0 {
			b.Vel = r2.Add(b.Vel, r2.Scale(1/(e.cfg.PullFactor*math.Sqrt(dist)), delta))
		}
	}
	return holed
}

// returnToTee puts the ball back on the first tee after it left the surface.
func (e *Engine) returnToTee() {
	from := e.ball.Pos
	var x, y int
	if len(e.hole.StartZones) > 0 {
		x, y = e.hole.StartZones[0].Center()
	} else {
		b := e.surf.Bounds()
		x, y = b.Center()
	}
	e.PlaceBall(float64(x), float64(y))
	e.logger.Warn("ball left the surface, returned to tee", "x", from.X, "y", from.Y)
}
