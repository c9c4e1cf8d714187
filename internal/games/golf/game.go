// Package golf is the playable mini golf game. It wires a course, the hole
// painter, the physics engine and the match state machine together and
// draws the result into a character screen.
package golf

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
)

const (
	// ID identifies the game in logs and storage.
	ID = "golf"

	hudRows = 2
	minCols = 48
	minRows = 12
)

// Game is one session of mini golf on a single course.
type Game struct {
	cfg     config.GolfConfig
	course  *course.Course
	painter match.Painter
	sound   audio.Player
	saver   match.ResultSaver
	logger  *log.Logger
	now     func() time.Time

	manager *match.Manager
	matchID string
	players int
	pointer core.PointerTracker
	view    viewport
	saved   bool
	dirty   bool

	screenW, screenH int
	tooSmall         bool
}

// Option configures a Game.
type Option func(*Game)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.GolfConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithPainter sets the painter used to rasterize holes.
func WithPainter(p match.Painter) Option {
	return func(g *Game) {
		g.painter = p
	}
}

// WithSound sets the sound effect player.
func WithSound(p audio.Player) Option {
	return func(g *Game) {
		g.sound = p
	}
}

// WithResultSaver stores finished matches.
func WithResultSaver(s match.ResultSaver) Option {
	return func(g *Game) {
		g.saver = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// New creates a game on course c. Call Reset to start a match.
func New(c *course.Course, opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultGolfConfig(),
		course: c,
		sound:  audio.Nop{},
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.painter == nil {
		g.painter = surface.NewPainter(surface.DefaultPalette(), g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	}
	return g
}

// Title returns the name shown in menus.
func (g *Game) Title() string {
	return "Mini Golf - " + g.course.Name
}

// Reset starts a new match for rc.Players players sized to the screen.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	if rc.TickRate > 0 {
		g.cfg.Timing.TickRate = rc.TickRate
	}
	g.matchID = uuid.NewString()
	g.players = rc.Players
	g.saved = false
	g.pointer = core.PointerTracker{}

	m, err := match.NewManager(g.course, rc.Players, g.painter,
		match.WithConfig(g.cfg),
		match.WithSound(g.sound),
		match.WithLogger(g.logger),
		match.WithClock(g.now),
		match.WithStateListener(g.stateChanged),
	)
	if err != nil {
		return err
	}
	g.manager = m
	g.logger.Info("match started", "match", g.matchID, "course", g.course.Name, "players", rc.Players)
	g.Resize(rc.ScreenW, rc.ScreenH)
	return nil
}

// Resize adapts the playfield to a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.tooSmall = w < minCols || h < minRows
	g.view = newViewport(g.cfg.Playfield.Width, g.cfg.Playfield.Height, w, h-hudRows-1)
	g.dirty = true
}

func (g *Game) stateChanged(from, to match.State) {
	g.dirty = true
	if to != match.StateShowWinner || g.saved {
		return
	}
	g.saved = true
	if g.saver == nil {
		return
	}
	res := g.manager.Result(g.matchID)
	if err := g.saver.SaveResult(res); err != nil {
		g.logger.Error("cannot save rounds", "match", g.matchID, "err", err)
		return
	}
	g.logger.Info("rounds saved", "match", g.matchID, "course", res.Course, "players", len(res.Players), "winner", g.manager.Winner().Player.Name)
}

// HandleAction applies a keyboard action.
func (g *Game) HandleAction(a core.Action) {
	switch a {
	case core.ActionConfirm:
		g.confirm()
	case core.ActionBack:
		g.manager.Abandon()
	case core.ActionRestart:
		if s := g.manager.State(); s == match.StateShowWinner || s == match.StateReturnToMenu {
			rc := core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, TickRate: g.cfg.Timing.TickRate, Players: g.players}
			if err := g.Reset(rc); err != nil {
				g.logger.Error("cannot restart match", "err", err)
			}
		}
	}
}

// confirm acts like a click wherever a click needs no position. While
// placing the ball it tees off from the first start zone.
func (g *Game) confirm() {
	switch g.manager.State() {
	case match.StateShowIntro, match.StateShowStandings, match.StateShowWinner:
		g.manager.HandleClick(-1, -1)
	case match.StatePlaceBall:
		if zones := g.manager.CurrentHole().StartZones; len(zones) > 0 {
			x, y := zones[0].Center()
			g.manager.HandleClick(x, y)
		}
	}
}

// PointerDown starts a gesture at screen cell (col, row).
func (g *Game) PointerDown(col, row int, at time.Time) {
	x, y := g.view.toCourse(col, row)
	g.pointer.Press(x, y, at)
}

// PointerUp completes a gesture at screen cell (col, row) and hands it to
// the match as a click or a swipe.
func (g *Game) PointerUp(col, row int, at time.Time) {
	x, y := g.view.toCourse(col, row)
	gesture, ok := g.pointer.Release(x, y, at)
	if !ok {
		return
	}
	switch gesture.Kind {
	case core.GestureClick:
		g.manager.HandleClick(gesture.StartX, gesture.StartY)
	case core.GestureSwipe:
		g.manager.HandleSwipe(gesture.StartX, gesture.StartY, gesture.EndX, gesture.EndY, gesture.ElapsedMillis())
	}
}

// Step advances the match by one frame.
func (g *Game) Step() {
	g.manager.Tick()
}

// Dirty reports whether the screen must be redrawn.
func (g *Game) Dirty() bool {
	return g.dirty || g.manager.NeedsRepaint()
}

// State returns the match state.
func (g *Game) State() match.State {
	return g.manager.State()
}

// Done reports whether the match has been left.
func (g *Game) Done() bool {
	return g.manager.State() == match.StateReturnToMenu
}

// MatchID returns the identifier of the current match.
func (g *Game) MatchID() string {
	return g.matchID
}

// Manager exposes the match for scoreboards and tests.
func (g *Game) Manager() *match.Manager {
	return g.manager
}

// viewport maps screen cells onto course pixels. Each axis is scaled
// independently so the whole playfield fills the screen.
type viewport struct {
	colScale, rowScale float64
	cols, rows         int
}

func newViewport(pw, ph, cols, rows int) viewport {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return viewport{
		colScale: float64(pw) / float64(cols),
		rowScale: float64(ph) / float64(rows),
		cols:     cols,
		rows:     rows,
	}
}

// toCourse returns the course pixel at the center of a cell.
func (v viewport) toCourse(col, row int) (int, int) {
	return int((float64(col) + 0.5) * v.colScale), int((float64(row) + 0.5) * v.rowScale)
}

// toScreen returns the cell containing a course position.
func (v viewport) toScreen(x, y float64) (int, int) {
	return int(x / v.colScale), int(y / v.rowScale)
}
