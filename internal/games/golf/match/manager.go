package match

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/physics"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
)

// Painter rasterizes a hole into its collision surface.
type Painter interface {
	Paint(h *course.Hole) (*surface.Raster, error)
}

// QuitPrompt is shown after the first double click during play.
const QuitPrompt = "double tap again to quit"

// Manager runs one match. It owns the players' scores, the current hole
// and the physics engine, and is driven by clicks, swipes and frame ticks
// from a single goroutine.
type Manager struct {
	cfg     config.GolfConfig
	course  *course.Course
	painter Painter
	engine  *physics.Engine
	sound   audio.Player
	logger  *log.Logger
	now     func() time.Time
	onState func(from, to State)

	players   []Player
	player    int
	holeIndex int
	state     State
	surface   *surface.Raster
	phrases   phraseBook

	// Screen-local state, reset on every state change.
	frame       int
	repaint     bool
	message     string
	messageLeft int
	quitArmed   bool
	lastClick   time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg config.GolfConfig) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithSound sets the sound effect player.
func WithSound(p audio.Player) Option {
	return func(m *Manager) {
		m.sound = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithClock sets the time source used for double clicks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithStateListener registers a callback invoked after every state change.
func WithStateListener(fn func(from, to State)) Option {
	return func(m *Manager) {
		m.onState = fn
	}
}

// NewManager starts a match on course c. The match begins on the intro
// screen of the first hole.
func NewManager(c *course.Course, players int, painter Painter, opts ...Option) (*Manager, error) {
	switch {
	case players < 1:
		return nil, ErrNoPlayers
	case players > MaxPlayers:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyPlayers, players, MaxPlayers)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:       config.DefaultGolfConfig(),
		course:    c,
		painter:   painter,
		sound:     audio.Nop{},
		logger:    log.New(io.Discard),
		now:       time.Now,
		holeIndex: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if r, ok := m.sound.(audio.Resetter); ok {
		r.Reset()
	}
	m.engine = physics.New(m.cfg.Physics, physics.WithSound(m.sound), physics.WithLogger(m.logger))

	m.players = make([]Player, players)
	for i := range m.players {
		m.players[i] = newPlayer(i)
	}
	if _, err := m.nextHole(); err != nil {
		return nil, err
	}
	return m, nil
}

// HandleClick processes a click at course pixel (x, y).
func (m *Manager) HandleClick(x, y int) {
	switch m.state {
	case StateShowIntro:
		m.setState(StatePlaceBall)
	case StatePlaceBall:
		if _, ok := m.CurrentHole().StartZoneAt(x, y); ok {
			m.engine.PlaceBall(float64(x), float64(y))
			m.setState(StatePlay)
		}
	case StatePlay:
		m.handlePlayClick()
	case StateShowStandings:
		more, err := m.nextHole()
		if err != nil {
			m.logger.Error("cannot prepare hole", "hole", m.holeIndex+1, "err", err)
			m.setState(StateReturnToMenu)
			return
		}
		if !more {
			m.setState(StateShowWinner)
		}
	case StateShowWinner:
		m.setState(StateReturnToMenu)
	}
}

// handlePlayClick arms the quit prompt on a double click and leaves the
// match on a further quick click while armed.
func (m *Manager) handlePlayClick() {
	now := m.now()
	if m.lastClick.IsZero() || now.Sub(m.lastClick) >= m.cfg.Timing.DoubleClickWindow() {
		m.lastClick = now
		return
	}
	if m.quitArmed {
		m.setState(StateReturnToMenu)
		return
	}
	m.quitArmed = true
	m.lastClick = now
	m.showMessage(QuitPrompt)
}

// HandleSwipe processes a swipe from (sx, sy) to (ex, ey) that took elapsedMillis.
// During play a swipe across the resting ball strikes it.
func (m *Manager) HandleSwipe(sx, sy, ex, ey, elapsedMillis int) {
	switch m.state {
	case StatePlay:
		ball := m.engine.Ball()
		if ball.Moving() || ball.Holed {
			return
		}
		start := r2.Vec{X: float64(sx), Y: float64(sy)}
		end := r2.Vec{X: float64(ex), Y: float64(ey)}
		p, ok := physics.Stroke(m.cfg.Stroke, ball.Pos, start, end, elapsedMillis)
		if !ok {
			return
		}
		m.engine.AddImpulse(p.X, p.Y)
		strokes := m.recordStroke()
		m.sound.Play(audio.SampleTeeOff)
		m.showMessage(fmt.Sprintf("%d (%d)", strokes, m.CurrentHole().Par))
	case StateShowWinner:
		m.setState(StateReturnToMenu)
	}
}

// Abandon leaves the match immediately.
func (m *Manager) Abandon() {
	if m.state != StateReturnToMenu {
		m.setState(StateReturnToMenu)
	}
}

// Tick advances one frame: the ball moves, messages count down and turns
// end when the ball is holed or the stroke limit is exceeded.
func (m *Manager) Tick() {
	m.frame++
	if m.state != StatePlay {
		return
	}

	if m.engine.IsMoving() {
		ev := m.engine.Step()
		switch {
		case ev.Has(physics.EventHoled):
			m.handleHoled()
		case !m.engine.IsMoving() && m.strokes() > m.cfg.Stroke.MercyStrokes:
			m.logger.Debug("stroke limit reached", "player", m.CurrentPlayer().Name, "strokes", m.strokes())
			m.nextPlayer()
			return
		}
	}

	if m.message != "" {
		m.messageLeft--
		if m.messageLeft <= 0 {
			m.message = ""
			m.quitArmed = false
			m.repaint = true
			if m.engine.Ball().Holed {
				m.nextPlayer()
			}
		}
	}
}

func (m *Manager) handleHoled() {
	cat := Classify(m.CurrentHole().Par, m.strokes())
	m.logger.Debug("holed", "player", m.CurrentPlayer().Name, "hole", m.holeIndex+1, "strokes", m.strokes(), "result", cat)
	m.showMessage(m.phrases.next(cat))
}

func (m *Manager) showMessage(text string) {
	m.message = text
	m.messageLeft = m.cfg.Timing.MessageFrames()
}

func (m *Manager) strokes() int {
	return m.players[m.player].Strokes[m.holeIndex]
}

// recordStroke counts a stroke for the current player and returns the new count.
func (m *Manager) recordStroke() int {
	p := &m.players[m.player]
	p.Strokes[m.holeIndex]++
	return p.Strokes[m.holeIndex]
}

// nextPlayer hands the hole to the next player, or shows the standings
// once everybody has played it.
func (m *Manager) nextPlayer() {
	if m.player < len(m.players)-1 {
		m.player++
		m.resetBall()
		m.setState(StatePlaceBall)
		return
	}
	m.setState(StateShowStandings)
}

// nextHole moves to the next hole and repaints its surface. It reports
// false when the last hole has been played.
func (m *Manager) nextHole() (bool, error) {
	if m.holeIndex >= len(m.course.Holes)-1 {
		return false, nil
	}
	h := m.course.Holes[m.holeIndex+1]
	s, err := m.painter.Paint(h)
	if err != nil {
		return false, fmt.Errorf("match: paint hole %d: %w", m.holeIndex+2, err)
	}
	m.holeIndex++
	m.player = 0
	m.surface = s
	m.engine.SetHole(h, s)
	m.resetBall()
	if m.holeIndex == 0 {
		m.setState(StateShowIntro)
	} else {
		m.setState(StatePlaceBall)
	}
	return true, nil
}

// resetBall puts the ball at rest on the first tee of the current hole
// for the next turn.
func (m *Manager) resetBall() {
	if zones := m.CurrentHole().StartZones; len(zones) > 0 {
		x, y := zones[0].Center()
		m.engine.PlaceBall(float64(x), float64(y))
	}
}

func (m *Manager) setState(s State) {
	from := m.state
	m.state = s
	m.frame = 0
	m.repaint = true
	m.message = ""
	m.messageLeft = 0
	m.quitArmed = false
	m.logger.Debug("state", "from", from, "to", s, "hole", m.holeIndex+1, "player", m.player+1)
	if m.onState != nil {
		m.onState(from, s)
	}
}

// NeedsRepaint reports whether the current screen changed since Painted.
// The tee blinks while placing the ball, so that screen repaints every
// tenth frame.
func (m *Manager) NeedsRepaint() bool {
	switch m.state {
	case StatePlaceBall:
		return m.repaint || m.frame%10 == 0
	case StatePlay:
		return m.repaint || m.message != "" || m.engine.IsMoving()
	default:
		return m.repaint
	}
}

// Painted acknowledges a repaint.
func (m *Manager) Painted() {
	m.repaint = false
}

// State returns the current state.
func (m *Manager) State() State {
	return m.state
}

// Course returns the course being played.
func (m *Manager) Course() *course.Course {
	return m.course
}

// HoleIndex returns the zero-based index of the current hole.
func (m *Manager) HoleIndex() int {
	return m.holeIndex
}

// CurrentHole returns the hole being played.
func (m *Manager) CurrentHole() *course.Hole {
	return m.course.Holes[m.holeIndex]
}

// Surface returns the painted surface of the current hole.
func (m *Manager) Surface() *surface.Raster {
	return m.surface
}

// CurrentPlayer returns the player whose turn it is.
func (m *Manager) CurrentPlayer() Player {
	return m.players[m.player]
}

// Players returns a copy of all players in turn order.
func (m *Manager) Players() []Player {
	return append([]Player(nil), m.players...)
}

// Standings returns the players ranked by total strokes.
func (m *Manager) Standings() []Standing {
	return rank(m.players)
}

// Winner returns the player with the fewest strokes. Ties go to the
// player who teed off first.
func (m *Manager) Winner() Standing {
	return m.Standings()[0]
}

// Message returns the transient message, or "" if none is showing.
func (m *Manager) Message() string {
	return m.message
}

// Ball returns a snapshot of the ball.
func (m *Manager) Ball() physics.Ball {
	return m.engine.Ball()
}

// PlacePrompt returns the two lines shown while placing the ball.
func (m *Manager) PlacePrompt() (string, string) {
	return m.CurrentPlayer().Name + " - place the ball",
		fmt.Sprintf("the par is %d", m.CurrentHole().Par)
}

// TeeHighlighted reports the blink phase of the start zones.
func (m *Manager) TeeHighlighted() bool {
	return (m.frame>>1)&1 == 1
}
