package match

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
)

// The test hole is one open fairway with the tee below the cup:
// the tee spans (112,110)-(128,126) and the cup is centered at (120,60).
func testCourse(t *testing.T) *course.Course {
	t.Helper()
	cat, err := course.NewCatalog(
		course.Template{ID: 0, Name: "fairway", Width: 240, Height: 144},
		course.Template{ID: 1, Name: "start", Width: 16, Height: 16},
		course.Template{ID: 2, Name: "hole", Width: 7, Height: 7},
	)
	require.NoError(t, err)

	c := &course.Course{Name: "test"}
	for i := 0; i < course.HoleCount; i++ {
		h, err := course.NewHole(cat, 3, []course.Placement{
			{ID: 0, X: 0, Y: 0},
			{ID: 1, X: 112, Y: 110},
			{ID: 2, X: 117, Y: 57},
		})
		require.NoError(t, err)
		c.Holes = append(c.Holes, h)
	}
	return c
}

func testPainter() Painter {
	return surface.NewPainter(surface.DefaultPalette(), 240, 144)
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recorder struct {
	played []audio.Sample
	resets int
}

func (r *recorder) Play(s audio.Sample) { r.played = append(r.played, s) }

func (r *recorder) Reset() { r.resets++ }

func newTestManager(t *testing.T, players int, opts ...Option) *Manager {
	t.Helper()
	m, err := NewManager(testCourse(t), players, testPainter(), opts...)
	require.NoError(t, err)
	return m
}

// holeInOneShot strikes the ball on the tee straight up into the cup.
func holeInOneShot(m *Manager) {
	m.HandleSwipe(120, 140, 120, 110, 160)
}

func tickUntil(t *testing.T, m *Manager, done func() bool) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if done() {
			return
		}
		m.Tick()
	}
	t.Fatal("condition never reached")
}

func TestNewManagerValidates(t *testing.T) {
	c := testCourse(t)

	_, err := NewManager(c, 0, testPainter())
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = NewManager(c, 5, testPainter())
	assert.ErrorIs(t, err, ErrTooManyPlayers)

	short := &course.Course{Name: "short", Holes: c.Holes[:3]}
	_, err = NewManager(short, 1, testPainter())
	assert.ErrorIs(t, err, course.ErrHoleCount)

	m, err := NewManager(c, 4, testPainter())
	require.NoError(t, err)
	assert.Equal(t, StateShowIntro, m.State())
	assert.Equal(t, 0, m.HoleIndex())
	assert.Len(t, m.Players(), 4)
	assert.Equal(t, "player 4", m.Players()[3].Name)
	assert.NotNil(t, m.Surface())
}

type failingPainter struct{}

func (failingPainter) Paint(*course.Hole) (*surface.Raster, error) {
	return nil, errors.New("no graphics")
}

func TestNewManagerPaintFailure(t *testing.T) {
	_, err := NewManager(testCourse(t), 1, failingPainter{})
	assert.ErrorContains(t, err, "no graphics")
}

func TestTwoPlayersParAndHoleInOne(t *testing.T) {
	rec := &recorder{}
	var transitions []State
	m := newTestManager(t, 2, WithSound(rec), WithStateListener(func(_, to State) {
		transitions = append(transitions, to)
	}))

	m.HandleClick(5, 5)
	require.Equal(t, StatePlaceBall, m.State())
	line1, line2 := m.PlacePrompt()
	assert.Equal(t, "player 1 - place the ball", line1)
	assert.Equal(t, "the par is 3", line2)

	// Outside the tee nothing happens
	m.HandleClick(10, 10)
	assert.Equal(t, StatePlaceBall, m.State())

	// Player 1 has already taken two strokes on this hole
	m.players[0].Strokes[0] = 2
	m.HandleClick(120, 120)
	require.Equal(t, StatePlay, m.State())
	assert.Equal(t, 120.0, m.Ball().Pos.X)
	assert.Equal(t, 120.0, m.Ball().Pos.Y)

	holeInOneShot(m)
	assert.Equal(t, "3 (3)", m.Message())
	assert.True(t, m.Ball().Moving())
	assert.Equal(t, []audio.Sample{audio.SampleTeeOff}, rec.played)

	tickUntil(t, m, func() bool { return m.Ball().Holed })
	assert.Equal(t, "well done!", m.Message())
	assert.Equal(t, StatePlay, m.State(), "message must expire first")
	assert.Contains(t, rec.played, audio.SampleHoled)

	tickUntil(t, m, func() bool { return m.State() != StatePlay })
	require.Equal(t, StatePlaceBall, m.State())
	assert.Equal(t, 1, m.CurrentPlayer().Ordinal)
	assert.False(t, m.Ball().Holed)
	assert.False(t, m.Ball().Moving())
	assert.Equal(t, 120.0, m.Ball().Pos.X, "ball waits on the tee")
	assert.Equal(t, 118.0, m.Ball().Pos.Y)

	m.HandleClick(120, 120)
	holeInOneShot(m)
	tickUntil(t, m, func() bool { return m.Ball().Holed })
	assert.Equal(t, "hole in one!", m.Message())

	tickUntil(t, m, func() bool { return m.State() != StatePlay })
	require.Equal(t, StateShowStandings, m.State())

	standings := m.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, "player 2", standings[0].Player.Name)
	assert.Equal(t, 1, standings[0].Total)
	assert.Equal(t, 3, standings[1].Total)

	m.HandleClick(0, 0)
	assert.Equal(t, StatePlaceBall, m.State())
	assert.Equal(t, 1, m.HoleIndex())
	assert.Equal(t, 0, m.CurrentPlayer().Ordinal)

	assert.Equal(t, []State{
		StateShowIntro, StatePlaceBall, StatePlay, StatePlaceBall, StatePlay, StateShowStandings, StatePlaceBall,
	}, transitions)
}

func TestNewMatchResetsSound(t *testing.T) {
	rec := &recorder{}
	newTestManager(t, 1, WithSound(rec))
	newTestManager(t, 2, WithSound(rec))
	assert.Equal(t, 2, rec.resets)
}

func TestMercyRuleEndsTurn(t *testing.T) {
	m := newTestManager(t, 1)
	m.HandleClick(0, 0)
	m.HandleClick(120, 120)
	m.players[0].Strokes[0] = 9

	// A gentle sideways stroke that rolls away from the cup
	m.HandleSwipe(100, 120, 130, 120, 320)
	require.True(t, m.Ball().Moving())
	assert.Equal(t, 10, m.CurrentPlayer().Strokes[0])

	tickUntil(t, m, func() bool { return m.State() != StatePlay })
	assert.Equal(t, StateShowStandings, m.State())
	assert.False(t, m.Ball().Holed)

	m.HandleClick(0, 0)
	require.Equal(t, StatePlaceBall, m.State())
	assert.Equal(t, 1, m.HoleIndex())
	assert.False(t, m.Ball().Moving())
	assert.Equal(t, 120.0, m.Ball().Pos.X)
	assert.Equal(t, 118.0, m.Ball().Pos.Y)
}

func TestStrokeIgnoredWhileMovingOrMissed(t *testing.T) {
	m := newTestManager(t, 1)
	m.HandleClick(0, 0)
	m.HandleClick(120, 120)

	// Far from the ball
	m.HandleSwipe(10, 10, 40, 10, 50)
	assert.Equal(t, 0, m.CurrentPlayer().Strokes[0])
	assert.Empty(t, m.Message())

	holeInOneShot(m)
	require.Equal(t, 1, m.CurrentPlayer().Strokes[0])
	m.Tick()
	holeInOneShot(m)
	assert.Equal(t, 1, m.CurrentPlayer().Strokes[0], "no stroke while the ball rolls")
}

func TestDoubleClickQuit(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newTestManager(t, 1, WithClock(clock.now))
	m.HandleClick(0, 0)
	m.HandleClick(120, 120)
	require.Equal(t, StatePlay, m.State())

	m.HandleClick(5, 5)
	clock.advance(600 * time.Millisecond)
	m.HandleClick(5, 5)
	assert.Empty(t, m.Message(), "slow clicks do not arm")

	clock.advance(200 * time.Millisecond)
	m.HandleClick(5, 5)
	assert.Equal(t, QuitPrompt, m.Message())

	clock.advance(200 * time.Millisecond)
	m.HandleClick(5, 5)
	assert.Equal(t, StateReturnToMenu, m.State())
}

func TestQuitPromptExpires(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newTestManager(t, 1, WithClock(clock.now))
	m.HandleClick(0, 0)
	m.HandleClick(120, 120)

	m.HandleClick(5, 5)
	clock.advance(100 * time.Millisecond)
	m.HandleClick(5, 5)
	require.Equal(t, QuitPrompt, m.Message())

	frames := config.DefaultGolfConfig().Timing.MessageFrames()
	for i := 0; i < frames; i++ {
		m.Tick()
	}
	assert.Empty(t, m.Message())

	// The prompt expired, so a quick click re-arms instead of quitting
	clock.advance(100 * time.Millisecond)
	m.HandleClick(5, 5)
	assert.Equal(t, StatePlay, m.State())
	assert.Equal(t, QuitPrompt, m.Message())
}

func TestLastHoleStandingsGoToWinner(t *testing.T) {
	m := newTestManager(t, 2)
	for i := range m.players[0].Strokes {
		m.players[0].Strokes[i] = 3
		m.players[1].Strokes[i] = 2
	}
	m.holeIndex = course.HoleCount - 1
	m.setState(StateShowStandings)

	m.HandleClick(0, 0)
	assert.Equal(t, StateShowWinner, m.State())
	assert.Equal(t, course.HoleCount-1, m.HoleIndex())

	w := m.Winner()
	assert.Equal(t, "player 2", w.Player.Name)
	headline, detail := Summary(w, m.Course().Par())
	assert.Equal(t, "player 2 wins", headline)
	assert.Equal(t, "18 strokes under par!", detail)

	m.HandleSwipe(0, 0, 50, 50, 100)
	assert.Equal(t, StateReturnToMenu, m.State())
}

func TestStandingsBeforeLastHoleAdvance(t *testing.T) {
	m := newTestManager(t, 1)
	m.holeIndex = course.HoleCount - 2
	m.setState(StateShowStandings)

	m.HandleClick(0, 0)
	assert.Equal(t, StatePlaceBall, m.State())
	assert.Equal(t, course.HoleCount-1, m.HoleIndex())
}

func TestRepaintGating(t *testing.T) {
	m := newTestManager(t, 1)
	assert.True(t, m.NeedsRepaint())
	m.Painted()
	m.Tick()
	assert.False(t, m.NeedsRepaint(), "intro repaints once")

	m.HandleClick(0, 0)
	assert.True(t, m.NeedsRepaint())
	m.Painted()
	var repaints []int
	for f := 1; f <= 30; f++ {
		m.Tick()
		if m.NeedsRepaint() {
			repaints = append(repaints, f)
			m.Painted()
		}
	}
	assert.Equal(t, []int{10, 20, 30}, repaints)

	m.HandleClick(120, 120)
	m.Painted()
	assert.False(t, m.NeedsRepaint(), "resting ball without message")
	holeInOneShot(m)
	assert.True(t, m.NeedsRepaint())
}

func TestAbandon(t *testing.T) {
	m := newTestManager(t, 1)
	m.Abandon()
	assert.Equal(t, StateReturnToMenu, m.State())
}
