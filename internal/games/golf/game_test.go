package golf

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
)

// Every hole of the test course is one fairway with the tee below the
// cup: the tee center is (120,118) and the cup center (120,60).
func testCourse(t *testing.T) *course.Course {
	t.Helper()
	cat, err := course.NewCatalog(
		course.Template{ID: 0, Name: "fairway", Width: 240, Height: 144},
		course.Template{ID: 1, Name: "start", Width: 16, Height: 16},
		course.Template{ID: 2, Name: "hole", Width: 7, Height: 7},
	)
	require.NoError(t, err)

	c := &course.Course{Name: "test links"}
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

type fakeSaver struct {
	results []match.Result
	err     error
}

func (s *fakeSaver) SaveResult(r match.Result) error {
	s.results = append(s.results, r)
	return s.err
}

// An 80x24 screen leaves 21 playfield rows: 3 pixels per column and
// 144/21 pixels per row.
func newTestGame(t *testing.T, players int, opts ...Option) (*Game, *core.Screen) {
	t.Helper()
	g := New(testCourse(t), opts...)
	rc := core.DefaultConfig()
	rc.Players = players
	require.NoError(t, g.Reset(rc))
	return g, core.NewScreen(rc.ScreenW, rc.ScreenH)
}

// putt swipes up through a ball resting on the tee center hard enough to
// hole it.
func putt(g *Game, at time.Time) {
	g.PointerDown(40, 20, at)
	g.PointerUp(40, 15, at.Add(176*time.Millisecond))
}

func screenContains(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(240, 144, 80, 21)
	x, y := v.toCourse(40, 17)
	assert.Equal(t, 121, x)
	assert.Equal(t, 120, y)

	col, row := v.toScreen(120, 118)
	assert.Equal(t, 40, col)
	assert.Equal(t, 17, row)

	// Degenerate sizes do not divide by zero
	v = newViewport(240, 144, 0, -3)
	assert.Equal(t, 1, v.cols)
	assert.Equal(t, 1, v.rows)
}

func TestIntroAndPlacement(t *testing.T) {
	g, scr := newTestGame(t, 2)
	assert.Equal(t, "Mini Golf - test links", g.Title())
	assert.NotEmpty(t, g.MatchID())
	assert.Equal(t, match.StateShowIntro, g.State())

	require.True(t, g.Dirty())
	g.Render(scr)
	assert.False(t, g.Dirty())
	assert.True(t, screenContains(scr, "test links"))
	assert.True(t, screenContains(scr, "18 holes - par 54"))
	assert.True(t, screenContains(scr, "2 players"))

	// Clicking anywhere leaves the intro
	at := time.Unix(100, 0)
	g.PointerDown(3, 3, at)
	g.PointerUp(3, 3, at.Add(50*time.Millisecond))
	require.Equal(t, match.StatePlaceBall, g.State())

	g.Render(scr)
	assert.True(t, screenContains(scr, "player 1 - place the ball"))
	assert.True(t, screenContains(scr, "the par is 3"))

	// Clicking the tee places the ball where the pointer was
	g.PointerDown(40, 17, at)
	g.PointerUp(40, 17, at.Add(50*time.Millisecond))
	require.Equal(t, match.StatePlay, g.State())
	assert.Equal(t, 121.0, g.Manager().Ball().Pos.X)
	assert.Equal(t, 120.0, g.Manager().Ball().Pos.Y)
}

func TestConfirmPlacesOnTeeAndRenderShowsBall(t *testing.T) {
	g, scr := newTestGame(t, 1)
	g.HandleAction(core.ActionConfirm)
	g.HandleAction(core.ActionConfirm)
	require.Equal(t, match.StatePlay, g.State())
	assert.Equal(t, 120.0, g.Manager().Ball().Pos.X)
	assert.Equal(t, 118.0, g.Manager().Ball().Pos.Y)

	g.Render(scr)
	assert.Equal(t, ballRune, scr.GetCell(40, 17).Rune)
	assert.Equal(t, 'O', scr.GetCell(40, 8).Rune, "cup cell")
	assert.True(t, screenContains(scr, "hole 1/18  par 3  player 1  strokes 0  total 0"))
}

func TestSwipeStrikesBall(t *testing.T) {
	g, scr := newTestGame(t, 1)
	g.HandleAction(core.ActionConfirm)
	g.HandleAction(core.ActionConfirm)

	putt(g, time.Unix(100, 0))
	p := g.Manager().CurrentPlayer()
	assert.Equal(t, 1, p.Strokes[0])
	assert.True(t, g.Manager().Ball().Moving())

	g.Render(scr)
	assert.True(t, screenContains(scr, "1 (3)"))

	for i := 0; i < 200 && !g.Manager().Ball().Holed; i++ {
		g.Step()
	}
	require.True(t, g.Manager().Ball().Holed)
	g.Render(scr)
	assert.True(t, screenContains(scr, "hole in one!"))
	assert.False(t, strings.ContainsRune(scr.String(), ballRune), "holed ball is hidden")
}

func TestFullRoundSavesOnce(t *testing.T) {
	saver := &fakeSaver{}
	g, scr := newTestGame(t, 1, WithResultSaver(saver))
	id := g.MatchID()

	g.HandleAction(core.ActionConfirm)
	at := time.Unix(100, 0)
	for hole := 0; hole < course.HoleCount; hole++ {
		require.Equal(t, match.StatePlaceBall, g.State(), "hole %d", hole+1)
		g.HandleAction(core.ActionConfirm)
		putt(g, at)
		for i := 0; i < 500 && g.State() == match.StatePlay; i++ {
			g.Step()
		}
		require.Equal(t, match.StateShowStandings, g.State(), "hole %d", hole+1)
		if hole == 0 {
			g.Render(scr)
			assert.True(t, screenContains(scr, "standings after hole 1"))
		}
		g.HandleAction(core.ActionConfirm)
	}

	require.Equal(t, match.StateShowWinner, g.State())
	require.Len(t, saver.results, 1)
	res := saver.results[0]
	assert.Equal(t, id, res.MatchID)
	assert.Equal(t, "test links", res.Course)
	assert.Equal(t, 54, res.Par)
	require.Len(t, res.Players, 1)
	assert.Equal(t, course.HoleCount, res.Players[0].Total())

	g.Render(scr)
	assert.True(t, screenContains(scr, "player 1 wins"))
	assert.True(t, screenContains(scr, "36 strokes under par!"))

	// Restart starts a fresh match
	g.HandleAction(core.ActionRestart)
	assert.Equal(t, match.StateShowIntro, g.State())
	assert.NotEqual(t, id, g.MatchID())
	assert.Len(t, saver.results, 1)
}

func TestWinnerPanelRanksPlayers(t *testing.T) {
	g, scr := newTestGame(t, 2)
	g.HandleAction(core.ActionConfirm)
	at := time.Unix(100, 0)
	for i := 0; i < 2*course.HoleCount*4 && g.State() != match.StateShowWinner; i++ {
		switch g.State() {
		case match.StatePlaceBall:
			g.HandleAction(core.ActionConfirm)
			putt(g, at)
		case match.StatePlay:
			for j := 0; j < 500 && g.State() == match.StatePlay; j++ {
				g.Step()
			}
		case match.StateShowStandings:
			g.HandleAction(core.ActionConfirm)
		}
	}
	require.Equal(t, match.StateShowWinner, g.State())

	g.Render(scr)
	assert.True(t, screenContains(scr, "player 1 wins"), "ties go to the first player")
	assert.True(t, screenContains(scr, "1. player 1"))
	assert.True(t, screenContains(scr, "2. player 2"))
}

func TestSaveFailureIsNotFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	g, _ := newTestGame(t, 1, WithResultSaver(saver))
	g.stateChanged(match.StateShowStandings, match.StateShowWinner)
	g.stateChanged(match.StateShowStandings, match.StateShowWinner)
	assert.Len(t, saver.results, 1)
}

func TestBackLeavesMatch(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.HandleAction(core.ActionConfirm)
	assert.False(t, g.Done())

	// Restart is ignored mid-match
	id := g.MatchID()
	g.HandleAction(core.ActionRestart)
	assert.Equal(t, id, g.MatchID())

	g.HandleAction(core.ActionBack)
	assert.True(t, g.Done())
}

func TestTooSmallScreen(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Resize(30, 10)
	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.True(t, screenContains(scr, "Window too small"))
}

func TestInvalidPlayersRejected(t *testing.T) {
	g := New(testCourse(t))
	rc := core.DefaultConfig()
	rc.Players = 0
	assert.ErrorIs(t, g.Reset(rc), match.ErrNoPlayers)
}
