package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
)

func testEnv(t *testing.T) Env {
	t.Helper()
	cat, err := course.DefaultCatalog()
	require.NoError(t, err)
	lib, err := course.LoadLibrary("", cat)
	require.NoError(t, err)
	return Env{Library: lib, Config: config.DefaultGolfConfig()}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Sound = false
	return cfg
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFrameBudget(t *testing.T) {
	interval := frameInterval(20)
	assert.Equal(t, 50*time.Millisecond, interval)
	assert.Equal(t, 30*time.Millisecond, frameBudget(interval, 20*time.Millisecond))
	assert.Equal(t, time.Duration(0), frameBudget(interval, 80*time.Millisecond), "overrun starts next frame at once")
	assert.Equal(t, 50*time.Millisecond, frameInterval(0), "invalid rate falls back to 20 fps")
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{keyRunes("r"), core.ActionRestart, false},
		{keyRunes("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{keyRunes("x"), core.ActionNone, false},
	}
	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		assert.Equal(t, tc.action, action, tc.msg.String())
		assert.Equal(t, tc.quit, quit, tc.msg.String())
	}

	assert.Equal(t, MenuActionMore, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, MenuActionLess, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(keyRunes("j")))
}

func TestMenuPlayersAreClamped(t *testing.T) {
	env := testEnv(t)
	cfg := testConfig()
	cfg.Players = 9
	m := NewMenuModel(env.Library, nil, cfg)
	assert.Equal(t, match.MaxPlayers, m.Config().Players)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	assert.Equal(t, match.MaxPlayers, m.Config().Players)

	for i := 0; i < 6; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		m = next.(MenuModel)
	}
	assert.Equal(t, 1, m.Config().Players)
	assert.Contains(t, m.View(), "sample course")
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s, err := NewSessionModel(testEnv(t), testConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, screenMenu, s.screen)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRight})
	s = next.(SessionModel)
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	require.NotNil(t, cmd, "game starts ticking")
	assert.Equal(t, 2, s.config.Players)
	assert.Equal(t, match.StateShowIntro, s.game.game.State())

	// Ticks of another chain are dropped
	next, cmd = s.Update(TickMsg{At: time.Now(), Gen: s.gen + 1})
	s = next.(SessionModel)
	assert.Nil(t, cmd)
	next, cmd = s.Update(TickMsg{At: time.Now(), Gen: s.gen})
	s = next.(SessionModel)
	assert.NotNil(t, cmd)

	view := s.View()
	assert.Contains(t, view, "sample course")
	assert.Equal(t, view, s.View(), "unchanged frame is reused")

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.screen)
	assert.Nil(t, s.game)
	assert.Equal(t, 2, s.menu.Config().Players)
}

func TestSessionScoreboardAndQuit(t *testing.T) {
	s, err := NewSessionModel(testEnv(t), testConfig(), nil)
	require.NoError(t, err)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	require.Equal(t, screenScores, s.screen)
	assert.Contains(t, s.View(), "No rounds recorded yet.")

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	require.Equal(t, screenMenu, s.screen)

	next, cmd := s.Update(keyRunes("q"))
	s = next.(SessionModel)
	assert.True(t, isQuit(cmd))
	assert.Empty(t, s.View())
}

func TestSessionStartsOnCourse(t *testing.T) {
	env := testEnv(t)
	entry := env.Library.Entries[0]
	s, err := NewSessionModel(env, testConfig(), &entry)
	require.NoError(t, err)
	assert.Equal(t, screenGame, s.screen)
	assert.NotNil(t, s.Init())

	cfg := testConfig()
	cfg.Players = 0
	_, err = NewSessionModel(env, cfg, &entry)
	assert.ErrorIs(t, err, match.ErrNoPlayers)
}

func TestGameModelMouseGestures(t *testing.T) {
	env := testEnv(t)
	gm, err := NewGameModel(env.NewGame(env.Library.Entries[0].Course), testConfig(), 1)
	require.NoError(t, err)
	now := time.Unix(100, 0)
	gm.now = func() time.Time { return now }

	next, _ := gm.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	gm = next.(GameModel)
	now = now.Add(80 * time.Millisecond)
	next, _ = gm.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease})
	gm = next.(GameModel)
	assert.Equal(t, match.StatePlaceBall, gm.game.State())

	// A release without a press is ignored
	next, _ = gm.Update(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionRelease})
	gm = next.(GameModel)
	assert.Equal(t, match.StatePlaceBall, gm.game.State())

	next, _ = gm.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	gm = next.(GameModel)
	assert.Equal(t, 100, gm.screen.Width())
	assert.Contains(t, gm.View(), "place the ball")
}

func TestScoreboardToPar(t *testing.T) {
	assert.Equal(t, "E", formatToPar(0))
	assert.Equal(t, "+3", formatToPar(3))
	assert.Equal(t, "-2", formatToPar(-2))
	assert.Equal(t, "sample c.", truncate("sample course", 9))
	assert.Equal(t, "short", truncate("short", 9))
}
