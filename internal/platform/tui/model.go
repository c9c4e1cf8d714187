package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-golf/internal/audio"
	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

// Env holds everything a session needs to start games.
type Env struct {
	Library *course.Library
	Config  config.GolfConfig
	Painter match.Painter  // Nil paints with the default palette
	Sound   audio.Player   // Nil is silent
	Store   *storage.Store // Nil disables round history
	Logger  *log.Logger    // Nil discards
}

// NewGame creates a game on course c wired to the environment.
func (e Env) NewGame(c *course.Course) *golf.Game {
	opts := []golf.Option{golf.WithConfig(e.Config)}
	if e.Painter != nil {
		opts = append(opts, golf.WithPainter(e.Painter))
	}
	if e.Sound != nil {
		opts = append(opts, golf.WithSound(e.Sound))
	}
	if e.Store != nil {
		opts = append(opts, golf.WithResultSaver(e.Store))
	}
	if e.Logger != nil {
		opts = append(opts, golf.WithLogger(e.Logger))
	}
	return golf.New(c, opts...)
}

// viewCache keeps the last rendered frame between View calls.
type viewCache struct {
	text  string
	valid bool
}

// GameModel runs one match inside a Bubble Tea program.
type GameModel struct {
	game       *golf.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	now        func() time.Time
	gen        uint64
	view       *viewCache
	quitting   bool
	backToMenu bool
}

// NewGameModel starts a match on game. gen tags the model's tick chain.
func NewGameModel(game *golf.Game, cfg core.RuntimeConfig, gen uint64) (GameModel, error) {
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}
	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		now:       time.Now,
		gen:       gen,
		view:      &viewCache{},
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(frameInterval(m.config.TickRate), m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		m.view.valid = false
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.game.HandleAction(action)
	}
	m.backToMenu = m.game.Done()
	return m, nil
}

// handleMouse turns left button presses and releases into gestures.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.game.PointerDown(msg.X, msg.Y, m.now())
		}
	case tea.MouseActionRelease:
		m.game.PointerUp(msg.X, msg.Y, m.now())
	}
	m.backToMenu = m.game.Done()
	return m, nil
}

// handleTick advances the game one frame and schedules the next tick in
// whatever remains of the frame interval.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.backToMenu {
		return m, nil
	}

	start := m.now()
	m.game.Step()
	m.backToMenu = m.game.Done()
	if m.backToMenu {
		return m, nil
	}

	wait := frameBudget(frameInterval(m.config.TickRate), m.now().Sub(start))
	return m, tickCmd(wait, m.gen)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)
	m.view.valid = false

	dir := filepath.Join(config.Dir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", golf.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state, reusing the last frame while the game
// reports nothing changed.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.view.valid || m.game.Dirty() {
		m.game.Render(m.screen)
		m.view.text = RenderScreen(m.screen)
		m.view.valid = true
	}
	return m.view.text
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the match has been left.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the course menu, or directly on
// start when it is not nil.
func Run(env Env, cfg core.RuntimeConfig, start *course.Entry) error {
	model, err := NewSessionModel(env, cfg, start)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press and release events for swipes
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
