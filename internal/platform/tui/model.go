package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Game is the engine surface the platform drives.
type Game interface {
	ID() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	BoardSize() (width, height int)
}

// SessionStore records finished sessions. *storage.Store satisfies it.
type SessionStore interface {
	SaveSession(rec storage.SessionRecord) (int64, error)
}

// Result describes how the session ended.
type Result struct {
	Outcome  string // "board_full", "aborted" or "none"
	Pieces   int
	Ticks    int64
	Duration time.Duration
	SaveErr  error // Last error returned by the session store, if any
}

// helpHeight is the number of rows reserved below the playfield for key help.
const helpHeight = 1

// Model is the Bubble Tea model for a game session.
type Model struct {
	game       Game
	screen     *core.Screen
	store      SessionStore
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	ticks      int64
	recorded   bool // Whether the current session has been written to the store
	quitting   bool
	saveErr    error
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game Game, store SessionStore, cfg core.RuntimeConfig, keys KeyMap) Model {
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		store:      store,
		keys:       keys,
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		startedAt:  time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
// Global keys and end-of-session keys are handled here directly.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.inputFrame.Set(core.ActionQuit)
		m.step()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)

	if m.gameState.GameOver {
		switch action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionRestart:
			m.restart()
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the screen buffer in sync with the terminal.
// The board size is fixed for the session, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.step()

	if m.gameState.Aborted {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickInterval)
}

// step feeds the pending input to the game and records the session once it finishes.
func (m *Model) step() {
	if m.gameState.Finished() {
		m.inputFrame.Clear()
		return
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++
	m.inputFrame.Clear()

	if m.gameState.Finished() {
		m.record()
	}
}

// record saves the finished session. Sessions quit from the start screen are skipped.
func (m *Model) record() {
	if m.recorded || !m.gameState.Started {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}

	w, h := m.game.BoardSize()
	_, err := m.store.SaveSession(storage.SessionRecord{
		Outcome:     m.gameState.Outcome(),
		Pieces:      m.gameState.Pieces,
		Ticks:       m.ticks,
		BoardWidth:  w,
		BoardHeight: h,
		Duration:    time.Since(m.startedAt),
	})
	if err != nil {
		m.saveErr = err
	}
}

// restart begins a fresh session after the board filled up.
func (m *Model) restart() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.startedAt = time.Now()
	m.ticks = 0
	m.recorded = false
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// Result reports how the session ended so far.
func (m Model) Result() Result {
	return Result{
		Outcome:  m.gameState.Outcome(),
		Pieces:   m.gameState.Pieces,
		Ticks:    m.ticks,
		Duration: time.Since(m.startedAt),
		SaveErr:  m.saveErr,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game Game, store SessionStore, cfg core.RuntimeConfig, keys KeyMap) (Result, error) {
	model := NewModel(game, store, cfg, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return model.Result(), nil
	}
	return m.Result(), nil
}
