package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/game"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

// moneyReporter is implemented by games whose runs earn currency worth
// persisting alongside the score.
type moneyReporter interface {
	TotalEarned() int
}

// trailToggler is implemented by games with an optional motion trail.
type trailToggler interface {
	EnableTrail(bool)
}

// Model is the Bubble Tea model that drives one game session.
type Model struct {
	game       game.Game
	keys       *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the finished run has been persisted
	trailOn    bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	g.Reset(cfg)

	return Model{
		game:       g,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Trail toggle is a renderer preference, not a simulation action
	if msg.String() == "b" {
		if t, ok := m.game.(trailToggler); ok {
			m.trailOn = !m.trailOn
			t.EnableTrail(m.trailOn)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)

	wasTerminal := m.gameState.Terminal()
	result := m.game.Step(dt, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if wasTerminal && !m.gameState.Terminal() {
		// The simulation restarted itself; arm saving for the next run
		m.runSaved = false
	}

	if m.gameState.Terminal() && !m.runSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	money := 0
	if r, ok := m.game.(moneyReporter); ok {
		money = r.TotalEarned()
	}
	outcome := "lose"
	if m.gameState.Phase == core.PhaseWin {
		outcome = "win"
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveRun(m.game.ID(), m.gameState.Score, money, outcome)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	DrawFrame(m.screen, m.game.DrawData())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(g game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	p := tea.NewProgram(
		NewModel(g, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
