package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Options configures the platform around a running game.
type Options struct {
	Logger        *log.Logger // Defaults to a discarding logger
	Bell          bool        // Ring the terminal bell on line clears and game over
	BellOut       io.Writer   // Where the bell is written; defaults to stderr
	ScreenshotDir string      // Defaults to ~/.tetris/screenshots
}

// bellFailedMsg reports a bell that could not be written. It is logged and ignored.
type bellFailedMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	bell       bool
	bellOut    io.Writer
	shotDir    string
	width      int
	height     int
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.BellOut == nil {
		opts.BellOut = os.Stderr
	}

	m := Model{
		game:       game,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     opts.Logger,
		bell:       opts.Bell,
		bellOut:    opts.BellOut,
		shotDir:    opts.ScreenshotDir,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
	}
	m.config.ScreenH = m.playHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()

	case bellFailedMsg:
		m.logger.Warn("bell failed", "error", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.logger.Info("quit", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// playHeight is the terminal height left for the game once the help footer is drawn.
func (m Model) playHeight() int {
	footer := lipgloss.Height(m.help.View(m.keys.Keys()))
	return core.Max(0, m.height-footer)
}

// relayout resizes the screen buffer to the terminal. Games that can
// resize keep their state; others are reset.
func (m *Model) relayout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.playHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.handleEvents(result.Events) {
		cmds = append(cmds, m.ringBell())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tea.Batch(cmds...)
}

// handleEvents logs game notifications and reports whether any of them
// deserves an audible cue.
func (m Model) handleEvents(events []core.Event) bool {
	cue := false
	for _, e := range events {
		switch e.Kind {
		case core.EventLinesCleared:
			m.logger.Info("lines cleared", "lines", e.Lines, "score", m.gameState.Score)
			cue = true
		case core.EventGameOver:
			m.logger.Info("game over", "score", m.gameState.Score)
			cue = true
		default:
			m.logger.Debug("event", "kind", e.Kind)
		}
	}
	return cue && m.bell
}

// ringBell writes the terminal bell. A failure is reported back as a message.
func (m Model) ringBell() tea.Cmd {
	out := m.bellOut
	return func() tea.Msg {
		if _, err := io.WriteString(out, "\a"); err != nil {
			return bellFailedMsg{err: err}
		}
		return nil
	}
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("screenshot: %w", err)
		}
		dir = filepath.Join(home, ".tetris", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
