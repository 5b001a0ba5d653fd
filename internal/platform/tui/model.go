package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/velikanov/astro-arcade/internal/core"
	"github.com/velikanov/astro-arcade/internal/registry"
	"github.com/velikanov/astro-arcade/internal/storage"
)

// phase tracks the model's top-level flow.
type phase int

const (
	phasePlaying   phase = iota
	phaseNameEntry       // game over, collecting a leaderboard name
	phaseScores          // leaderboard shown, waiting for restart/quit
)

const leaderboardRows = 10

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 3)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model for running arcade games. It owns the
// fixed-rate tick loop and, after game over, the name-entry and
// leaderboard flow.
type Model struct {
	game   registry.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   *KeyMapper

	control   core.Control
	gameState core.GameState
	phase     phase

	// Game-over flow state
	nameInput   textinput.Model
	scoresTable table.Model
	finalScore  int
	finalLevel  int
	finalRank   int
	rankedIn    bool

	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game. The
// store may be nil; scores are then simply not persisted.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
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

// handleKey processes keyboard input per phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phaseNameEntry:
		return m.handleNameEntryKey(msg)
	case phaseScores:
		return m.handleScoresKey(msg)
	}

	if m.keys.MapKeyToControl(msg, &m.control) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameEntryKey routes keys to the name input. Letters must reach
// the input, so only control keys are captured here.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.submitScore()
		return m, nil
	case "esc":
		// Skip submission, straight to the board.
		m.loadLeaderboard()
		m.phase = phaseScores
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleScoresKey waits for restart or quit on the leaderboard.
func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "r", "enter":
		return m.restart()
	}

	var cmd tea.Cmd
	m.scoresTable, cmd = m.scoresTable.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A running game cannot survive a world-size change; restart it.
	if m.phase == phasePlaying && !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		// The tick loop is stopped while the game-over flow runs;
		// restart() starts a fresh one.
		return m, nil
	}

	result := m.game.Step(m.control)
	m.control.Clear()

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		return m.enterGameOver()
	}

	return m, tickCmd(m.config.TickRate)
}

// enterGameOver transitions into the post-game flow: name entry when
// the score is worth recording, otherwise straight to the board.
func (m Model) enterGameOver() (tea.Model, tea.Cmd) {
	m.finalScore = m.gameState.Score
	m.finalLevel = m.gameState.Level
	m.finalRank = 0
	m.rankedIn = false

	if m.store == nil || m.finalScore <= 0 {
		m.loadLeaderboard()
		m.phase = phaseScores
		return m, nil
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()
	m.nameInput = ti
	m.phase = phaseNameEntry
	return m, textinput.Blink
}

// submitScore records the run and moves to the leaderboard.
func (m *Model) submitScore() {
	name := m.nameInput.Value()
	if name == "" {
		name = "anonymous"
	}
	if m.store != nil {
		rank, ok, err := m.store.Submit(m.game.ID(), name, m.finalScore, m.finalLevel)
		if err == nil {
			m.finalRank = rank
			m.rankedIn = ok
		}
	}
	m.loadLeaderboard()
	m.phase = phaseScores
}

// loadLeaderboard builds the scores table from storage.
func (m *Model) loadLeaderboard() {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Name", Width: 18},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
	}

	var rows []table.Row
	if m.store != nil {
		entries, err := m.store.Top(m.game.ID(), leaderboardRows)
		if err == nil {
			for i, e := range entries {
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i+1),
					e.PlayerName,
					fmt.Sprintf("%d", e.Score),
					fmt.Sprintf("%d", e.Level),
				})
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(min(len(rows)+1, leaderboardRows+1)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("6"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)
	m.scoresTable = t
}

// restart begins a fresh run with a new seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.control.Clear()
	m.phase = phasePlaying
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.viewNameEntry()
	case phaseScores:
		return m.viewScores()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// viewNameEntry renders the centered name prompt.
func (m Model) viewNameEntry() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		panelTitleStyle.Render("GAME OVER"),
		"",
		fmt.Sprintf("Score %d  ·  Level %d", m.finalScore, m.finalLevel),
		"",
		"Enter your name:",
		m.nameInput.View(),
		"",
		helpStyle.Render("enter save · esc skip"),
	)
	return m.centered(panelStyle.Render(body))
}

// viewScores renders the leaderboard.
func (m Model) viewScores() string {
	title := fmt.Sprintf("%s — Top %d", m.game.Title(), leaderboardRows)
	rankLine := ""
	if m.rankedIn {
		rankLine = fmt.Sprintf("You placed #%d with %d points", m.finalRank, m.finalScore)
	} else if m.finalScore > 0 {
		rankLine = fmt.Sprintf("Final score: %d", m.finalScore)
	}

	parts := []string{panelTitleStyle.Render(title), ""}
	if rankLine != "" {
		parts = append(parts, rankLine, "")
	}
	parts = append(parts,
		m.scoresTable.View(),
		"",
		helpStyle.Render("r play again · q quit"),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return m.centered(panelStyle.Render(body))
}

// centered places the panel in the middle of the terminal.
func (m Model) centered(panel string) string {
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, panel)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
