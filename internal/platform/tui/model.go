package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flaptiles/internal/arena"
	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/core"
	"github.com/vovakirdan/flaptiles/internal/input"
	"github.com/vovakirdan/flaptiles/internal/render"
)

// chromeRows is the status line plus the help line below the board.
const chromeRows = 2

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Options configures the terminal host.
type Options struct {
	Arena       *arena.Arena
	Sprites     *assets.Set
	ActivateKey string
	TickRate    int
	Supersample int  // Raster pixels per half-block pixel along each axis
	ShowRewards bool // Initial state of the reward overlays
	Render      render.Options
	Width       int // Initial terminal size; a WindowSizeMsg replaces it
	Height      int
	Logger      *log.Logger
}

// Model is the Bubble Tea model running an arena in the terminal.
type Model struct {
	arena       *arena.Arena
	raster      *render.Raster
	tiled       *render.Tiled
	single      *render.Single
	screen      *core.Screen
	capture     *input.Capture
	keys        KeyMap
	help        help.Model
	stats       StatsPanel
	tickRate    int
	supersample int
	showRewards bool
	showStats   bool
	width       int
	height      int
	quitting    bool
	logger      *log.Logger
}

// NewModel creates a new Bubble Tea model for the given arena.
func NewModel(opts Options) Model {
	if opts.TickRate < 1 {
		opts.TickRate = 30
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Render.Logger = opts.Logger

	raster := render.NewRaster(1, 1)
	m := Model{
		arena:       opts.Arena,
		raster:      raster,
		tiled:       render.NewTiled(raster, opts.Render),
		single:      render.NewSingle(raster, opts.Render),
		screen:      core.NewScreen(1, 1),
		capture:     input.NewCapture(opts.ActivateKey, opts.Logger),
		keys:        DefaultKeyMap(opts.ActivateKey),
		help:        help.New(),
		stats:       NewStatsPanel(opts.Height),
		tickRate:    opts.TickRate,
		supersample: opts.Supersample,
		showRewards: opts.ShowRewards,
		width:       opts.Width,
		height:      opts.Height,
		logger:      opts.Logger,
	}
	m.tiled.SetAssets(opts.Sprites)
	m.single.SetAssets(opts.Sprites)

	a := opts.Arena
	m.capture.Enable(m.screen, func(core.Action) {
		a.SendInput(core.ActionActivate)
	})
	m.resize()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. The activate key goes through the capture first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.capture.Dispatch(KeyEvent(msg)) {
		return m, nil
	}

	switch {
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "s":
		m.showStats = !m.showStats
		m.stats.SetStats(m.arena.Stats())
		m.resize()
		return m, nil
	}

	switch act := m.keys.MapKey(msg); act {
	case core.ActionQuit:
		m.logger.Debug("leaving", "tick", m.arena.Tick(), "tiles", m.arena.Instances())
		m.capture.Disable()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRewards:
		m.showRewards = !m.showRewards
	case core.ActionNone:
	default:
		m.arena.SendInput(act)
	}
	return m, nil
}

// handleMouse feeds presses on the board to the capture.
func (m Model) handleMouse(msg tea.MouseMsg) {
	var target any
	if msg.X >= 0 && msg.X < m.screen.Width() && msg.Y >= 0 && msg.Y < m.screen.Height() {
		target = m.screen
	}
	if ev, ok := MouseEvent(msg, target); ok {
		m.capture.Dispatch(ev)
	}
}

// handleTick advances the arena by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.arena.Step()
	if m.showStats {
		m.stats.SetStats(m.arena.Stats())
	}
	return m, tickCmd(m.tickRate)
}

// resize fits the board, raster and stats panel to the terminal.
func (m *Model) resize() {
	cols := m.width
	if m.showStats {
		cols -= m.stats.Width()
	}
	cols = max(cols, 1)
	rows := max(m.height-chromeRows, 1)

	m.screen.Resize(cols, rows)
	pw, ph := m.screen.PixelSize()
	m.raster.Resize(pw*m.supersample, ph*m.supersample)
	m.tiled.Resize()
	m.single.Resize()
	m.stats.SetHeight(rows)
	m.help.Width = m.width
}

// drawFrame renders the arena into the screen buffer.
// One instance gets the single view with welcome banner and HUD.
func (m Model) drawFrame() {
	snaps := m.arena.Snapshots()
	instant, cumulative := m.arena.Rewards()
	if !m.showRewards {
		instant, cumulative = nil, nil
	}

	if len(snaps) == 1 {
		st := m.arena.Stats()[0]
		m.single.SetWelcome(m.arena.Waiting())
		m.single.SetHUD(
			fmt.Sprintf("ep: %d", st.Episode),
			fmt.Sprintf("score: %d", st.Score),
			fmt.Sprintf("best: %d", st.Best),
			fmt.Sprintf("steps: %d", m.arena.Tick()),
		)
		m.single.Render(snaps[0])
	} else {
		if m.tiled.InstanceCount() != len(snaps) {
			m.tiled.SetInstanceCount(len(snaps))
		}
		m.tiled.Render(snaps, instant, cumulative)
	}
	m.screen.Blit(m.raster.Image())
}

// statusLine summarizes the arena state.
func (m Model) statusLine() string {
	parts := []string{
		statusStyle.Render("flaptiles"),
		fmt.Sprintf("tiles %d", m.arena.Instances()),
		fmt.Sprintf("tick %d", m.arena.Tick()),
	}
	if m.showRewards {
		parts = append(parts, "rewards on")
	}
	if m.arena.Paused() {
		parts = append(parts, pausedStyle.Render("PAUSED"))
	}
	return strings.Join(parts, "  ")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawFrame()
	board := RenderScreen(m.screen)
	if m.showStats {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, m.stats.View())
	}

	var b strings.Builder
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the board flap
	)

	_, err := p.Run()
	return err
}
