package tui

import (
	"context"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flaptiles/internal/arena"
	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/config"
	"github.com/vovakirdan/flaptiles/internal/core"
)

func newTestModel(t *testing.T, instances int, human bool) Model {
	t.Helper()
	a, err := arena.New(arena.Options{
		Instances: instances,
		Seed:      7,
		Human:     human,
		Flappy:    config.DefaultFlappyConfig(),
	})
	if err != nil {
		t.Fatalf("arena.New() error: %v", err)
	}
	set, err := assets.Load(context.Background(), assets.Procedural{}, "")
	if err != nil {
		t.Fatalf("assets.Load() error: %v", err)
	}
	return NewModel(Options{
		Arena:       a,
		Sprites:     set,
		ActivateKey: "space",
		Width:       60,
		Height:      20,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelTickStepsArena(t *testing.T) {
	m := newTestModel(t, 2, false)
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.arena.Tick(); got != 1 {
		t.Errorf("arena tick = %d, expected 1", got)
	}
}

func TestModelInstanceKeys(t *testing.T) {
	m := newTestModel(t, 2, false)
	m, _ = update(t, m, runeKey("+"))
	m, _ = update(t, m, TickMsg{})
	if got := m.arena.Instances(); got != 3 {
		t.Fatalf("instances after + = %d, expected 3", got)
	}
	m, _ = update(t, m, runeKey("-"))
	m, _ = update(t, m, runeKey("-"))
	m, _ = update(t, m, TickMsg{})
	if got := m.arena.Instances(); got != 1 {
		t.Errorf("instances after two - = %d, expected 1", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, 2, false)
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg{})
	if !m.arena.Paused() {
		t.Fatal("arena should be paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("status line should show the pause")
	}
}

func TestModelSpaceFlapsHuman(t *testing.T) {
	m := newTestModel(t, 1, true)
	if !m.arena.Waiting() {
		t.Fatal("human slot should wait for the first flap")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	if m.arena.Waiting() {
		t.Error("space should start the human slot")
	}
}

func TestModelClickOnBoardFlaps(t *testing.T) {
	m := newTestModel(t, 1, true)

	// Outside the board: ignored.
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: m.screen.Height() + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})
	if !m.arena.Waiting() {
		t.Fatal("a click below the board should not flap")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})
	if m.arena.Waiting() {
		t.Error("a click on the board should flap")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, 4, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	if m.screen.Width() != 80 || m.screen.Height() != 30-chromeRows {
		t.Errorf("screen = %dx%d, expected 80x%d", m.screen.Width(), m.screen.Height(), 30-chromeRows)
	}
	pw, ph := m.screen.PixelSize()
	if w, h := m.raster.Size(); w != pw || h != ph {
		t.Errorf("raster = %dx%d, expected %dx%d", w, h, pw, ph)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) < 30-chromeRows {
		t.Errorf("view has %d lines, expected at least %d", len(lines), 30-chromeRows)
	}
}

func TestModelStatsPanel(t *testing.T) {
	m := newTestModel(t, 3, false)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	m, _ = update(t, m, runeKey("s"))

	if m.stats.Rows() != 3 {
		t.Errorf("stats rows = %d, expected 3", m.stats.Rows())
	}
	if m.screen.Width() != 120-m.stats.Width() {
		t.Errorf("board width = %d, expected %d", m.screen.Width(), 120-m.stats.Width())
	}
	if !strings.Contains(m.View(), "Pilot") {
		t.Error("view should contain the stats header")
	}
}

func TestModelRewardsToggle(t *testing.T) {
	m := newTestModel(t, 2, false)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showRewards {
		t.Error("tab should enable the reward overlays")
	}
	if !strings.Contains(m.statusLine(), "rewards on") {
		t.Error("status line should mention the overlays")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 2, false)
	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if m.capture.Enabled() {
		t.Error("capture should be disabled after quitting")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(5, 3)
	s.Set(2, 1, core.Cell{Rune: core.HalfBlock, Fg: color.RGBA{R: 255, A: 255}, Bg: color.RGBA{B: 255, A: 255}})

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5 {
			t.Errorf("line %d width = %d, expected 5", i, w)
		}
	}
	if !strings.ContainsRune(lines[1], core.HalfBlock) {
		t.Error("middle line should contain the half block")
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(color.RGBA{R: 0x12, G: 0xab, B: 0x0f, A: 0xff}); got != "#12ab0f" {
		t.Errorf("hexColor = %q, expected #12ab0f", got)
	}
}
