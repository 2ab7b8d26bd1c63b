package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flaptiles/internal/arena"
)

// StatsPanel is a side table with one row per arena instance.
type StatsPanel struct {
	table table.Model
}

// NewStatsPanel creates an empty panel of the given height in rows.
func NewStatsPanel(height int) StatsPanel {
	columns := []table.Column{
		{Title: "Tile", Width: 4},
		{Title: "Pilot", Width: 10},
		{Title: "Ep", Width: 4},
		{Title: "Score", Width: 5},
		{Title: "Best", Width: 5},
		{Title: "Return", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(statsTableHeight(height)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	return StatsPanel{table: t}
}

// statsTableHeight leaves room for the panel border and the table header.
func statsTableHeight(rows int) int {
	return max(rows-4, 1)
}

// SetHeight adapts the panel to the board height in rows.
func (p *StatsPanel) SetHeight(rows int) {
	p.table.SetHeight(statsTableHeight(rows))
}

// SetStats replaces the rows with the current arena bookkeeping.
func (p *StatsPanel) SetStats(stats []arena.Stats) {
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		pilot := s.Pilot
		if s.Human {
			pilot = "you"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			pilot,
			fmt.Sprintf("%d", s.Episode),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Best),
			fmt.Sprintf("%+.2f", s.Cumulative),
		}
	}
	p.table.SetRows(rows)
}

// Rows returns the number of instance rows.
func (p StatsPanel) Rows() int {
	return len(p.table.Rows())
}

// View renders the bordered table.
func (p StatsPanel) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return style.Render(p.table.View())
}

// Width returns the rendered panel width in cells.
func (p StatsPanel) Width() int {
	return lipgloss.Width(p.View())
}
