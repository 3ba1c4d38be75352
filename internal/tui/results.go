package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/episim/episim/internal/sir"
)

const (
	graphWidth  = 60
	graphHeight = 14
)

var (
	graphStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(38)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	susStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	infStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	recStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) resultsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateParams
		m.playing = false
	case " ":
		m.playing = !m.playing
		if m.playing && m.playHead >= len(m.series) {
			m.playHead = 2
		}
	case "[":
		m.playHead -= 10
		if m.playHead < 2 {
			m.playHead = 2
		}
	case "]":
		m.playHead += 10
		if m.playHead > len(m.series) {
			m.playHead = len(m.series)
		}
	case "r":
		m.playHead = 2
		m.playing = true
	}
	return m, nil
}

func (m Model) viewResults() string {
	if len(m.series) < 2 {
		return "\n  no data\n"
	}

	visible := m.series[:m.playHead]
	data := [][]float64{visible.Susceptible(), visible.Infectious(), visible.Recovered()}
	chart := asciigraph.PlotMany(data,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
	)

	var g strings.Builder
	g.WriteString(headerStyle.Render("EPIDEMIC CURVE") + "\n\n")
	g.WriteString(chart + "\n\n")
	g.WriteString(susStyle.Render("■ susceptible") + "  " +
		infStyle.Render("■ infectious") + "  " +
		recStyle.Render("■ recovered") + "\n")

	status := "DONE"
	if m.playing {
		status = "REPLAYING"
	} else if m.playHead < len(m.series) {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(statusStyle.Render(status) + "\n\n")
	s.WriteString(labelStyle.Render("Day") + valueStyle.Render(fmt.Sprintf("%d / %d", visible[len(visible)-1].Time, len(m.series))) + "\n")
	beta, gamma := m.params["beta"], m.params["gamma"]
	s.WriteString(labelStyle.Render("R0") + valueStyle.Render(fmt.Sprintf("%.2f", sir.BasicReproduction(beta, gamma))) + "\n\n")
	s.WriteString(labelStyle.Render("Peak infected") + valueStyle.Render(fmt.Sprintf("%.1f", m.summary.PeakInfectious)) + "\n")
	s.WriteString(labelStyle.Render("Peak day") + valueStyle.Render(fmt.Sprintf("%d", m.summary.TimeToPeak)) + "\n")
	s.WriteString(labelStyle.Render("Final recovered") + valueStyle.Render(fmt.Sprintf("%.1f", m.summary.FinalRecovered)) + "\n")
	s.WriteString(labelStyle.Render("Attack rate") + valueStyle.Render(fmt.Sprintf("%.1f%%", m.summary.AttackRate*100)) + "\n")

	if m.intervention && len(m.baseline) > 0 {
		s.WriteString("\n" + headerStyle.Render("VS BASELINE") + "\n\n")
		s.WriteString(labelStyle.Render("Prevented") + valueStyle.Render(fmt.Sprintf("%.1f", sir.CasesPrevented(m.baseSum, m.summary))) + "\n")
		s.WriteString(labelStyle.Render("Reduction") + valueStyle.Render(fmt.Sprintf("%.1f%%", sir.PercentReduction(m.baseSum, m.summary))) + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────\nSP pause  [ ] scrub\nR replay  ESC back  Q quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		graphStyle.Render(g.String()),
		statsStyle.Render(s.String()))
}
