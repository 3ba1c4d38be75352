package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/episim/episim/internal/config"
	"github.com/episim/episim/internal/engine"
	"github.com/episim/episim/internal/sir"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	subStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	editStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

const (
	stateParams = iota
	stateResults
)

var baseParams = []string{"population", "infectious", "recovered", "beta", "gamma", "steps"}

var interventionParams = []string{"day", "beta after"}

var paramStep = map[string]float64{
	"population": 100, "infectious": 1, "recovered": 1,
	"beta": 0.01, "gamma": 0.01, "steps": 10,
	"day": 5, "beta after": 0.01,
}

type Model struct {
	state, cursor int
	engine        engine.Engine
	params        map[string]float64
	intervention  bool
	editing       bool
	editBuf       string
	errMsg        string

	series   sir.TimeSeries
	baseline sir.TimeSeries
	summary  sir.Summary
	baseSum  sir.Summary
	playHead int
	playing  bool

	width, height int
}

func New(eng engine.Engine, cfg *config.Config) Model {
	return Model{
		state:        stateParams,
		engine:       eng,
		intervention: cfg.Intervention.Enabled,
		params: map[string]float64{
			"population": cfg.Population,
			"infectious": cfg.InitialInfectious,
			"recovered":  cfg.InitialRecovered,
			"beta":       cfg.TransmissionRate,
			"gamma":      cfg.RecoveryRate,
			"steps":      float64(cfg.Timesteps),
			"day":        float64(cfg.Intervention.Time),
			"beta after": cfg.Intervention.TransmissionAfter,
		},
		width: 80, height: 24,
	}
}

func (m Model) paramNames() []string {
	if m.intervention {
		return append(append([]string{}, baseParams...), interventionParams...)
	}
	return baseParams
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateResults {
			return m, nil
		}
		if m.playing && m.playHead < len(m.series) {
			m.playHead++
		}
		if m.playHead >= len(m.series) {
			m.playing = false
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.state {
	case stateParams:
		return m.paramsKey(msg)
	case stateResults:
		return m.resultsKey(msg)
	}
	return m, nil
}

func (m Model) paramsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	names := m.paramNames()
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[names[m.cursor]] = val
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(names)-1 {
			m.cursor++
		}
	case "left", "h":
		name := names[m.cursor]
		m.params[name] -= paramStep[name]
	case "right", "l":
		name := names[m.cursor]
		m.params[name] += paramStep[name]
	case "enter":
		m.editing, m.editBuf = true, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", m.params[names[m.cursor]]), "0"), ".")
	case "i":
		m.intervention = !m.intervention
		if m.cursor >= len(m.paramNames()) {
			m.cursor = len(m.paramNames()) - 1
		}
	case "s", "r":
		return m.run()
	}
	return m, nil
}

func (m Model) run() (Model, tea.Cmd) {
	cfg := m.config()
	if err := cfg.Validate(); err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	m.errMsg = ""

	ctx := context.Background()
	if m.intervention {
		series, err := m.engine.SimulateIntervention(ctx, cfg.InterventionParameters())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		baseline, err := m.engine.Simulate(ctx, cfg.Parameters())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.series, m.baseline = series, baseline
		m.baseSum = sir.Summarize(baseline, cfg.Population)
	} else {
		series, err := m.engine.Simulate(ctx, cfg.Parameters())
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.series, m.baseline = series, nil
	}
	m.summary = sir.Summarize(m.series, cfg.Population)
	m.state = stateResults
	m.playHead = 2
	if m.playHead > len(m.series) {
		m.playHead = len(m.series)
	}
	m.playing = true
	return m, tick()
}

func (m Model) config() *config.Config {
	return &config.Config{
		Population:        m.params["population"],
		InitialInfectious: m.params["infectious"],
		InitialRecovered:  m.params["recovered"],
		TransmissionRate:  m.params["beta"],
		RecoveryRate:      m.params["gamma"],
		Timesteps:         int(m.params["steps"]),
		Intervention: config.InterventionConfig{
			Enabled:           m.intervention,
			Time:              int(m.params["day"]),
			TransmissionAfter: m.params["beta after"],
		},
	}
}

func (m Model) View() string {
	switch m.state {
	case stateParams:
		return m.viewParams()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m Model) viewParams() string {
	var b strings.Builder
	b.WriteString("\n\n    " + headerStyle.Render("EPISIM") + "\n")
	b.WriteString("    " + subStyle.Render("sir epidemic simulator") + "\n")
	b.WriteString("    " + subStyle.Render("──────────────────────") + "\n\n")

	names := m.paramNames()
	for i, name := range names {
		val := m.params[name]
		valStr := fmt.Sprintf("%8.2f", val)
		if m.editing && i == m.cursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.cursor {
			style := activeStyle
			if m.editing {
				style = editStyle
			}
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				cursorStyle.Render("▸"),
				activeStyle.Render(fmt.Sprintf("%-12s", name)),
				style.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				dimStyle.Render(fmt.Sprintf("%-12s", name)),
				dimStyle.Render(valStr)))
		}
	}

	toggle := "off"
	if m.intervention {
		toggle = "on"
	}
	b.WriteString("\n      " + dimStyle.Render(fmt.Sprintf("%-12s", "intervention")) + dimStyle.Render(fmt.Sprintf("%8s", toggle)) + "\n")

	if m.errMsg != "" {
		b.WriteString("\n    " + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n    " +
		keyStyle.Render("j/k") + helpStyle.Render(" select  ") +
		keyStyle.Render("h/l") + helpStyle.Render(" adjust  ") +
		keyStyle.Render("enter") + helpStyle.Render(" edit  ") +
		keyStyle.Render("i") + helpStyle.Render(" intervention  ") +
		keyStyle.Render("s") + helpStyle.Render(" run  ") +
		keyStyle.Render("q") + helpStyle.Render(" quit") + "\n")
	return b.String()
}

func Run(eng engine.Engine, cfg *config.Config) error {
	_, err := tea.NewProgram(New(eng, cfg), tea.WithAltScreen()).Run()
	return err
}
