// Package tui provides a terminal scale explorer for sol
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/sol/pkg/config"
	"github.com/james-see/sol/pkg/mode"
	"github.com/james-see/sol/pkg/scale"
	"github.com/james-see/sol/pkg/tuning"
	"github.com/james-see/sol/pkg/tuning/systems"
)

var (
	solGold    = lipgloss.Color("#FFC83D")
	skyBlue    = lipgloss.Color("#7FD1FF")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(solGold).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(skyBlue).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(solGold).
			Padding(1, 2)
)

type keyMap struct {
	NextMode  key.Binding
	PrevMode  key.Binding
	Up        key.Binding
	Down      key.Binding
	PitchMode key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMode, k.NextMode, k.Up, k.Down, k.PitchMode, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	PrevMode: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev mode"),
	),
	NextMode: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next mode"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "tonic up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "tonic down"),
	),
	PitchMode: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "steps/pitches"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the scale explorer state
type Model struct {
	cfg       *config.Config
	modes     []string
	modeIndex int
	tonic     int
	system    tuning.System
	pitchMode bool
	scale     *scale.Scale

	table table.Model
	help  help.Model
	err   error
	width int
}

// New creates the explorer starting from the configured defaults
func New(cfg *config.Config) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	start, err := cfg.Scale("", "", "", false)
	if err != nil {
		return Model{}, err
	}

	modes := cfg.ModeNames()
	index := -1
	for i, name := range modes {
		if strings.EqualFold(name, cfg.Defaults.Mode) {
			index = i
			break
		}
	}
	if index < 0 {
		modes = append([]string{cfg.Defaults.Mode}, modes...)
		index = 0
	}

	m := Model{
		cfg:       cfg,
		modes:     modes,
		modeIndex: index,
		tonic:     start.Tonic(),
		system:    start.System(),
		help:      help.New(),
	}
	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(false),
	)
	m.rebuild()
	return m, nil
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextMode):
			m.modeIndex = (m.modeIndex + 1) % len(m.modes)
		case key.Matches(msg, keys.PrevMode):
			m.modeIndex = (m.modeIndex + len(m.modes) - 1) % len(m.modes)
		case key.Matches(msg, keys.Up):
			m.tonic++
		case key.Matches(msg, keys.Down):
			m.tonic--
		case key.Matches(msg, keys.PitchMode):
			m.pitchMode = !m.pitchMode
		default:
			return m, nil
		}
		m.rebuild()
	}

	return m, nil
}

// rebuild resolves the current scale and refreshes the table rows
func (m *Model) rebuild() {
	md, err := m.cfg.Mode(m.modes[m.modeIndex])
	if err != nil {
		m.err = err
		m.scale = nil
		m.table.SetRows(nil)
		return
	}

	s, err := scale.New(scale.Config{
		Mode:      md,
		Tonic:     tuning.StepKey(m.tonic),
		System:    m.system,
		PitchMode: m.pitchMode,
	})
	if err != nil {
		m.err = err
		m.scale = nil
		m.table.SetRows(nil)
		return
	}
	m.err = nil
	m.scale = s

	last := 2*md.Len() + 1
	rows := make([]table.Row, 0, last)
	for d := 1; d <= last; d++ {
		rows = append(rows, m.row(d))
	}
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 1)
}

func (m Model) columns() []table.Column {
	value := "Step"
	if m.pitchMode {
		value = "Hz"
	}
	return []table.Column{
		{Title: "Degree", Width: 7},
		{Title: "Note", Width: 6},
		{Title: "MIDI", Width: 5},
		{Title: value, Width: 12},
	}
}

func (m Model) row(degree int) table.Row {
	step := m.scale.StepAt(degree)

	note, midi := "-", "-"
	if _, ok := m.system.(*systems.TwelveTone); ok {
		if name, err := systems.NoteName(step); err == nil {
			note = name
		}
		if n, err := systems.MIDINote(step); err == nil {
			midi = strconv.Itoa(int(uint8(n)))
		}
	}

	value := strconv.Itoa(step)
	if m.pitchMode {
		value = strconv.FormatFloat(m.scale.At(degree), 'f', 2, 64)
	}
	return table.Row{strconv.Itoa(degree), note, midi, value}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SOL SCALE EXPLORER "))
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s", m.err.Error())))
		s.WriteString("\n")
	} else {
		md := m.scale.Mode()
		tonic := strconv.Itoa(m.tonic)
		if _, ok := m.system.(*systems.TwelveTone); ok {
			if name, err := systems.NoteName(m.tonic); err == nil {
				tonic = name + " (" + tonic + ")"
			}
		}
		s.WriteString(labelStyle.Render("Mode:   "))
		s.WriteString(valueStyle.Render(fmt.Sprintf("%s %s", m.modes[m.modeIndex], md.FormatIntervals())))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("Tonic:  "))
		s.WriteString(valueStyle.Render(tonic))
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("System: "))
		s.WriteString(valueStyle.Render(fmt.Sprint(m.system)))
		s.WriteString("\n\n")
		s.WriteString(m.table.View())
	}

	s.WriteString("\n")
	s.WriteString(m.help.View(keys))

	return boxStyle.Render(s.String())
}

// Mode returns the mode currently shown
func (m Model) Mode() mode.Mode {
	if m.scale == nil {
		return mode.Mode{}
	}
	return m.scale.Mode()
}

// Tonic returns the current tonic step
func (m Model) Tonic() int {
	return m.tonic
}

// Rows returns the rendered table rows
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

// Run starts the TUI application
func Run(cfg *config.Config) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
