package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rjkit/jsonpad"
	"github.com/rjkit/jsonpad/editor"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Padding(0, 1)

	activeModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	paneLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	// success output and failure messages render through the same
	// style in the same slot
	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type playgroundModel struct {
	err   error
	load  func(context.Context) (jsonpad.Engine, error)
	eng   jsonpad.Engine
	sess  *editor.Session
	st    editor.State
	input textarea.Model
	ready bool
}

type engineReadyMsg struct {
	err error
	eng jsonpad.Engine
}

func newPlaygroundModel(load func(context.Context) (jsonpad.Engine, error), mode editor.Mode) *playgroundModel {
	ta := textarea.New()
	ta.Placeholder = "Type JSON here..."
	ta.SetHeight(8)
	ta.ShowLineNumbers = false

	st := editor.NewState()
	st.Mode = mode

	return &playgroundModel{load: load, st: st, input: ta}
}

func (m *playgroundModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.loadEngine)
}

// loadEngine is the one-time asynchronous initialization step. Input
// handling stays disabled until its message arrives.
func (m *playgroundModel) loadEngine() tea.Msg {
	eng, err := m.load(context.Background())
	return engineReadyMsg{eng: eng, err: err}
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			if m.eng != nil {
				m.eng.Close(ctx)
			}
			return m, tea.Quit

		case "ctrl+p":
			if m.ready {
				m.st = m.sess.SetMode(ctx, m.st, editor.ModeTypeParse)
			}
			return m, nil

		case "ctrl+f":
			if m.ready {
				m.st = m.sess.SetMode(ctx, m.st, editor.ModeFormat)
			}
			return m, nil
		}

	case engineReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.eng = msg.eng
		m.sess = editor.NewSession(msg.eng)
		m.ready = true
		m.input.Focus()
		return m, nil

	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width - 2)
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if text := m.input.Value(); text != before {
		m.st = m.sess.SetInput(ctx, m.st, text)
	}
	return m, cmd
}

func (m *playgroundModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress esc to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("jsonpad"))
	b.WriteString("  ")
	b.WriteString(m.modeControl(editor.ModeTypeParse, "Type & Parse"))
	b.WriteString(" ")
	b.WriteString(m.modeControl(editor.ModeFormat, "Format"))
	b.WriteString("\n\n")

	if !m.ready {
		b.WriteString("Loading engine...")
		return b.String()
	}

	b.WriteString(paneLabelStyle.Render("Input"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(paneLabelStyle.Render("Output"))
	b.WriteString("\n")
	b.WriteString(outputStyle.Render(m.st.Last.Text()))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("ctrl+p type & parse • ctrl+f format • esc quit"))

	return b.String()
}

func (m *playgroundModel) modeControl(mode editor.Mode, label string) string {
	if m.st.Mode == mode {
		return activeModeStyle.Render(label)
	}
	return modeStyle.Render(label)
}

func runInteractive(load func(context.Context) (jsonpad.Engine, error), mode editor.Mode) error {
	p := tea.NewProgram(newPlaygroundModel(load, mode), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
