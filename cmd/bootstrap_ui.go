package cmd

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opsfactor/buildprep-cli/lib"
)

var (
	stepDoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stepFailedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	stepPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type stepDoneMsg struct {
	index int
	err   error
}

type bootstrapModel struct {
	steps   []lib.Step
	current int
	spinner spinner.Model
	err     error
	done    bool
}

func newBootstrapModel(steps []lib.Step) bootstrapModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return bootstrapModel{steps: steps, spinner: s}
}

// runStepCmd executes one step off the UI goroutine. Steps still run one at
// a time; the next is only dispatched after the previous result arrives.
func runStepCmd(steps []lib.Step, index int) tea.Cmd {
	return func() tea.Msg {
		return stepDoneMsg{index: index, err: steps[index].Run()}
	}
}

func (m bootstrapModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, runStepCmd(m.steps, 0))
}

func (m bootstrapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = errors.New("interrupted")
			return m, tea.Quit
		}

	case stepDoneMsg:
		if msg.err != nil {
			m.err = lib.NewStepError(m.steps[msg.index].Name, msg.err)
			return m, tea.Quit
		}

		m.current = msg.index + 1
		if m.current >= len(m.steps) {
			m.done = true
			return m, tea.Quit
		}

		return m, runStepCmd(m.steps, m.current)
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m bootstrapModel) View() string {
	var b strings.Builder

	for i, step := range m.steps {
		switch {
		case i < m.current:
			b.WriteString(stepDoneStyle.Render("  ✔ "+step.Name) + "\n")
		case i == m.current && m.err != nil:
			b.WriteString(stepFailedStyle.Render("  ✗ "+step.Name) + "\n")
		case i == m.current && !m.done:
			b.WriteString("  " + m.spinner.View() + " " + step.Name + "\n")
		default:
			b.WriteString(stepPendingStyle.Render("    "+step.Name) + "\n")
		}
	}

	return b.String()
}

func runStepsInteractive(steps []lib.Step) error {
	p := tea.NewProgram(newBootstrapModel(steps))

	result, err := p.Run()
	if err != nil {
		return err
	}

	return result.(bootstrapModel).err
}
