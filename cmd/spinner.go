package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadDoneMsg struct {
	err error
}

type loadSpinnerModel struct {
	spinner spinner.Model
	label   string
	load    tea.Cmd
	err     error
	done    bool
}

func newLoadSpinnerModel(label string, load tea.Cmd) loadSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return loadSpinnerModel{
		spinner: s,
		label:   label,
		load:    load,
	}
}

func (m loadSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m loadSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m loadSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runLoadSpinner shows label on output while load runs.
func runLoadSpinner(ctx context.Context, output io.Writer, label string, load func(context.Context) error) error {
	loadCmd := func() tea.Msg {
		return loadDoneMsg{err: load(ctx)}
	}

	p := tea.NewProgram(
		newLoadSpinnerModel(label, loadCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loadSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

// loadWithSpinner runs load behind a spinner when output is a terminal and
// quiet is unset.
func loadWithSpinner(ctx context.Context, output io.Writer, quiet bool, label string, load func(context.Context) error) error {
	if quiet || !interactive(output) {
		return load(ctx)
	}
	return runLoadSpinner(ctx, output, label, load)
}

func interactive(output io.Writer) bool {
	f, ok := output.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}
