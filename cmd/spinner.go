package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// elapsedAfter is how long a call runs before its duration is shown.
const elapsedAfter = time.Second

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	elapsedStyle  = lipgloss.NewStyle().Faint(true)
)

// isTerminalOutput reports whether w is an interactive terminal.
var isTerminalOutput = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type progressDoneMsg struct {
	err error
}

type progressModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	elapsed time.Duration
	call    tea.Cmd
	err     error
	done    bool
}

func newProgressModel(label string, call tea.Cmd, started time.Time) progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(progressStyle)),
		label:   label,
		started: started,
		call:    call,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		m.elapsed = msg.Time.Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.elapsed < elapsedAfter {
		return m.spinner.View() + " " + m.label
	}

	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, elapsedStyle.Render(m.elapsed.Truncate(time.Second).String()))
}

// runWithSpinner runs work and returns its error. On a terminal, label is
// animated on output until work returns; otherwise work runs silently.
func runWithSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	if !isTerminalOutput(output) {
		return work(ctx)
	}

	call := func() tea.Msg {
		return progressDoneMsg{err: work(ctx)}
	}

	final, err := tea.NewProgram(
		newProgressModel(label, call, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	).Run()
	if err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	model, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("%s: unexpected final model %T", label, final)
	}

	return model.err
}
