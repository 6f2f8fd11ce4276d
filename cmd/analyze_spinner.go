package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/honeybible-cli/internal/application"
)

var lastSourceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

type analyzeProgressMsg struct {
	done   int
	source string
}

type analyzeDoneMsg struct {
	err error
}

// analyzeSpinnerModel shows how many transcripts of the batch are finished
// and which one finished last.
type analyzeSpinnerModel struct {
	spinner spinner.Model
	total   int
	done    int
	last    string
	analyze tea.Cmd
	err     error
	quit    bool
}

func newAnalyzeSpinnerModel(total int, analyze tea.Cmd) analyzeSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("214"))),
	)

	return analyzeSpinnerModel{
		spinner: s,
		total:   total,
		analyze: analyze,
	}
}

func (m analyzeSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.analyze)
}

func (m analyzeSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case analyzeProgressMsg:
		if msg.done > m.done {
			m.done = msg.done
			m.last = msg.source
		}
		return m, nil
	case analyzeDoneMsg:
		m.quit = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m analyzeSpinnerModel) View() string {
	if m.quit {
		return ""
	}

	view := fmt.Sprintf("%s Analyzing transcripts %d/%d", m.spinner.View(), m.done, m.total)
	if m.last != "" {
		view += " " + lastSourceStyle.Render(filepath.Base(m.last))
	}
	return view
}

// runAnalyzeSpinner shows batch progress on output while analyze runs. The
// progress callback handed to analyze feeds the spinner.
func runAnalyzeSpinner(ctx context.Context, output io.Writer, total int, analyze func(context.Context, application.ProgressFunc) error) error {
	var p *tea.Program
	progress := func(done, _ int, source string) {
		p.Send(analyzeProgressMsg{done: done, source: source})
	}
	analyzeCmd := func() tea.Msg {
		return analyzeDoneMsg{err: analyze(ctx, progress)}
	}

	p = tea.NewProgram(
		newAnalyzeSpinnerModel(total, analyzeCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(analyzeSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
