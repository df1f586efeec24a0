// Package tui provides a live terminal view of a run: shots execute
// in batches on a background goroutine and the histogram redraws as
// counts accumulate.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/qsim/internal/circuit"
	"github.com/san-kum/qsim/internal/sim"
	"github.com/san-kum/qsim/internal/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

const defaultBatch = 64

type batchMsg struct {
	hist sim.Histogram
	err  error
}

// Model is the bubbletea model for a live run.
type Model struct {
	demo   string
	circ   *circuit.Circuit
	runner *sim.Runner

	total int
	batch int
	done  int
	seed  int64

	hist     sim.Histogram
	paused   bool
	finished bool
	inFlight bool
	err      error
	start    time.Time
}

// New prepares a live run of circ for the given total shot count.
func New(demo string, circ *circuit.Circuit, runner *sim.Runner, shots int, seed int64) Model {
	return Model{
		demo:     demo,
		circ:     circ,
		runner:   runner,
		total:    shots,
		batch:    defaultBatch,
		seed:     seed,
		hist:     sim.Histogram{},
		inFlight: shots > 0,
		start:    time.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.total <= 0 {
		return tea.Quit
	}
	return m.runBatch()
}

// runBatch executes the next slice of shots off the UI goroutine.
// Seeding with seed+done keeps the whole live run identical to a
// single batch run of the same size.
func (m Model) runBatch() tea.Cmd {
	n := m.batch
	if m.done+n > m.total {
		n = m.total - m.done
	}
	runner, circ := m.runner, m.circ
	seed := m.seed + int64(m.done)
	return func() tea.Msg {
		h, err := runner.Run(context.Background(), circ, n, seed)
		return batchMsg{hist: h, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.finished {
				return m, nil
			}
			m.paused = !m.paused
			if !m.paused && !m.inFlight {
				m.inFlight = true
				return m, m.runBatch()
			}
		}
		return m, nil

	case batchMsg:
		m.inFlight = false
		if msg.err != nil {
			m.err = msg.err
			m.finished = true
			return m, nil
		}
		m.hist.Merge(msg.hist)
		m.done += msg.hist.Total()
		if m.done >= m.total {
			m.finished = true
			return m, nil
		}
		if !m.paused {
			m.inFlight = true
			return m, m.runBatch()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("live run: %s", m.demo)))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("%d / %d shots", m.done, m.total)
	switch {
	case m.err != nil:
		status += "  " + errStyle.Render(fmt.Sprintf("error: %v", m.err))
	case m.finished:
		status += fmt.Sprintf("  done in %s", time.Since(m.start).Round(time.Millisecond))
	case m.paused:
		status += "  paused"
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteString("\n\n")

	sb.WriteString(viz.Histogram(m.hist))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("space pause  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run drives the live view to completion or quit.
func Run(demo string, circ *circuit.Circuit, runner *sim.Runner, shots int, seed int64) error {
	p := tea.NewProgram(New(demo, circ, runner, shots, seed))
	_, err := p.Run()
	return err
}
