// ABOUTME: Render progress TUI
// ABOUTME: Live per-phoneme job status display using bubbletea
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Resonate-Protocol/formant-go/internal/render"
	"github.com/Resonate-Protocol/formant-go/internal/version"
)

// RenderTUI manages the progress TUI
type RenderTUI struct {
	program  *tea.Program
	updates  chan tea.Msg
	quitChan chan struct{} // Signal to cancel the render
}

// Status holds the run description shown in the header
type Status struct {
	RunID      string
	Source     string
	SampleRate int
	OutputDir  string
}

// JobInfo holds one job's state for display
type JobInfo struct {
	Symbol  string
	State   string
	Elapsed time.Duration
	Err     error
}

// model is the bubbletea model for the render TUI
type model struct {
	status    Status
	jobs      []JobInfo
	startTime time.Time
	finished  bool
	err       error
	quitting  bool
	quitChan  chan struct{}
}

type tickMsg time.Time
type eventMsg render.Event
type doneMsg struct{ err error }

func newModel(status Status, jobs []render.Job, quitChan chan struct{}) model {
	infos := make([]JobInfo, len(jobs))
	for i, j := range jobs {
		infos[i] = JobInfo{Symbol: j.Symbol, State: "queued"}
	}
	return model{
		status:    status,
		jobs:      infos,
		startTime: time.Now(),
		quitChan:  quitChan,
	}
}

func (m model) Init() tea.Cmd {
	return tickEvery()
}

func tickEvery() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			select {
			case m.quitChan <- struct{}{}:
			default:
			}
			return m, tea.Quit
		}

	case tickMsg:
		if m.finished {
			return m, nil
		}
		return m, tickEvery()

	case eventMsg:
		m.apply(render.Event(msg))
		return m, nil

	case doneMsg:
		m.finished = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m *model) apply(ev render.Event) {
	if ev.Index < 0 || ev.Index >= len(m.jobs) {
		return
	}
	info := &m.jobs[ev.Index]
	info.State = ev.Kind.String()
	info.Elapsed = ev.Elapsed
	info.Err = ev.Err
}

// counts returns how many jobs are finished and failed
func (m model) counts() (finished, failed int) {
	for _, j := range m.jobs {
		switch j.State {
		case render.JobFinished.String():
			finished++
		case render.JobFailed.String():
			failed++
		}
	}
	return finished, failed
}

func (m model) View() string {
	if m.quitting {
		return "Cancelling render...\n"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	jobHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("220"))

	failStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", version.Product, version.Version)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render("Run: "))
	b.WriteString(valueStyle.Render(m.status.RunID))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Source: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s @ %d Hz", m.status.Source, m.status.SampleRate)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Output: "))
	b.WriteString(valueStyle.Render(m.status.OutputDir))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Elapsed: "))
	b.WriteString(valueStyle.Render(time.Since(m.startTime).Round(time.Second).String()))
	b.WriteString("\n\n")

	finished, failed := m.counts()
	b.WriteString(jobHeaderStyle.Render(fmt.Sprintf("Phonemes (%d/%d done)", finished, len(m.jobs))))
	b.WriteString("\n\n")

	for _, j := range m.jobs {
		b.WriteString(fmt.Sprintf("  • %-4s", j.Symbol))
		if j.Err != nil {
			b.WriteString(failStyle.Render(fmt.Sprintf(" %s: %v", j.State, j.Err)))
		} else if j.Elapsed > 0 {
			b.WriteString(valueStyle.Render(fmt.Sprintf(" %s (%v)", j.State, j.Elapsed.Round(time.Millisecond))))
		} else {
			b.WriteString(valueStyle.Render(" " + j.State))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.finished && m.err != nil:
		b.WriteString(failStyle.Render(fmt.Sprintf("Render failed: %v", m.err)))
	case m.finished:
		b.WriteString(valueStyle.Render("Render complete"))
	case failed > 0:
		b.WriteString(failStyle.Render(fmt.Sprintf("%d job(s) failed", failed)))
	default:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press 'q' or Ctrl+C to cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

// New creates a render TUI
func New() *RenderTUI {
	return &RenderTUI{
		updates:  make(chan tea.Msg, 64),
		quitChan: make(chan struct{}, 1),
	}
}

// Run shows the TUI until the render finishes or the user quits
func (t *RenderTUI) Run(status Status, jobs []render.Job) error {
	t.program = tea.NewProgram(newModel(status, jobs, t.quitChan))

	go func() {
		for msg := range t.updates {
			t.program.Send(msg)
		}
	}()

	_, err := t.program.Run()
	return err
}

// Event forwards a render event. It never blocks the renderer.
func (t *RenderTUI) Event(ev render.Event) {
	select {
	case t.updates <- eventMsg(ev):
	default:
	}
}

// Finish reports the end of the run and closes the TUI
func (t *RenderTUI) Finish(err error) {
	t.updates <- doneMsg{err: err}
	close(t.updates)
}

// QuitChan returns the channel that signals when user wants to cancel
func (t *RenderTUI) QuitChan() <-chan struct{} {
	return t.quitChan
}
