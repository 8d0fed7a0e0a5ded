// ABOUTME: Tests for the render TUI model
// ABOUTME: Tests event handling, completion and quit signalling
package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Resonate-Protocol/formant-go/internal/render"
)

func testModel() model {
	jobs := []render.Job{{Symbol: "a"}, {Symbol: "ai"}}
	return newModel(Status{RunID: "run-1", Source: "glottal", SampleRate: 44100, OutputDir: "sounds"}, jobs, make(chan struct{}, 1))
}

func TestNewModelQueuesJobs(t *testing.T) {
	m := testModel()
	if len(m.jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(m.jobs))
	}
	for _, j := range m.jobs {
		if j.State != "queued" {
			t.Errorf("%s: expected queued, got %s", j.Symbol, j.State)
		}
	}
}

func TestEventUpdatesJob(t *testing.T) {
	m := testModel()

	updated, _ := m.Update(eventMsg(render.Event{Kind: render.JobStarted, Index: 1}))
	m = updated.(model)
	if m.jobs[1].State != "started" {
		t.Errorf("expected started, got %s", m.jobs[1].State)
	}

	updated, _ = m.Update(eventMsg(render.Event{Kind: render.JobFinished, Index: 1, Elapsed: 20 * time.Millisecond}))
	m = updated.(model)
	if m.jobs[1].State != "finished" || m.jobs[1].Elapsed != 20*time.Millisecond {
		t.Errorf("unexpected job state %+v", m.jobs[1])
	}

	finished, failed := m.counts()
	if finished != 1 || failed != 0 {
		t.Errorf("expected 1 finished 0 failed, got %d and %d", finished, failed)
	}
}

func TestEventOutOfRangeIgnored(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(eventMsg(render.Event{Kind: render.JobFinished, Index: 7}))
	m = updated.(model)
	if finished, _ := m.counts(); finished != 0 {
		t.Errorf("out-of-range event should be ignored")
	}
}

func TestFailedJobShownInView(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(eventMsg(render.Event{Kind: render.JobFailed, Index: 0, Err: errors.New("boom")}))
	m = updated.(model)

	view := m.View()
	if !strings.Contains(view, "boom") {
		t.Errorf("expected error in view, got:\n%s", view)
	}
	if !strings.Contains(view, "1 job(s) failed") {
		t.Errorf("expected failure summary in view, got:\n%s", view)
	}
}

func TestDoneQuits(t *testing.T) {
	m := testModel()
	updated, cmd := m.Update(doneMsg{})
	m = updated.(model)

	if !m.finished {
		t.Error("expected finished after doneMsg")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if !strings.Contains(m.View(), "Render complete") {
		t.Error("expected completion message")
	}
}

func TestQuitKeySignalsCancel(t *testing.T) {
	m := testModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(model)

	if !m.quitting {
		t.Error("expected quitting after q")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	select {
	case <-m.quitChan:
	default:
		t.Error("expected cancel signal on quit channel")
	}
}

func TestViewShowsHeader(t *testing.T) {
	view := testModel().View()
	for _, want := range []string{"run-1", "glottal @ 44100 Hz", "sounds", "Phonemes (0/2 done)", "ai"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestEventNeverBlocks(t *testing.T) {
	tui := New()
	for i := 0; i < 1000; i++ {
		tui.Event(render.Event{Index: 0})
	}
}
