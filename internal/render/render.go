// ABOUTME: Batch phoneme renderer
// ABOUTME: Synthesizes phonemes in parallel and writes PCM16 WAV files with a manifest
package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Resonate-Protocol/formant-go/internal/config"
	"github.com/Resonate-Protocol/formant-go/internal/phoneme"
	"github.com/Resonate-Protocol/formant-go/internal/version"
	"github.com/Resonate-Protocol/formant-go/pkg/audio"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/resample"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/riff"
)

// ManifestName is the file written next to the rendered WAVs
const ManifestName = "manifest.yaml"

// Job renders one phoneme with one source
type Job struct {
	Symbol string
	Source string
}

// FileName is the WAV file name a job writes
func (j Job) FileName() string {
	return j.Symbol + "_phoneme.wav"
}

// Jobs builds one job per configured phoneme
func Jobs(cfg config.Config) []Job {
	jobs := make([]Job, len(cfg.Phonemes))
	for i, symbol := range cfg.Phonemes {
		jobs[i] = Job{Symbol: symbol, Source: cfg.Voice.Source}
	}
	return jobs
}

// EventKind says what happened to a job
type EventKind int

const (
	JobStarted EventKind = iota
	JobFinished
	JobFailed
)

func (k EventKind) String() string {
	switch k {
	case JobStarted:
		return "started"
	case JobFinished:
		return "finished"
	case JobFailed:
		return "failed"
	}
	return "unknown"
}

// Event reports job progress
type Event struct {
	Kind    EventKind
	Job     Job
	Index   int
	Total   int
	Path    string
	Elapsed time.Duration
	Err     error
}

// FileEntry describes one rendered file in the manifest
type FileEntry struct {
	Symbol string  `yaml:"symbol"`
	Path   string  `yaml:"path"`
	Frames int     `yaml:"frames"`
	Peak   float64 `yaml:"peak"`
	RMS    float64 `yaml:"rms"`
}

// Manifest records a render run
type Manifest struct {
	RunID      string      `yaml:"run_id"`
	Product    string      `yaml:"product"`
	Version    string      `yaml:"version"`
	CreatedAt  time.Time   `yaml:"created_at"`
	SampleRate int         `yaml:"sample_rate"`
	Source     string      `yaml:"source"`
	Pitch      float64     `yaml:"pitch"`
	Files      []FileEntry `yaml:"files"`
}

// Renderer runs render jobs
type Renderer struct {
	cfg   config.Config
	runID string

	progressMu sync.Mutex
	progress   func(Event)
}

// New creates a renderer for a validated config
func New(cfg config.Config) *Renderer {
	return &Renderer{
		cfg:   cfg,
		runID: uuid.New().String(),
	}
}

// RunID identifies this renderer's output
func (r *Renderer) RunID() string {
	return r.runID
}

// OnProgress registers a callback for job events. Calls are serialized.
func (r *Renderer) OnProgress(fn func(Event)) {
	r.progress = fn
}

func (r *Renderer) emit(ev Event) {
	if r.progress == nil {
		return
	}
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.progress(ev)
}

// Run renders every job, at most cfg.Concurrency at a time, then writes
// the manifest. The first failure cancels the remaining jobs.
func (r *Renderer) Run(ctx context.Context, jobs []Job) (*Manifest, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	log.Printf("Render run %s: %d jobs, source=%s, rate=%d Hz, concurrency=%d",
		r.runID, len(jobs), r.cfg.Voice.Source, r.cfg.OutputRate, r.cfg.Concurrency)

	entries := make([]FileEntry, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := filepath.Join(r.cfg.OutputDir, job.FileName())
			start := time.Now()
			r.emit(Event{Kind: JobStarted, Job: job, Index: i, Total: len(jobs), Path: path})

			entry, err := r.renderJob(ctx, job, path)
			elapsed := time.Since(start)
			if err != nil {
				log.Printf("Render %s failed after %v: %v", job.Symbol, elapsed, err)
				r.emit(Event{Kind: JobFailed, Job: job, Index: i, Total: len(jobs), Path: path, Elapsed: elapsed, Err: err})
				return fmt.Errorf("render %s: %w", job.Symbol, err)
			}

			log.Printf("Rendered %s -> %s (%d frames, peak %.3f) in %v",
				job.Symbol, path, entry.Frames, entry.Peak, elapsed)
			entries[i] = entry
			r.emit(Event{Kind: JobFinished, Job: job, Index: i, Total: len(jobs), Path: path, Elapsed: elapsed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Manifest{
		RunID:      r.runID,
		Product:    version.Product,
		Version:    version.Version,
		CreatedAt:  time.Now().UTC(),
		SampleRate: r.cfg.OutputRate,
		Source:     r.cfg.Voice.Source,
		Pitch:      r.cfg.Voice.Pitch,
		Files:      entries,
	}
	if err := writeManifest(filepath.Join(r.cfg.OutputDir, ManifestName), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Renderer) renderJob(ctx context.Context, job Job, path string) (FileEntry, error) {
	p, err := phoneme.Lookup(job.Symbol)
	if err != nil {
		return FileEntry{}, err
	}

	samples, err := Synthesize(ctx, r.cfg, job.Source, p)
	if err != nil {
		return FileEntry{}, err
	}

	if peak := audio.Peak(samples); peak > r.cfg.Voice.Peak {
		audio.Normalize(samples, r.cfg.Voice.Peak)
	}

	if r.cfg.OutputRate != r.cfg.SampleRate {
		samples = resample.Convert(samples, r.cfg.SampleRate, r.cfg.OutputRate, 1)
	}

	if err := riff.EncodeMono(path, audio.Quantize(samples), uint32(r.cfg.OutputRate)); err != nil {
		return FileEntry{}, err
	}

	return FileEntry{
		Symbol: job.Symbol,
		Path:   job.FileName(),
		Frames: len(samples),
		Peak:   audio.Peak(samples),
		RMS:    audio.RMS(samples),
	}, nil
}

func writeManifest(path string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by Run
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
