// ABOUTME: Entry point for the phoneme renderer
// ABOUTME: Parses CLI flags, loads config and renders vowels to WAV files
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Resonate-Protocol/formant-go/internal/config"
	"github.com/Resonate-Protocol/formant-go/internal/render"
	"github.com/Resonate-Protocol/formant-go/internal/tui"
	"github.com/Resonate-Protocol/formant-go/internal/version"
)

var (
	configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
	outDir     = flag.String("out", "", "Output directory (overrides output_dir)")
	source     = flag.String("source", "", "Excitation: glottal, sine, square or harmonic (overrides voice.source)")
	phonemes   = flag.String("phonemes", "", "Comma-separated phoneme symbols (overrides phonemes)")
	logFile    = flag.String("log-file", "formant-render.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
)

func main() {
	flag.Parse()

	useTUI := !*noTUI

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Starting %s %s", version.Product, version.Version)
	log.Printf("Logging to: %s", *logFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received %v signal, cancelling render", sig)
		cancel()
	}()

	renderer := render.New(cfg)
	jobs := render.Jobs(cfg)

	if !useTUI {
		if _, err := renderer.Run(ctx, jobs); err != nil {
			log.Fatalf("Render failed: %v", err)
		}
		log.Printf("Wrote %d files to %s", len(jobs), cfg.OutputDir)
		return
	}

	ui := tui.New()
	renderer.OnProgress(ui.Event)

	go func() {
		<-ui.QuitChan()
		log.Printf("Received quit signal from TUI")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() {
		_, err := renderer.Run(ctx, jobs)
		ui.Finish(err)
		errCh <- err
	}()

	if err := ui.Run(tui.Status{
		RunID:      renderer.RunID(),
		Source:     cfg.Voice.Source,
		SampleRate: cfg.OutputRate,
		OutputDir:  cfg.OutputDir,
	}, jobs); err != nil {
		log.Printf("TUI error: %v", err)
	}

	if err := <-errCh; err != nil {
		log.Printf("Render failed: %v", err)
		os.Exit(1)
	}
	log.Printf("Wrote %d files to %s", len(jobs), cfg.OutputDir)
}

// applyFlags lets command-line flags win over file and environment values
func applyFlags(cfg *config.Config) {
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *source != "" {
		cfg.Voice.Source = *source
	}
	if *phonemes != "" {
		var symbols []string
		for _, s := range strings.Split(*phonemes, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
		cfg.Phonemes = symbols
	}
}
