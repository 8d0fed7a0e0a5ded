// ABOUTME: Entry point for the WAV inspection tool
// ABOUTME: Decodes a PCM16 WAV file and prints its format and data size
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Resonate-Protocol/formant-go/pkg/audio"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/decode"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/riff"
)

var stats = flag.Bool("stats", false, "Print peak and RMS levels of the samples")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-stats] file.wav\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := inspect(os.Stdout, flag.Arg(0), *stats); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(w io.Writer, path string, withStats bool) error {
	c, err := riff.Decode(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Format: %+v\n", c.Format())
	fmt.Fprintf(w, "Data: %d bytes\n", c.Data().Size())

	if !withStats {
		return nil
	}

	f := c.Format()
	format := audio.Format{
		SampleRate: int(f.SampleRate),
		Channels:   int(f.Channels),
		BitDepth:   int(f.BitsPerSample),
	}
	dec, err := decode.NewPCM(format)
	if err != nil {
		return err
	}
	defer dec.Close()

	samples, err := dec.Decode(c.Bytes())
	if err != nil {
		return fmt.Errorf("failed to decode samples: %w", err)
	}

	buf := audio.Buffer{Samples: samples, Format: format}
	fmt.Fprintf(w, "Frames: %d (%v)\n", buf.Frames(), buf.Duration())
	fmt.Fprintf(w, "Peak: %.4f\n", audio.Peak(samples))
	fmt.Fprintf(w, "RMS: %.4f\n", audio.RMS(samples))
	return nil
}
