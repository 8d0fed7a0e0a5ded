// ABOUTME: Formant cascade of resonators
// ABOUTME: Runs one signal through an ordered chain of resonator stages
package formant

import "fmt"

// Cascade is an ordered chain of resonators. It holds no state of its own
// beyond the stages.
type Cascade struct {
	stages []*Resonator
}

// NewCascade creates a cascade that applies stages in the given order
func NewCascade(stages ...*Resonator) *Cascade {
	return &Cascade{stages: stages}
}

// Process pushes x through every stage and returns the last stage's output.
// An empty cascade passes x through unchanged.
func (c *Cascade) Process(x float64) float64 {
	for _, stage := range c.stages {
		x = stage.Process(x)
	}
	return x
}

// ProcessBuffer filters buf in place, one sample at a time through all stages
func (c *Cascade) ProcessBuffer(buf []float64) {
	for i, x := range buf {
		buf[i] = c.Process(x)
	}
}

// Len returns the number of stages
func (c *Cascade) Len() int { return len(c.stages) }

// Stage returns the i-th resonator
func (c *Cascade) Stage(i int) *Resonator { return c.stages[i] }

// Retune retunes stage i without touching its delay registers
func (c *Cascade) Retune(i int, frequency, bandwidth float64) error {
	if i < 0 || i >= len(c.stages) {
		return fmt.Errorf("stage %d out of range (cascade has %d stages)", i, len(c.stages))
	}
	c.stages[i].Retune(frequency, bandwidth)
	return nil
}

// Reset clears the delay registers of every stage
func (c *Cascade) Reset() {
	for _, stage := range c.stages {
		stage.Reset()
	}
}
