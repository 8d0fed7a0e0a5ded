// ABOUTME: Linear resampler for float sample streams
// ABOUTME: Interpolates interleaved frames to a new sample rate
package resample

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	channels   int
	ratio      float64
	position   float64
}

// New creates a new resampler. Channels below one are treated as mono.
func New(inputRate, outputRate, channels int) *Resampler {
	if channels < 1 {
		channels = 1
	}
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		channels:   channels,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// Ratio is the number of input frames consumed per output frame
func (r *Resampler) Ratio() float64 {
	return r.ratio
}

// Resample converts interleaved input at inputRate into interleaved output
// at outputRate and returns the number of samples written. Output stops
// when the input runs out or output is full, whichever comes first.
func (r *Resampler) Resample(input []float64, output []float64) int {
	inputFrames := len(input) / r.channels
	outputFrames := len(output) / r.channels
	if inputFrames == 0 {
		return 0
	}

	outIdx := 0
	for outIdx < outputFrames {
		inputIdx := int(r.position)
		if inputIdx >= inputFrames {
			break
		}

		frac := r.position - float64(inputIdx)
		next := inputIdx + 1
		if next >= inputFrames {
			// Last frame: only exact hits are emitted
			if frac > 0 {
				break
			}
			next = inputIdx
		}

		for ch := 0; ch < r.channels; ch++ {
			s1 := input[inputIdx*r.channels+ch]
			s2 := input[next*r.channels+ch]
			output[outIdx*r.channels+ch] = s1*(1.0-frac) + s2*frac
		}

		outIdx++
		r.position += r.ratio
	}

	// Carry the fractional position into the next chunk
	r.position -= float64(inputFrames)
	if r.position < 0 {
		r.position = 0
	}

	return outIdx * r.channels
}

// Reset resets the resampler state
func (r *Resampler) Reset() {
	r.position = 0
}

// OutputSamplesNeeded calculates how many output samples a buffer of
// inputSamples can produce from a fresh resampler
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	inputFrames := inputSamples / r.channels
	if inputFrames == 0 {
		return 0
	}
	outputFrames := int(float64(inputFrames-1)/r.ratio) + 1
	return outputFrames * r.channels
}

// InputSamplesNeeded calculates how many input samples are needed to produce output samples
func (r *Resampler) InputSamplesNeeded(outputSamples int) int {
	outputFrames := outputSamples / r.channels
	if outputFrames == 0 {
		return 0
	}
	inputFrames := int(float64(outputFrames-1)*r.ratio) + 1
	return inputFrames * r.channels
}

// Convert resamples a whole interleaved buffer. Equal rates return a copy.
func Convert(samples []float64, inputRate, outputRate, channels int) []float64 {
	if inputRate == outputRate {
		return append([]float64(nil), samples...)
	}

	r := New(inputRate, outputRate, channels)
	out := make([]float64, r.OutputSamplesNeeded(len(samples)))
	n := r.Resample(samples, out)
	return out[:n]
}
