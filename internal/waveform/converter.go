// Package waveform turns symbolic pulse operations into sampled
// time/amplitude envelopes for plotting and simulation.
package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/qcsim/qcs-go/internal/ops"
)

// DefaultSampleRate is the sampling rate in samples per second used
// when the caller passes a non-positive rate.
const DefaultSampleRate = 1e9

// Convert samples a pulse operation into matching time and envelope
// arrays. The grid is half-open over [0, duration) with step
// duration/N, where N = max(floor(duration*rate), 2); both returned
// slices always have length N.
func Convert(op ops.PulseOperation, sampleRate float64) (times, envelope []float64) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	n := int(op.Duration * sampleRate)
	if n < 2 {
		n = 2
	}
	step := op.Duration / float64(n)

	times = make([]float64, n)
	floats.Span(times, 0, op.Duration-step)

	envelope = make([]float64, n)
	switch op.Shape {
	case ops.ShapeGaussian:
		sigma := op.Duration / 4
		center := op.Duration / 2
		for i, t := range times {
			d := (t - center) / sigma
			envelope[i] = op.Amplitude * math.Exp(-0.5*d*d)
		}
	case ops.ShapeSquare:
		for i := range envelope {
			envelope[i] = op.Amplitude
		}
	default:
		// Unknown shapes sample to silence rather than an error.
	}

	return times, envelope
}
