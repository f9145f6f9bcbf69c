package device

import (
	"github.com/rs/zerolog"

	"github.com/qcsim/qcs-go/internal/ops"
)

// Channel kinds form a closed set: XY and Z drive lines plus readout.
// Each variant turns a control intent into an operation record and has
// no side effects beyond that (and a debug log line).

// XYChannel is a microwave drive line. Pulses default to a 40 ns
// gaussian.
type XYChannel struct {
	Path string

	log zerolog.Logger
}

// PlayPulse creates a gaussian pulse operation on this channel.
// A non-positive duration selects the channel default.
func (c *XYChannel) PlayPulse(amplitude, duration float64) ops.PulseOperation {
	if duration <= 0 {
		duration = ops.DefaultXYPulseDuration
	}
	c.log.Debug().
		Str("channel", c.Path).
		Float64("amplitude", amplitude).
		Msg("creating pulse")
	return ops.PulseOperation{
		ChannelPath: c.Path,
		Duration:    duration,
		Amplitude:   amplitude,
		Shape:       ops.ShapeGaussian,
	}
}

// ZChannel is a flux bias line. Z pulses are square and slower than XY
// pulses, defaulting to 100 ns.
type ZChannel struct {
	Path string

	log zerolog.Logger
}

// PlayPulse creates a square pulse operation on this channel.
// A non-positive duration selects the channel default.
func (c *ZChannel) PlayPulse(amplitude, duration float64) ops.PulseOperation {
	if duration <= 0 {
		duration = ops.DefaultZPulseDuration
	}
	return ops.PulseOperation{
		ChannelPath: c.Path,
		Duration:    duration,
		Amplitude:   amplitude,
		Shape:       ops.ShapeSquare,
	}
}

// ReadoutChannel accumulates readout signal for a fixed integration
// time. Owned by a resonator; qubits hold a non-owning reference.
type ReadoutChannel struct {
	Path            string
	IntegrationTime float64 // seconds
}

// Measure creates a measurement operation using the channel's
// integration time.
func (c *ReadoutChannel) Measure() ops.MeasureOperation {
	return ops.MeasureOperation{
		ChannelPath:     c.Path,
		IntegrationTime: c.IntegrationTime,
	}
}
