// Package ops defines the operation records a sequence is built from.
// Operations are plain immutable values; channels create them and
// backends consume them.
package ops

import "fmt"

// Shape identifies a pulse envelope shape
type Shape string

const (
	ShapeGaussian Shape = "gaussian"
	ShapeSquare   Shape = "square"
)

// Default pulse durations in seconds
const (
	DefaultXYPulseDuration = 40e-9
	DefaultZPulseDuration  = 100e-9
)

// Operation is the closed set of sequence entries: pulse, delay, measure
type Operation interface {
	fmt.Stringer
	operation()
}

// PulseOperation describes a shaped control pulse on a channel
type PulseOperation struct {
	ChannelPath string
	Duration    float64 // seconds
	Amplitude   float64 // volts
	Frequency   float64 // Hz
	Phase       float64 // radians
	Shape       Shape
}

func (op PulseOperation) operation() {}

func (op PulseOperation) String() string {
	return fmt.Sprintf("pulse channel=%s shape=%s amplitude=%.4g duration=%.3gs",
		op.ChannelPath, op.Shape, op.Amplitude, op.Duration)
}

// DelayOperation is idle time between operations
type DelayOperation struct {
	Duration float64 // seconds
}

func (op DelayOperation) operation() {}

func (op DelayOperation) String() string {
	return fmt.Sprintf("delay duration=%.3gs", op.Duration)
}

// MeasureOperation triggers readout on a channel for its integration time
type MeasureOperation struct {
	ChannelPath     string
	IntegrationTime float64 // seconds
}

func (op MeasureOperation) operation() {}

func (op MeasureOperation) String() string {
	return fmt.Sprintf("measure channel=%s integration_time=%.3gs",
		op.ChannelPath, op.IntegrationTime)
}
