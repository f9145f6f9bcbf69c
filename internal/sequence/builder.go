// Package sequence accumulates operations in the order an experiment
// emits them. Order is the sole timing contract backends consume.
package sequence

import "github.com/qcsim/qcs-go/internal/ops"

// Builder collects operations for a single experiment run. It never
// validates or reorders: any mix of pulse, delay and measure operations
// is structurally legal.
type Builder struct {
	operations []ops.Operation
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds an operation to the end of the sequence.
func (b *Builder) Append(op ops.Operation) {
	b.operations = append(b.operations, op)
}

// Delay appends an idle period of the given duration in seconds.
func (b *Builder) Delay(duration float64) {
	b.Append(ops.DelayOperation{Duration: duration})
}

// Len reports the number of accumulated operations.
func (b *Builder) Len() int {
	return len(b.operations)
}

// Operations returns a snapshot of the sequence for backend handoff.
// The snapshot is a copy; the handed-off sequence stays fixed even if
// the builder keeps appending.
func (b *Builder) Operations() []ops.Operation {
	out := make([]ops.Operation, len(b.operations))
	copy(out, b.operations)
	return out
}
