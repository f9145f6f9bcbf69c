package backend

import (
	"github.com/rs/zerolog"

	"github.com/qcsim/qcs-go/internal/ops"
)

// Printing logs each operation of the sequence in order. Its result is
// always 0; the output is the point.
type Printing struct {
	log zerolog.Logger
}

// NewPrinting creates a printing backend.
func NewPrinting(log zerolog.Logger) *Printing {
	return &Printing{log: log}
}

// Execute logs every operation with its 1-based step number.
func (p *Printing) Execute(operations []ops.Operation) (float64, error) {
	p.log.Info().Int("operations", len(operations)).Msg("operation sequence")
	for i, op := range operations {
		p.log.Info().
			Int("step", i+1).
			Str("operation", op.String()).
			Msg("sequence step")
	}
	return 0, nil
}
