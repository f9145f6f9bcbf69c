// Package experiment binds a device graph to a sequence-generation
// step and dispatches the built sequence to a backend.
package experiment

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/qcsim/qcs-go/internal/device"
	"github.com/qcsim/qcs-go/internal/ops"
	"github.com/qcsim/qcs-go/internal/sequence"
)

// ErrSequenceNotImplemented is returned by Run when no sequence
// function has been bound to the experiment.
var ErrSequenceNotImplemented = errors.New("experiment has no sequence function; bind one before running")

// Params carries the swept experiment parameters for one run.
type Params map[string]float64

// SequenceFunc populates a builder for a single sweep point.
type SequenceFunc func(b *sequence.Builder, params Params) error

// Backend executes a finished operation sequence. Printing and
// plotting backends return 0; the simulation backend returns the final
// excited-state population.
type Backend interface {
	Execute(operations []ops.Operation) (float64, error)
}

// Experiment owns a device graph and an optional sequence function.
type Experiment struct {
	System *device.System

	makeSequence SequenceFunc
	log          zerolog.Logger
}

// New loads the device graph from the given configuration file. The
// returned experiment has no sequence function; Run fails with
// ErrSequenceNotImplemented until one is bound.
func New(configPath string, log zerolog.Logger) (*Experiment, error) {
	sys, err := device.Load(configPath, log)
	if err != nil {
		return nil, fmt.Errorf("load system: %w", err)
	}
	return &Experiment{System: sys, log: log}, nil
}

// SetSequenceFunc binds the sequence-generation step.
func (e *Experiment) SetSequenceFunc(fn SequenceFunc) {
	e.makeSequence = fn
}

// Run builds a fresh sequence for the given parameters and hands it to
// the backend, returning the backend's result unmodified. Each call is
// one complete build-and-execute cycle; nothing is cached or reused
// across calls.
func (e *Experiment) Run(backend Backend, params Params) (float64, error) {
	if e.makeSequence == nil {
		return 0, ErrSequenceNotImplemented
	}

	runLog := e.log.With().Str("run_id", uuid.NewString()[:8]).Logger()

	builder := sequence.NewBuilder()
	if err := e.makeSequence(builder, params); err != nil {
		return 0, fmt.Errorf("build sequence: %w", err)
	}

	operations := builder.Operations()
	runLog.Debug().Int("operations", len(operations)).Msg("sequence built")

	return backend.Execute(operations)
}
