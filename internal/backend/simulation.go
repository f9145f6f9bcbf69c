package backend

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qcsim/qcs-go/internal/device"
	"github.com/qcsim/qcs-go/internal/ops"
	"github.com/qcsim/qcs-go/internal/physics"
	"github.com/qcsim/qcs-go/internal/waveform"
)

// Simulation executes a sequence by physically simulating the first XY
// drive pulse against the system's first tunable qubit and returning
// the final excited-state population.
//
// Only that first pulse is considered; delays, measurements and any
// later pulses are ignored. Multi-qubit systems are not supported:
// extending this backend requires per-qubit addressing in the
// Hamiltonian construction.
type Simulation struct {
	system     *device.System
	sampleRate float64
	opts       physics.Options
	log        zerolog.Logger
}

// NewSimulation creates a simulation backend bound to a device graph.
// A non-positive sampleRate selects the waveform default.
func NewSimulation(system *device.System, sampleRate float64, log zerolog.Logger) *Simulation {
	return &Simulation{
		system:     system,
		sampleRate: sampleRate,
		log:        log,
	}
}

// SetPhysicsOptions overrides the solver options, e.g. to pin the
// volts-to-Rabi calibration constant in tests.
func (s *Simulation) SetPhysicsOptions(opts physics.Options) {
	s.opts = opts
}

// Execute finds the first XY pulse in the sequence and simulates the
// qubit evolution under it. A sequence with no XY pulse yields 0.0
// without error: no drive means no transition.
func (s *Simulation) Execute(operations []ops.Operation) (float64, error) {
	var drivePulse *ops.PulseOperation
	for _, op := range operations {
		if pulse, ok := op.(ops.PulseOperation); ok && isXYPath(pulse.ChannelPath) {
			drivePulse = &pulse
			break
		}
	}
	if drivePulse == nil {
		return 0, nil
	}

	qubits := s.system.Qubits()
	if len(qubits) == 0 {
		return 0, fmt.Errorf("no tunable qubit in system")
	}
	qubit := qubits[0]

	times, envelope := waveform.Convert(*drivePulse, s.sampleRate)

	result, err := physics.SimulateWithOptions(envelope, times, qubit.Parameters, s.opts)
	if err != nil {
		return 0, fmt.Errorf("simulate qubit %s: %w", qubit.Name, err)
	}

	s.log.Debug().
		Str("qubit", qubit.Name).
		Str("channel", drivePulse.ChannelPath).
		Float64("amplitude", drivePulse.Amplitude).
		Float64("population", result.Population).
		Msg("evolution complete")

	return result.Population, nil
}
