package experiment

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/qcsim/qcs-go/internal/sequence"
)

// ParamAmplitude is the swept drive amplitude in volts.
const ParamAmplitude = "amplitude"

// NewRabi builds a Rabi-oscillation experiment: one XY drive pulse of
// swept amplitude on the first tunable qubit, followed by a measurement
// on that qubit's readout channel.
func NewRabi(configPath string, log zerolog.Logger) (*Experiment, error) {
	exp, err := New(configPath, log)
	if err != nil {
		return nil, err
	}

	exp.SetSequenceFunc(func(b *sequence.Builder, params Params) error {
		qubits := exp.System.Qubits()
		if len(qubits) == 0 {
			return fmt.Errorf("no tunable qubit in system")
		}
		qubit := qubits[0]
		if qubit.Readout == nil {
			return fmt.Errorf("qubit %s has no linked readout channel", qubit.Name)
		}

		b.Append(qubit.XY.PlayPulse(params[ParamAmplitude], 0))
		b.Append(qubit.Readout.Measure())
		return nil
	})

	return exp, nil
}
