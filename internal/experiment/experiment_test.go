package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcsim/qcs-go/internal/backend"
	"github.com/qcsim/qcs-go/internal/ops"
	"github.com/qcsim/qcs-go/internal/physics"
	"github.com/qcsim/qcs-go/internal/sequence"
	"github.com/qcsim/qcs-go/internal/waveform"
	"github.com/qcsim/qcs-go/pkg/formulas"
)

const testConfig = `
quantum_devices:
  q0:
    type: TunableQubit
    channels:
      readout: r0
    parameters:
      frequency: [5.2e+9]
  r0:
    type: ReadoutResonator
    channels: {}
    parameters:
      frequency: 7.1e+9
      integration_time: 1.0e-6
`

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quantum_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

// recordingBackend captures the sequence it is asked to execute.
type recordingBackend struct {
	operations []ops.Operation
	result     float64
}

func (r *recordingBackend) Execute(operations []ops.Operation) (float64, error) {
	r.operations = operations
	return r.result, nil
}

func TestRunWithoutSequenceFuncFails(t *testing.T) {
	exp, err := New(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	_, err = exp.Run(&recordingBackend{}, Params{})
	assert.ErrorIs(t, err, ErrSequenceNotImplemented)
}

func TestRunBuildsFreshSequencePerCall(t *testing.T) {
	exp, err := New(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	calls := 0
	exp.SetSequenceFunc(func(b *sequence.Builder, params Params) error {
		calls++
		b.Delay(1e-9)
		return nil
	})

	rec := &recordingBackend{result: 0.42}
	for i := 0; i < 3; i++ {
		result, err := exp.Run(rec, Params{})
		require.NoError(t, err)
		assert.Equal(t, 0.42, result)
		// Each run hands the backend exactly one freshly built sequence.
		assert.Len(t, rec.operations, 1)
	}
	assert.Equal(t, 3, calls)
}

func TestRunReturnsBackendResultUnmodified(t *testing.T) {
	exp, err := New(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)
	exp.SetSequenceFunc(func(b *sequence.Builder, params Params) error { return nil })

	result, err := exp.Run(&recordingBackend{result: 0.875}, Params{})
	require.NoError(t, err)
	assert.Equal(t, 0.875, result)
}

func TestRabiSequenceShape(t *testing.T) {
	exp, err := NewRabi(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	rec := &recordingBackend{}
	_, err = exp.Run(rec, Params{ParamAmplitude: 0.3})
	require.NoError(t, err)

	require.Len(t, rec.operations, 2)

	pulse, ok := rec.operations[0].(ops.PulseOperation)
	require.True(t, ok, "first operation must be the drive pulse")
	assert.Equal(t, "q0.xy", pulse.ChannelPath)
	assert.Equal(t, 0.3, pulse.Amplitude)
	assert.Equal(t, ops.ShapeGaussian, pulse.Shape)
	assert.Equal(t, ops.DefaultXYPulseDuration, pulse.Duration)

	measure, ok := rec.operations[1].(ops.MeasureOperation)
	require.True(t, ok, "second operation must be the measurement")
	assert.Equal(t, "r0.measure", measure.ChannelPath)
	assert.Equal(t, 1.0e-6, measure.IntegrationTime)
}

func TestRabiFailsOnUnlinkedQubit(t *testing.T) {
	exp, err := NewRabi(writeConfig(t, `
quantum_devices:
  q0:
    type: TunableQubit
    channels:
      readout: missing
`), zerolog.Nop())
	require.NoError(t, err)

	_, err = exp.Run(&recordingBackend{}, Params{ParamAmplitude: 0.1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no linked readout channel")
}

func TestRabiEndToEndZeroAmplitude(t *testing.T) {
	exp, err := NewRabi(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	sim := backend.NewSimulation(exp.System, 1e9, zerolog.Nop())
	population, err := exp.Run(sim, Params{ParamAmplitude: 0})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, population, 1e-6)
}

func TestRabiEndToEndPiPulse(t *testing.T) {
	exp, err := NewRabi(writeConfig(t, testConfig), zerolog.Nop())
	require.NoError(t, err)

	// Solve the amplitude whose pulse area gives a pi rotation.
	unit := ops.PulseOperation{Duration: ops.DefaultXYPulseDuration, Amplitude: 1, Shape: ops.ShapeGaussian}
	times, unitEnvelope := waveform.Convert(unit, 1e9)
	piAmplitude := formulas.PiPulseAmplitude(times, unitEnvelope, physics.DefaultVoltToRabiHz)

	sim := backend.NewSimulation(exp.System, 1e9, zerolog.Nop())
	population, err := exp.Run(sim, Params{ParamAmplitude: piAmplitude})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, population, 0.02)
}
