package device

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
      integration_time: 2.0e-6
`

func loadSystem(t *testing.T, yaml string) *System {
	t.Helper()
	sys, err := NewFromYAML([]byte(yaml), zerolog.Nop())
	require.NoError(t, err)
	return sys
}

func TestReadoutLinkIdentity(t *testing.T) {
	sys := loadSystem(t, testConfig)

	qubits := sys.Qubits()
	require.Len(t, qubits, 1)
	q0 := qubits[0]

	dev, ok := sys.Device("r0")
	require.True(t, ok)
	r0, ok := dev.(*ReadoutResonator)
	require.True(t, ok)

	// The qubit borrows the resonator's channel: same pointer, not a copy.
	require.NotNil(t, q0.Readout)
	assert.Same(t, r0.MeasureChannel, q0.Readout)
	assert.Equal(t, 2.0e-6, q0.Readout.IntegrationTime)
}

func TestChannelPaths(t *testing.T) {
	sys := loadSystem(t, testConfig)
	q0 := sys.Qubits()[0]

	assert.Equal(t, "q0.xy", q0.XY.Path)
	assert.Equal(t, "q0.z", q0.Z.Path)
	assert.Equal(t, "r0.measure", q0.Readout.Path)

	dev, _ := sys.Device("r0")
	r0 := dev.(*ReadoutResonator)
	assert.Equal(t, "r0.drive", r0.Drive.Path)
}

func TestUnrecognizedTypeIsSkippedButObservable(t *testing.T) {
	sys := loadSystem(t, `
quantum_devices:
  q0:
    type: TunableQubit
    channels:
      readout: r0
  weird:
    type: FluxoniumQubit
    channels: {}
  r0:
    type: ReadoutResonator
`)

	_, ok := sys.Device("weird")
	assert.False(t, ok)
	assert.Equal(t, []string{"weird"}, sys.SkippedDevices())

	// Loading still succeeded for the recognized devices.
	assert.Len(t, sys.Qubits(), 1)
	assert.NotNil(t, sys.Qubits()[0].Readout)
}

func TestUnresolvedReadoutLeavesQubitUnlinked(t *testing.T) {
	sys := loadSystem(t, `
quantum_devices:
  q0:
    type: TunableQubit
    channels:
      readout: missing
`)

	qubits := sys.Qubits()
	require.Len(t, qubits, 1)
	assert.Nil(t, qubits[0].Readout)
	assert.Equal(t, []string{"q0"}, sys.UnlinkedQubits())
}

func TestInstancesPreserveConfigOrder(t *testing.T) {
	sys := loadSystem(t, `
quantum_devices:
  q1:
    type: TunableQubit
    channels:
      readout: r1
  r1:
    type: ReadoutResonator
  q0:
    type: TunableQubit
    channels:
      readout: r1
`)

	qubits := sys.Instances(TypeTunableQubit)
	require.Len(t, qubits, 2)
	assert.Equal(t, "q1", qubits[0].DeviceName())
	assert.Equal(t, "q0", qubits[1].DeviceName())

	resonators := sys.Instances(TypeReadoutResonator)
	require.Len(t, resonators, 1)
	assert.Equal(t, TypeReadoutResonator, resonators[0].DeviceType())
}

func TestDefaultIntegrationTime(t *testing.T) {
	sys := loadSystem(t, `
quantum_devices:
  r0:
    type: ReadoutResonator
`)

	dev, ok := sys.Device("r0")
	require.True(t, ok)
	r0 := dev.(*ReadoutResonator)
	assert.Equal(t, DefaultIntegrationTime, r0.MeasureChannel.IntegrationTime)
}

func TestEmptyConfigLoads(t *testing.T) {
	sys := loadSystem(t, "")
	assert.Empty(t, sys.Qubits())
	assert.Empty(t, sys.SkippedDevices())
}

func TestParamsFloat(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		key    string
		def    float64
		want   float64
	}{
		{
			name:   "scalar",
			params: Params{"frequency": 5.2e9},
			key:    "frequency",
			want:   5.2e9,
		},
		{
			name:   "sequence takes first",
			params: Params{"frequency": []any{4.9e9, 5.0e9}},
			key:    "frequency",
			want:   4.9e9,
		},
		{
			name:   "int scalar",
			params: Params{"points": 12},
			key:    "points",
			want:   12,
		},
		{
			name:   "missing key uses default",
			params: Params{},
			key:    "frequency",
			def:    5e9,
			want:   5e9,
		},
		{
			name:   "empty sequence uses default",
			params: Params{"frequency": []any{}},
			key:    "frequency",
			def:    5e9,
			want:   5e9,
		},
		{
			name:   "non-numeric uses default",
			params: Params{"frequency": "fast"},
			key:    "frequency",
			def:    1,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Float(tt.key, tt.def))
		})
	}
}

func TestChannelDefaults(t *testing.T) {
	sys := loadSystem(t, testConfig)
	q0 := sys.Qubits()[0]

	xy := q0.XY.PlayPulse(0.5, 0)
	assert.Equal(t, 40e-9, xy.Duration)
	assert.Equal(t, "gaussian", string(xy.Shape))
	assert.Equal(t, 0.5, xy.Amplitude)

	z := q0.Z.PlayPulse(0.1, 0)
	assert.Equal(t, 100e-9, z.Duration)
	assert.Equal(t, "square", string(z.Shape))

	explicit := q0.XY.PlayPulse(0.2, 80e-9)
	assert.Equal(t, 80e-9, explicit.Duration)

	m := q0.Readout.Measure()
	assert.Equal(t, "r0.measure", m.ChannelPath)
	assert.Equal(t, 2.0e-6, m.IntegrationTime)
}
