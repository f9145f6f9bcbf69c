package device

import (
	"github.com/rs/zerolog"
)

// Type tags the device variants the graph recognizes
type Type string

const (
	TypeTunableQubit     Type = "TunableQubit"
	TypeReadoutResonator Type = "ReadoutResonator"
)

// DefaultIntegrationTime is used when a resonator's parameters omit
// integration_time.
const DefaultIntegrationTime = 1e-6

// Params holds a device's physical constants as loaded from
// configuration. Values may be scalars or sequences (first element
// taken).
type Params map[string]any

// Float extracts a numeric parameter, unwrapping one level of sequence
// and falling back to def when the key is absent or non-numeric.
func (p Params) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	if seq, ok := v.([]any); ok {
		if len(seq) == 0 {
			return def
		}
		v = seq[0]
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Device is implemented by every entry in the graph
type Device interface {
	DeviceName() string
	DeviceType() Type
}

// TunableQubit owns its XY and Z drive channels. Readout is a
// non-owning reference into a resonator's measure channel, resolved by
// the System after all devices exist; nil until linked.
type TunableQubit struct {
	Name       string
	Parameters Params
	XY         *XYChannel
	Z          *ZChannel
	Readout    *ReadoutChannel

	readoutName string
}

func newTunableQubit(name string, cfg deviceConfig, log zerolog.Logger) *TunableQubit {
	return &TunableQubit{
		Name:        name,
		Parameters:  cfg.Parameters,
		XY:          &XYChannel{Path: name + ".xy", log: log},
		Z:           &ZChannel{Path: name + ".z", log: log},
		readoutName: cfg.Channels["readout"],
	}
}

func (q *TunableQubit) DeviceName() string { return q.Name }
func (q *TunableQubit) DeviceType() Type   { return TypeTunableQubit }

// ReadoutResonator owns a drive channel and the measure channel that
// linked qubits borrow.
type ReadoutResonator struct {
	Name           string
	Parameters     Params
	Drive          *XYChannel
	MeasureChannel *ReadoutChannel
}

func newReadoutResonator(name string, cfg deviceConfig, log zerolog.Logger) *ReadoutResonator {
	params := cfg.Parameters
	return &ReadoutResonator{
		Name:       name,
		Parameters: params,
		Drive:      &XYChannel{Path: name + ".drive", log: log},
		MeasureChannel: &ReadoutChannel{
			Path:            name + ".measure",
			IntegrationTime: params.Float("integration_time", DefaultIntegrationTime),
		},
	}
}

func (r *ReadoutResonator) DeviceName() string { return r.Name }
func (r *ReadoutResonator) DeviceType() Type   { return TypeReadoutResonator }
