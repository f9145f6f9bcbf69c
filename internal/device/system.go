// Package device builds the quantum control object graph from a YAML
// configuration: qubits, resonators and their control/readout channels.
package device

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type systemConfig struct {
	QuantumDevices yaml.Node `yaml:"quantum_devices"`
}

type deviceConfig struct {
	Type       Type              `yaml:"type"`
	Channels   map[string]string `yaml:"channels"`
	Parameters Params            `yaml:"parameters"`
}

// System owns the device graph. Loading is fail-open: unrecognized
// device types are skipped and unresolved readout links leave the qubit
// unlinked, both recorded and queryable rather than fatal.
type System struct {
	devices  map[string]Device
	order    []string
	skipped  []string
	unlinked []string

	log zerolog.Logger
}

// Load reads a system configuration file and builds the device graph.
func Load(configPath string, log zerolog.Logger) (*System, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read system config: %w", err)
	}
	sys, err := NewFromYAML(data, log)
	if err != nil {
		return nil, fmt.Errorf("parse system config %s: %w", configPath, err)
	}
	return sys, nil
}

// NewFromYAML builds the device graph from raw configuration bytes.
func NewFromYAML(data []byte, log zerolog.Logger) (*System, error) {
	var cfg systemConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	sys := &System{
		devices: make(map[string]Device),
		log:     log,
	}
	if err := sys.loadDevices(cfg.QuantumDevices); err != nil {
		return nil, err
	}
	sys.linkReadouts()
	return sys, nil
}

// loadDevices walks the quantum_devices mapping node directly so that
// configuration insertion order is preserved.
func (s *System) loadDevices(node yaml.Node) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("quantum_devices: expected a mapping, got %s", nodeKind(node.Kind))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var cfg deviceConfig
		if err := node.Content[i+1].Decode(&cfg); err != nil {
			return fmt.Errorf("device %s: %w", name, err)
		}

		var dev Device
		switch cfg.Type {
		case TypeTunableQubit:
			dev = newTunableQubit(name, cfg, s.log)
		case TypeReadoutResonator:
			dev = newReadoutResonator(name, cfg, s.log)
		default:
			// Fail-open: unknown types are recorded, not rejected.
			s.skipped = append(s.skipped, name)
			s.log.Warn().
				Str("device", name).
				Str("type", string(cfg.Type)).
				Msg("skipping device with unrecognized type")
			continue
		}

		s.devices[name] = dev
		s.order = append(s.order, name)
	}
	return nil
}

// linkReadouts resolves each qubit's configured readout device name to
// that resonator's measure channel. Unresolved names leave the qubit
// unlinked; a later Measure through that path fails at use time.
func (s *System) linkReadouts() {
	for _, name := range s.order {
		qubit, ok := s.devices[name].(*TunableQubit)
		if !ok {
			continue
		}
		resonator, ok := s.devices[qubit.readoutName].(*ReadoutResonator)
		if !ok {
			s.unlinked = append(s.unlinked, name)
			s.log.Warn().
				Str("qubit", name).
				Str("readout", qubit.readoutName).
				Msg("readout link unresolved, qubit cannot be measured")
			continue
		}
		qubit.Readout = resonator.MeasureChannel
	}
}

// Instances returns the devices of the given type in configuration
// insertion order.
func (s *System) Instances(t Type) []Device {
	var out []Device
	for _, name := range s.order {
		if dev := s.devices[name]; dev.DeviceType() == t {
			out = append(out, dev)
		}
	}
	return out
}

// Qubits returns the tunable qubits in configuration insertion order.
func (s *System) Qubits() []*TunableQubit {
	var out []*TunableQubit
	for _, dev := range s.Instances(TypeTunableQubit) {
		out = append(out, dev.(*TunableQubit))
	}
	return out
}

// Device looks up a device by name.
func (s *System) Device(name string) (Device, bool) {
	dev, ok := s.devices[name]
	return dev, ok
}

// SkippedDevices lists configured device names whose type was not
// recognized at load time.
func (s *System) SkippedDevices() []string { return s.skipped }

// UnlinkedQubits lists qubits whose readout link did not resolve.
func (s *System) UnlinkedQubits() []string { return s.unlinked }

func nodeKind(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
