// Package physics integrates the time-dependent Schrodinger equation
// for a single driven two-level system.
//
// The model is the rotating frame with the qubit's idle precession
// removed: the Hamiltonian is drive-only, H(t) = Omega(t) * Sx with
// Sx = sigma_x / 2, no detuning and no dissipation. Omega(t) is the
// control envelope converted from volts to angular Rabi frequency and
// interpolated piecewise-linearly between the supplied samples.
package physics

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

const (
	// DefaultVoltToRabiHz is the hardware calibration assumption:
	// 25 MHz of Rabi frequency per volt of envelope amplitude.
	DefaultVoltToRabiHz = 25e6

	// DefaultQubitFrequencyHz is assumed when the parameter map has no
	// frequency entry.
	DefaultQubitFrequencyHz = 5e9

	// DefaultSubsteps is the number of RK4 substeps taken between
	// consecutive envelope samples.
	DefaultSubsteps = 8
)

// ErrLengthMismatch reports envelope/time arrays of different lengths.
var ErrLengthMismatch = errors.New("envelope and time arrays must have the same length")

// Options tune a simulation run. Zero values select the defaults.
type Options struct {
	// VoltToRabiHz overrides the volts -> Rabi frequency calibration
	// constant.
	VoltToRabiHz float64

	// Substeps is the RK4 substep count per sample interval.
	Substeps int
}

// Result carries the full outcome of one evolution.
type Result struct {
	// Population is the excited-state population at the final sample.
	Population float64

	// Populations is the excited-state population at every time sample,
	// starting at 0 for the ground-state initial condition.
	Populations []float64

	// QubitFrequency is the frequency resolved from the parameter map,
	// in Hz. The rotating-frame Hamiltonian carries no static term, so
	// it does not enter the evolution; it is reported for bookkeeping.
	QubitFrequency float64
}

// Simulate evolves the qubit from its ground state under the given
// drive envelope and returns the final excited-state population.
func Simulate(envelope, times []float64, qubitParams map[string]any) (float64, error) {
	res, err := SimulateWithOptions(envelope, times, qubitParams, Options{})
	if err != nil {
		return 0, err
	}
	return res.Population, nil
}

// SimulateWithOptions is Simulate with explicit solver options and the
// full per-sample result.
func SimulateWithOptions(envelope, times []float64, qubitParams map[string]any, opts Options) (Result, error) {
	if len(envelope) != len(times) {
		return Result{}, fmt.Errorf("%w: envelope %d, time %d", ErrLengthMismatch, len(envelope), len(times))
	}
	if len(times) < 2 {
		return Result{}, fmt.Errorf("need at least two time samples, got %d", len(times))
	}

	voltToRabi := opts.VoltToRabiHz
	if voltToRabi <= 0 {
		voltToRabi = DefaultVoltToRabiHz
	}
	substeps := opts.Substeps
	if substeps <= 0 {
		substeps = DefaultSubsteps
	}

	// Volts -> angular frequency: Omega(t) = 2*pi * k * V(t).
	omega := make([]float64, len(envelope))
	copy(omega, envelope)
	floats.Scale(2*math.Pi*voltToRabi, omega)

	var drive interp.PiecewiseLinear
	if err := drive.Fit(times, omega); err != nil {
		return Result{}, fmt.Errorf("fit drive envelope: %w", err)
	}

	// Ground state |0>.
	psi := state{1, 0}

	populations := make([]float64, len(times))
	populations[0] = psi.excitedPopulation()
	for i := 1; i < len(times); i++ {
		h := (times[i] - times[i-1]) / float64(substeps)
		t := times[i-1]
		for s := 0; s < substeps; s++ {
			psi = rk4Step(psi, t, h, drive.Predict)
			t += h
		}
		populations[i] = psi.excitedPopulation()
	}

	return Result{
		Population:     populations[len(populations)-1],
		Populations:    populations,
		QubitFrequency: paramFrequency(qubitParams),
	}, nil
}

// state is the two-level amplitude vector (psi_0, psi_1).
type state [2]complex128

func (s state) excitedPopulation() float64 {
	re, im := real(s[1]), imag(s[1])
	return re*re + im*im
}

// deriv evaluates d psi / dt = -i * Omega(t) * Sx * psi. With
// Sx = sigma_x/2 the two components swap under a factor -i*Omega/2.
func deriv(omega float64, s state) state {
	c := complex(0, -0.5*omega)
	return state{c * s[1], c * s[0]}
}

// rk4Step advances the state by one classical Runge-Kutta step of
// width h, sampling the drive at t, t+h/2 and t+h.
func rk4Step(s state, t, h float64, drive func(float64) float64) state {
	omega0 := drive(t)
	omegaMid := drive(t + h/2)
	omega1 := drive(t + h)

	ch := complex(h, 0)

	k1 := deriv(omega0, s)
	k2 := deriv(omegaMid, state{s[0] + ch/2*k1[0], s[1] + ch/2*k1[1]})
	k3 := deriv(omegaMid, state{s[0] + ch/2*k2[0], s[1] + ch/2*k2[1]})
	k4 := deriv(omega1, state{s[0] + ch*k3[0], s[1] + ch*k3[1]})

	return state{
		s[0] + ch/6*(k1[0]+2*k2[0]+2*k3[0]+k4[0]),
		s[1] + ch/6*(k1[1]+2*k2[1]+2*k3[1]+k4[1]),
	}
}

// paramFrequency resolves the frequency entry, unwrapping one level of
// sequence, defaulting to DefaultQubitFrequencyHz.
func paramFrequency(params map[string]any) float64 {
	v, ok := params["frequency"]
	if !ok {
		return DefaultQubitFrequencyHz
	}
	switch seq := v.(type) {
	case []any:
		if len(seq) == 0 {
			return DefaultQubitFrequencyHz
		}
		v = seq[0]
	case []float64:
		if len(seq) == 0 {
			return DefaultQubitFrequencyHz
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
	return DefaultQubitFrequencyHz
}
