package formulas

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// PulseArea integrates an envelope over its time grid (trapezoidal rule).
// Units: volt-seconds for a voltage envelope.
func PulseArea(times, envelope []float64) float64 {
	if len(times) < 2 || len(times) != len(envelope) {
		return 0
	}
	return integrate.Trapezoidal(times, envelope)
}

// PiPulseAmplitude solves the drive amplitude that makes a pulse a
// pi-pulse, i.e. the amplitude for which the accumulated rotation angle
// Integral(Omega(t) dt) equals pi.
//
// unitEnvelope must be the pulse's envelope sampled at amplitude 1 V;
// voltToRabiHz is the hardware calibration constant (Rabi Hz per volt).
func PiPulseAmplitude(times, unitEnvelope []float64, voltToRabiHz float64) float64 {
	unitAngle := 2 * math.Pi * voltToRabiHz * PulseArea(times, unitEnvelope)
	if unitAngle == 0 {
		return 0
	}
	return math.Pi / unitAngle
}
