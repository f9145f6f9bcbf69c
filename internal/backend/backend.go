// Package backend provides the interchangeable execution targets for a
// built sequence: console printing, waveform plotting, and the physical
// simulation.
package backend

import "strings"

// Channel path classification. Paths follow the device graph's
// "<device>.<channel>" convention; grouping is by suffix.
func isXYPath(path string) bool {
	return strings.HasSuffix(path, ".xy")
}

func isZPath(path string) bool {
	return strings.HasSuffix(path, ".z")
}

func isReadoutPath(path string) bool {
	return strings.HasSuffix(path, ".drive") || strings.HasSuffix(path, ".measure")
}
