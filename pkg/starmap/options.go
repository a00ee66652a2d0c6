// pkg/starmap/options.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

const (
	// An orbiting body sits this fraction of the system's extent away
	// from its parent, before projection.
	orbitalOffsetScale = 0.01

	// Offsets of ships from their waypoint, in projected units.
	dockedShipOffset   = 0.2
	orbitingShipOffset = 0.3

	// Transit interpolation may run slightly past the destination while
	// waiting for the roster to report the arrival.
	MaxTransitFraction = 1.1
)

// Options control the parts of the layout that differ between the
// current map and the legacy dashboard layout.
type Options struct {
	Directions DirectionSet
	// Ships in orbit pick their direction with ordinal mod
	// InOrbitModulus. Values outside [1, 8] are treated as 8.
	InOrbitModulus int
}

func DefaultOptions() Options {
	return Options{Directions: CompassDirections, InOrbitModulus: len(CompassDirections)}
}

// LegacyOptions matches the earlier dashboard exactly, including its
// repeated directions and the modulus of 7 for ships in orbit.
func LegacyOptions() Options {
	return Options{Directions: LegacyDirections, InOrbitModulus: 7}
}

func (o Options) inOrbitModulus() int {
	if o.InOrbitModulus < 1 || o.InOrbitModulus > len(o.Directions) {
		return len(o.Directions)
	}
	return o.InOrbitModulus
}
