// pkg/starmap/errors.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"errors"
	"fmt"
	"time"
)

// None of these errors stop a frame from being produced; they are
// collected into Diagnostics so callers can log or display them.
var (
	ErrMissingReference   = errors.New("missing reference")
	ErrDegenerateBoundary = errors.New("degenerate boundary")
	ErrInvalidTimeRange   = errors.New("invalid time range")
)

// MissingReferenceError records an entity that refers to a waypoint that
// isn't in the rendered set; the entity is left out of the frame.
type MissingReferenceError struct {
	Kind   string // "ship", "waypoint", "connection"
	Entity string
	Symbol string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("%s %s: %q not found", e.Kind, e.Entity, e.Symbol)
}

func (e *MissingReferenceError) Is(target error) bool {
	return target == ErrMissingReference
}

// DegenerateBoundaryError records that every point of a layout lies at
// the origin along at least one axis, so that axis projects to the
// midpoint.
type DegenerateBoundaryError struct {
	System string
}

func (e *DegenerateBoundaryError) Error() string {
	return fmt.Sprintf("system %s: all points coincide at the origin; projecting to the midpoint", e.System)
}

func (e *DegenerateBoundaryError) Is(target error) bool {
	return target == ErrDegenerateBoundary
}

// InvalidTimeRangeError records a transit whose arrival isn't after its
// departure.
type InvalidTimeRangeError struct {
	Ship      string
	Departure time.Time
	Arrival   time.Time
}

func (e *InvalidTimeRangeError) Error() string {
	return fmt.Sprintf("ship %s: arrival %s is not after departure %s", e.Ship,
		e.Arrival.Format(time.RFC3339), e.Departure.Format(time.RFC3339))
}

func (e *InvalidTimeRangeError) Is(target error) bool {
	return target == ErrInvalidTimeRange
}
