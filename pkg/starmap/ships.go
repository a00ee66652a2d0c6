// pkg/starmap/ships.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/universe"
)

type Segment struct {
	From, To [2]float32
}

// ShipMarker is where a ship is drawn at a particular instant, along with
// the line or orbit circle that goes with it.
type ShipMarker struct {
	Symbol   string
	Status   universe.NavStatus
	Position [2]float32
	// Docked ships are tethered to their waypoint; ships in transit draw
	// their whole route.
	Line *Segment
	// Ships in orbit circle their waypoint.
	OrbitCenter *[2]float32
	FlightMode  universe.FlightMode
	// Progress along the route for ships in transit.
	Fraction float32
}

// TransitFraction returns how far along its route a ship is at now,
// clamped to [0, MaxTransitFraction]. If arrival isn't after departure,
// the ship is treated as not yet departed before departure and as fully
// overshot after it, and an error is returned alongside the fraction.
func TransitFraction(departure, arrival, now time.Time) (float32, error) {
	total := arrival.Sub(departure)
	if total <= 0 {
		err := &InvalidTimeRangeError{Departure: departure, Arrival: arrival}
		if now.Before(departure) {
			return 0, err
		}
		return MaxTransitFraction, err
	}

	f := float64(now.Sub(departure)) / float64(total)
	return float32(math.Clamp(f, 0, MaxTransitFraction)), nil
}

// PositionShips computes markers for the ships in the layout's system at
// the given time. Ships in other systems are ignored; ships whose
// waypoints aren't in the layout, or whose status is unknown, are left
// out. Problems are returned as diagnostics.
func PositionShips(l *SystemLayout, ships []universe.Ship, now time.Time) ([]ShipMarker, []error) {
	sorted := slices.Clone(ships)
	slices.SortFunc(sorted, func(a, b universe.Ship) int { return strings.Compare(a.Symbol, b.Symbol) })

	var markers []ShipMarker
	var diags []error
	missing := func(s universe.Ship, sym string) {
		diags = append(diags, &MissingReferenceError{Kind: "ship", Entity: s.Symbol, Symbol: sym})
	}

	ord := NewOrdinals(l.System)
	ndir := len(l.Directions)
	for _, s := range sorted {
		nav := s.Nav
		if nav.SystemSymbol != l.System {
			continue
		}

		m := ShipMarker{Symbol: s.Symbol, Status: nav.Status, FlightMode: nav.FlightMode}

		switch nav.Status {
		case universe.NavDocked:
			// As with orbiting bodies, the ordinal is taken even if the
			// waypoint is missing so the other ships stay put.
			n := ord.Next(RoleShip)
			wp, ok := l.Lookup(nav.WaypointSymbol)
			if !ok {
				missing(s, nav.WaypointSymbol)
				continue
			}
			dir := l.Directions[n%ndir]
			m.Position = math.Add2f(wp, math.Scale2f(dir, dockedShipOffset))
			m.Line = &Segment{From: wp, To: m.Position}

		case universe.NavInOrbit:
			n := ord.Next(RoleShip)
			wp, ok := l.Lookup(nav.WaypointSymbol)
			if !ok {
				missing(s, nav.WaypointSymbol)
				continue
			}
			dir := l.Directions[n%l.options.inOrbitModulus()]
			m.Position = math.Add2f(wp, math.Scale2f(dir, orbitingShipOffset))
			m.OrbitCenter = &wp

		case universe.NavInTransit:
			r := nav.Route
			from, ok := l.Lookup(r.Origin.Symbol)
			if !ok {
				missing(s, r.Origin.Symbol)
				continue
			}
			to, ok := l.Lookup(r.Destination.Symbol)
			if !ok {
				missing(s, r.Destination.Symbol)
				continue
			}

			f, err := TransitFraction(r.DepartureTime, r.Arrival, now)
			if err != nil {
				var terr *InvalidTimeRangeError
				if errors.As(err, &terr) {
					terr.Ship = s.Symbol
				}
				diags = append(diags, err)
			}
			m.Fraction = f
			m.Position = math.Lerp2f(f, from, to)
			m.Line = &Segment{From: from, To: to}

		case universe.NavUnknown:
			continue

		default:
			continue
		}

		markers = append(markers, m)
	}

	return markers, diags
}
