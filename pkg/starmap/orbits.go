// pkg/starmap/orbits.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"slices"
	"strings"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/universe"
)

// PlacedBody is a waypoint's position on the map. Bodies that orbit
// another waypoint also carry the center and radius of the orbit circle.
type PlacedBody struct {
	Symbol      string
	Type        string
	Position    [2]float32
	Orbits      string
	OrbitCenter *[2]float32
	OrbitRadius float32
}

// SystemLayout is the memoizable placement of all of a system's
// waypoints.
type SystemLayout struct {
	System    string
	Projector Projector
	// The system's shuffled direction pool, shared by orbiting bodies and
	// by ships parked at its waypoints.
	Directions  DirectionSet
	Bodies      map[string]PlacedBody
	Diagnostics []error

	order   []string
	options Options
}

// LayoutSystem places the given waypoints of a system. Orbiting bodies
// are offset from their parent along directions from the system's pool,
// handed out in ascending symbol order.
func LayoutSystem(system string, waypoints []universe.Waypoint, opts Options) *SystemLayout {
	wps := slices.Clone(waypoints)
	slices.SortFunc(wps, func(a, b universe.Waypoint) int { return strings.Compare(a.Symbol, b.Symbol) })

	pts := make([]universe.WorldPoint, len(wps))
	bySymbol := make(map[string]universe.Waypoint, len(wps))
	for i, w := range wps {
		pts[i] = w.Point()
		bySymbol[w.Symbol] = w
	}

	l := &SystemLayout{
		System:     system,
		Projector:  NewProjector(pts),
		Directions: ShuffleDirections(opts.Directions, system),
		Bodies:     make(map[string]PlacedBody, len(wps)),
		options:    opts,
	}
	if len(wps) > 0 && l.Projector.Degenerate() {
		l.Diagnostics = append(l.Diagnostics, &DegenerateBoundaryError{System: system})
	}

	ord := NewOrdinals(system)
	for _, w := range wps {
		if _, ok := l.Bodies[w.Symbol]; ok {
			// Duplicate symbol; the first one placed wins.
			continue
		}

		body := PlacedBody{
			Symbol:   w.Symbol,
			Type:     w.Type,
			Orbits:   w.Orbits,
			Position: l.Projector.Project(w.Point()),
		}

		if w.IsOrbital() {
			// Every declared orbital takes an ordinal, even if its parent
			// is missing, so that the parent arriving in a later refresh
			// doesn't reshuffle its siblings.
			dir := l.Directions[ord.Next(RoleOrbital)%len(l.Directions)]

			if parent, ok := bySymbol[w.Orbits]; !ok {
				l.Diagnostics = append(l.Diagnostics,
					&MissingReferenceError{Kind: "waypoint", Entity: w.Symbol, Symbol: w.Orbits})
			} else {
				pw := parent.Point().Float()
				offset := [2]float32{
					l.Projector.Extent[0] * orbitalOffsetScale * dir[0],
					l.Projector.Extent[1] * orbitalOffsetScale * dir[1],
				}
				center := l.Projector.Project(parent.Point())
				body.Position = l.Projector.ProjectFloat(math.Add2f(pw, offset))
				body.OrbitCenter = &center
				body.OrbitRadius = math.Distance2f(body.Position, center)
			}
		}

		l.Bodies[w.Symbol] = body
		l.order = append(l.order, w.Symbol)
	}

	return l
}

// Lookup returns the projected position of the given waypoint.
func (l *SystemLayout) Lookup(symbol string) ([2]float32, bool) {
	b, ok := l.Bodies[symbol]
	return b.Position, ok
}

// Sorted returns the placed bodies in ascending symbol order.
func (l *SystemLayout) Sorted() []PlacedBody {
	b := make([]PlacedBody, len(l.order))
	for i, sym := range l.order {
		b[i] = l.Bodies[sym]
	}
	return b
}

///////////////////////////////////////////////////////////////////////////
// GalaxyLayout

// GalaxyLayout places systems on the galaxy map. Systems don't orbit
// anything, so this is just the projection.
type GalaxyLayout struct {
	Projector   Projector
	Systems     map[string][2]float32
	Diagnostics []error
}

func LayoutGalaxy(systems []universe.System) *GalaxyLayout {
	pts := make([]universe.WorldPoint, len(systems))
	for i, s := range systems {
		pts[i] = s.Point()
	}

	g := &GalaxyLayout{
		Projector: NewProjector(pts),
		Systems:   make(map[string][2]float32, len(systems)),
	}
	if len(systems) > 0 && g.Projector.Degenerate() {
		g.Diagnostics = append(g.Diagnostics, &DegenerateBoundaryError{System: "galaxy"})
	}
	for _, s := range systems {
		g.Systems[s.Symbol] = g.Projector.Project(s.Point())
	}
	return g
}

func (g *GalaxyLayout) Lookup(symbol string) ([2]float32, bool) {
	p, ok := g.Systems[symbol]
	return p, ok
}
