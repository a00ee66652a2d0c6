// pkg/starmap/routes.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"github.com/fleetdash/starchart/pkg/universe"
)

// Resolver finds the projected position of a symbol; both SystemLayout
// (waypoints) and GalaxyLayout (systems) are Resolvers.
type Resolver interface {
	Lookup(symbol string) ([2]float32, bool)
}

// RouteSegment is one drawable hop of a route.
type RouteSegment struct {
	Origin, Destination string
	From, To            [2]float32
	Distance            float32
	FlightMode          universe.FlightMode
	// Distance relative to the longest segment in the route, in [0, 1];
	// renderers use it to size the segment.
	Weight float32
}

// ResolveRoute turns the connections returned by a pathfinder into
// segments. Connections with an endpoint that the resolver doesn't know
// are dropped and reported in the returned diagnostics.
func ResolveRoute(conns []universe.Connection, r Resolver) ([]RouteSegment, []error) {
	var segs []RouteSegment
	var diags []error
	var longest float32

	for _, c := range conns {
		from, ok := r.Lookup(c.Origin)
		if !ok {
			diags = append(diags, &MissingReferenceError{Kind: "connection", Entity: c.Origin + "->" + c.Destination, Symbol: c.Origin})
			continue
		}
		to, ok := r.Lookup(c.Destination)
		if !ok {
			diags = append(diags, &MissingReferenceError{Kind: "connection", Entity: c.Origin + "->" + c.Destination, Symbol: c.Destination})
			continue
		}

		segs = append(segs, RouteSegment{
			Origin:      c.Origin,
			Destination: c.Destination,
			From:        from,
			To:          to,
			Distance:    c.Distance,
			FlightMode:  c.FlightMode,
		})
		longest = max(longest, c.Distance)
	}

	if longest > 0 {
		for i := range segs {
			segs[i].Weight = max(segs[i].Distance, 0) / longest
		}
	}
	return segs, diags
}
