// cmd/starchart/pathfinder.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"fmt"
	gomath "math"
	"slices"
	"strings"

	"github.com/fleetdash/starchart/pkg/universe"
)

// graphPathfinder answers route queries over the connections stored in a
// fleet snapshot. It stands in for the navigation service so the route
// overlay can be exercised offline.
type graphPathfinder struct {
	edges map[string][]universe.Connection
}

func newGraphPathfinder(conns []universe.Connection) *graphPathfinder {
	g := &graphPathfinder{edges: make(map[string][]universe.Connection)}
	for _, c := range conns {
		g.edges[c.Origin] = append(g.edges[c.Origin], c)
		// Connections are traversable both ways.
		g.edges[c.Destination] = append(g.edges[c.Destination], universe.Connection{
			Origin:      c.Destination,
			Destination: c.Origin,
			Distance:    c.Distance,
			FlightMode:  c.FlightMode,
		})
	}
	for _, e := range g.edges {
		slices.SortFunc(e, func(a, b universe.Connection) int { return strings.Compare(a.Destination, b.Destination) })
	}
	return g
}

// usable reports whether a hop is possible under the query's fuel
// limit. Fuel use is taken to be the distance.
func usable(c universe.Connection, q universe.PathQuery) bool {
	return q.MaxFuel <= 0 || c.Distance <= float32(q.MaxFuel)
}

func withMode(c universe.Connection, q universe.PathQuery) universe.Connection {
	if q.FlightMode != "" {
		c.FlightMode = q.FlightMode
	}
	return c
}

// FindRoute returns the shortest route from q.Origin to q.Destination.
// With no destination, it returns every hop available from the origin.
func (g *graphPathfinder) FindRoute(ctx context.Context, q universe.PathQuery) ([]universe.Connection, error) {
	if _, ok := g.edges[q.Origin]; !ok {
		return nil, fmt.Errorf("%s: no known connections", q.Origin)
	}

	if q.Destination == "" {
		var r []universe.Connection
		for _, c := range g.edges[q.Origin] {
			if usable(c, q) {
				r = append(r, withMode(c, q))
			}
		}
		return r, nil
	}

	// Dijkstra; the graphs here are a few hundred nodes at most.
	dist := map[string]float64{q.Origin: 0}
	prev := make(map[string]universe.Connection)
	done := make(map[string]bool)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur, best := "", gomath.Inf(1)
		for n, d := range dist {
			if !done[n] && (d < best || (d == best && n < cur)) {
				cur, best = n, d
			}
		}
		if cur == "" {
			return nil, fmt.Errorf("no route from %s to %s", q.Origin, q.Destination)
		}
		if cur == q.Destination {
			break
		}
		done[cur] = true

		for _, c := range g.edges[cur] {
			if !usable(c, q) {
				continue
			}
			nd := best + float64(c.Distance)
			if d, ok := dist[c.Destination]; !ok || nd < d {
				dist[c.Destination] = nd
				prev[c.Destination] = c
			}
		}
	}

	var route []universe.Connection
	for n := q.Destination; n != q.Origin; {
		c := prev[n]
		route = append(route, withMode(c, q))
		n = c.Origin
	}
	slices.Reverse(route)
	return route, nil
}
