// cmd/starchart/demo.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/rand"
	"github.com/fleetdash/starchart/pkg/universe"
)

var (
	demoSystemTypes = []string{"RED_STAR", "ORANGE_STAR", "BLUE_STAR", "YOUNG_STAR", "WHITE_DWARF", "NEUTRON_STAR"}
	demoParentTypes = []string{"PLANET", "GAS_GIANT"}
	demoLoneTypes   = []string{"ASTEROID", "ASTEROID", "ENGINEERED_ASTEROID", "DEBRIS_FIELD", "JUMP_GATE"}
	demoChildTypes  = []string{"MOON", "ORBITAL_STATION", "FUEL_STATION"}
	demoFlightModes = []universe.FlightMode{universe.FlightModeCruise, universe.FlightModeCruise,
		universe.FlightModeBurn, universe.FlightModeDrift, universe.FlightModeStealth}
	demoStatuses = []universe.NavStatus{universe.NavDocked, universe.NavInOrbit,
		universe.NavInTransit, universe.NavInTransit}
)

// GenerateDemoFleet makes a plausible fleet snapshot: a handful of
// systems with planets, moons, and stations, ships spread among them,
// and a connected graph of hops between each system's waypoints. The same seed always
// gives the same fleet, with routes relative to now.
func GenerateDemoFleet(seed int64, nsystems, nships int, now time.Time) *universe.Fleet {
	r := rand.Make()
	r.Seed(seed)

	f := &universe.Fleet{}
	for i := range nsystems {
		sys := universe.System{
			Symbol: fmt.Sprintf("X1-D%c%d", 'A'+rune(i%26), 10+r.Intn(90)),
			Type:   rand.SampleSlice(&r, demoSystemTypes),
			X:      r.Intn(2001) - 1000,
			Y:      r.Intn(2001) - 1000,
		}
		if slices.ContainsFunc(f.Systems, func(s universe.System) bool { return s.Symbol == sys.Symbol }) {
			continue
		}
		f.Systems = append(f.Systems, sys)
		f.Waypoints = append(f.Waypoints, demoWaypoints(&r, sys)...)
	}

	for _, sys := range f.Systems {
		var wps []universe.Waypoint
		for _, w := range f.Waypoints {
			if w.SystemSymbol == sys.Symbol {
				wps = append(wps, w)
			}
		}
		f.Connections = append(f.Connections, demoConnections(&r, wps)...)
	}

	for i := range nships {
		if len(f.Systems) == 0 {
			break
		}
		f.Ships = append(f.Ships, demoShip(&r, f, fmt.Sprintf("DEMO-%d", i+1), now))
	}
	return f
}

func demoWaypoints(r *rand.Rand, sys universe.System) []universe.Waypoint {
	var wps []universe.Waypoint
	n := 3 + r.Intn(6)
	for i := range n {
		w := universe.Waypoint{
			Symbol:       fmt.Sprintf("%s-%c%d", sys.Symbol, 'A'+rune(i), 1+r.Intn(9)),
			SystemSymbol: sys.Symbol,
			X:            r.Intn(161) - 80,
			Y:            r.Intn(161) - 80,
		}
		if r.Intn(2) == 0 {
			w.Type = rand.SampleSlice(r, demoLoneTypes)
			wps = append(wps, w)
			continue
		}

		w.Type = rand.SampleSlice(r, demoParentTypes)
		var children []universe.Waypoint
		for j := range r.Intn(4) {
			c := universe.Waypoint{
				Symbol:       fmt.Sprintf("%s%c", w.Symbol, 'A'+rune(j)),
				SystemSymbol: sys.Symbol,
				Type:         rand.SampleSlice(r, demoChildTypes),
				X:            w.X,
				Y:            w.Y,
				Orbits:       w.Symbol,
			}
			w.Orbitals = append(w.Orbitals, c.Symbol)
			children = append(children, c)
		}
		wps = append(wps, w)
		wps = append(wps, children...)
	}
	return wps
}

func demoConnections(r *rand.Rand, wps []universe.Waypoint) []universe.Connection {
	var conns []universe.Connection
	for i := 1; i < len(wps); i++ {
		// Link each waypoint to one earlier one so the graph is connected,
		// plus the occasional extra hop.
		for _, j := range []int{r.Intn(i), r.Intn(i)} {
			a, b := wps[j], wps[i]
			d := math.Distance2f(a.Point().Float(), b.Point().Float())
			conns = append(conns, universe.Connection{
				Origin:      a.Symbol,
				Destination: b.Symbol,
				Distance:    max(1, math.Ceil(d)),
				FlightMode:  rand.SampleSlice(r, demoFlightModes),
			})
			if r.Intn(3) != 0 {
				break
			}
		}
	}
	return conns
}

func demoShip(r *rand.Rand, f *universe.Fleet, symbol string, now time.Time) universe.Ship {
	sys := rand.SampleSlice(r, f.Systems)
	var wps []universe.Waypoint
	for _, w := range f.Waypoints {
		if w.SystemSymbol == sys.Symbol {
			wps = append(wps, w)
		}
	}

	at := rand.SampleSlice(r, wps)
	s := universe.Ship{
		Symbol: symbol,
		Nav: universe.ShipNav{
			Status:         rand.SampleSlice(r, demoStatuses),
			SystemSymbol:   sys.Symbol,
			WaypointSymbol: at.Symbol,
			FlightMode:     rand.SampleSlice(r, demoFlightModes),
		},
	}

	origin := at
	dest := rand.SampleSlice(r, wps)
	if s.Nav.Status != universe.NavInTransit {
		dest = at
	}
	// Somewhere between just departed and just about to arrive.
	total := time.Duration(30+r.Intn(300)) * time.Second
	dep := now.Add(-time.Duration(r.Float32() * float32(total)))
	s.Nav.Route = universe.NavRoute{
		Origin:        endpoint(origin),
		Destination:   endpoint(dest),
		DepartureTime: dep.Truncate(time.Second),
		Arrival:       dep.Add(total).Truncate(time.Second),
	}
	if s.Nav.Status == universe.NavInTransit {
		s.Nav.WaypointSymbol = dest.Symbol
	}
	return s
}

func endpoint(w universe.Waypoint) universe.RouteEndpoint {
	return universe.RouteEndpoint{
		Symbol:       w.Symbol,
		SystemSymbol: w.SystemSymbol,
		Type:         w.Type,
		X:            w.X,
		Y:            w.Y,
	}
}
