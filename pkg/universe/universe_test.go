// pkg/universe/universe_test.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package universe

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/fleetdash/starchart/pkg/util"
)

func TestExtractSystemSymbol(t *testing.T) {
	for wp, sys := range map[string]string{
		"X1-AB12-C3D4": "X1-AB12",
		"X1-AB-A1":     "X1-AB",
		"NOHYPHEN":     "NOHYPHEN",
	} {
		if got := ExtractSystemSymbol(wp); got != sys {
			t.Errorf("%s: got %q, expected %q", wp, got, sys)
		}
	}
}

func TestShipJSON(t *testing.T) {
	const ships = `[
  {"symbol": "AGENT-1", "nav": {"status": "IN_TRANSIT", "systemSymbol": "X1-AB", "waypointSymbol": "X1-AB-B2",
    "flightMode": "CRUISE",
    "route": {"origin": {"symbol": "X1-AB-A1", "systemSymbol": "X1-AB", "x": 1, "y": 2},
              "destination": {"symbol": "X1-AB-B2", "systemSymbol": "X1-AB", "x": 30, "y": -8},
              "departureTime": "2026-10-17T12:00:00Z", "arrival": "2026-10-17T12:01:40Z"}}},
  {"symbol": "AGENT-2", "nav": {"status": "DOCKED", "systemSymbol": "X1-AB", "waypointSymbol": "X1-AB-A1"}},
  {"symbol": "AGENT-3", "nav": {"status": "WARPING", "systemSymbol": "X1-AB", "waypointSymbol": "X1-AB-A1"}}
]`
	var s []Ship
	if err := util.UnmarshalJSON([]byte(ships), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s[0].Nav.Status != NavInTransit || s[1].Nav.Status != NavDocked {
		t.Errorf("got statuses %v, %v", s[0].Nav.Status, s[1].Nav.Status)
	}
	if s[2].Nav.Status != NavUnknown {
		t.Errorf("unrecognized status decoded as %v", s[2].Nav.Status)
	}
	if d := s[0].Nav.Route.Duration(); d != 100*time.Second {
		t.Errorf("route duration %v", d)
	}
	if s[0].Nav.Route.Destination.X != 30 || s[0].Nav.FlightMode != FlightModeCruise {
		t.Errorf("route decoded as %+v", s[0].Nav)
	}

	b, err := json.Marshal(s[1].Nav.Status)
	if err != nil || string(b) != `"DOCKED"` {
		t.Errorf("status marshaled as %s (%v)", b, err)
	}
}

func TestSymbolListJSON(t *testing.T) {
	var w []Waypoint
	js := `[{"symbol": "X1-AB-A1", "x": 3, "y": 4, "orbitals": [{"symbol": "X1-AB-A2"}, "X1-AB-A3"]}]`
	if err := json.Unmarshal([]byte(js), &w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(w[0].Orbitals, SymbolList{"X1-AB-A2", "X1-AB-A3"}) {
		t.Errorf("got orbitals %v", w[0].Orbitals)
	}

	if err := json.Unmarshal([]byte(`[{"orbitals": [7]}]`), &w); err == nil {
		t.Errorf("expected an error for a numeric orbital")
	}
}

func testWaypoints() []Waypoint {
	return []Waypoint{
		{Symbol: "X1-AB-B7", SystemSymbol: "X1-AB", X: 10, Y: 0},
		{Symbol: "X1-AB-A1", SystemSymbol: "X1-AB", X: -5, Y: 5, Orbitals: SymbolList{"X1-AB-A2", "X1-AB-A3"}},
		{Symbol: "X1-AB-A3", SystemSymbol: "X1-AB", X: -5, Y: 5, Orbits: "X1-AB-A1"},
		{Symbol: "X1-AB-A2", SystemSymbol: "X1-AB", X: -5, Y: 5, Orbits: "X1-AB-A1"},
		{Symbol: "X1-CD-Z1", X: 0, Y: 0},
	}
}

func TestDirectory(t *testing.T) {
	d := NewDirectory([]System{{Symbol: "X1-CD"}, {Symbol: "X1-AB", X: 4}}, testWaypoints())

	var syms []string
	for _, w := range d.SystemWaypoints("X1-AB") {
		syms = append(syms, w.Symbol)
	}
	if !slices.Equal(syms, []string{"X1-AB-A1", "X1-AB-A2", "X1-AB-A3", "X1-AB-B7"}) {
		t.Errorf("got waypoints %v", syms)
	}

	if w, ok := d.Waypoint("X1-CD-Z1"); !ok || w.SystemSymbol != "X1-CD" {
		t.Errorf("system symbol not filled in from waypoint symbol: %+v", w)
	}
	if s := d.Systems(); len(s) != 2 || s[0].Symbol != "X1-AB" {
		t.Errorf("got systems %+v", s)
	}
	if len(d.SystemWaypoints("X1-ZZ")) != 0 {
		t.Errorf("unknown system has waypoints")
	}
	if s := d.SystemSymbols(); !slices.Equal(s, []string{"X1-AB", "X1-CD"}) {
		t.Errorf("got system symbols %v", s)
	}
}

func TestValidate(t *testing.T) {
	var e util.ErrorLogger
	Validate(nil, testWaypoints(), &e)
	if e.HaveErrors() {
		t.Errorf("unexpected errors: %s", e.String())
	}

	wps := append(testWaypoints(),
		Waypoint{Symbol: "X1-AB-C1", SystemSymbol: "X1-AB", Orbits: "X1-AB-Q9"},
		Waypoint{Symbol: "X1-AB-B7", SystemSymbol: "X1-AB"},
		Waypoint{Symbol: "X1-AB-D1", SystemSymbol: "X1-AB", Orbits: "X1-AB-B7"},
		Waypoint{Symbol: "X1-CD-E1", SystemSymbol: "X1-CD", Orbitals: SymbolList{"X1-CD-NOPE"}})
	e = util.ErrorLogger{}
	Validate([]System{{Symbol: "X1-AB"}, {Symbol: "X1-AB"}}, wps, &e)

	expected := []string{
		`duplicate system symbol "X1-AB"`,
		`X1-AB-C1: orbits unknown waypoint "X1-AB-Q9"`,
		"X1-AB-B7: duplicate waypoint symbol",
		`X1-AB-D1: parent "X1-AB-B7" does not list it as an orbital`,
		`X1-CD-E1: orbital "X1-CD-NOPE" is unknown`,
	}
	if !slices.Equal(e.Errors(), expected) {
		t.Errorf("got errors:\n%s\nexpected:\n%s", e.String(), strings.Join(expected, "\n"))
	}
}

func TestFleetRebaseAndLoad(t *testing.T) {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &Fleet{
		Waypoints: testWaypoints(),
		Ships: []Ship{
			{Symbol: "S-1", Nav: ShipNav{Status: NavInTransit, Route: NavRoute{DepartureTime: t0.Add(time.Minute), Arrival: t0.Add(3 * time.Minute)}}},
			{Symbol: "S-2", Nav: ShipNav{Status: NavInTransit, Route: NavRoute{DepartureTime: t0, Arrival: t0.Add(time.Minute)}}},
			{Symbol: "S-3", Nav: ShipNav{Status: NavDocked, WaypointSymbol: "X1-AB-A1", Route: NavRoute{DepartureTime: t0, Arrival: t0}}},
		},
	}

	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	f.Rebase(now)
	if !f.Ships[1].Nav.Route.DepartureTime.Equal(now) {
		t.Errorf("earliest departure not moved to now: %v", f.Ships[1].Nav.Route.DepartureTime)
	}
	if r := f.Ships[0].Nav.Route; !r.DepartureTime.Equal(now.Add(time.Minute)) || r.Duration() != 2*time.Minute {
		t.Errorf("route not shifted consistently: %+v", r)
	}
	if !f.Ships[2].Nav.Route.DepartureTime.Equal(t0) {
		t.Errorf("docked ship's route was shifted")
	}

	for _, name := range []string{"fleet.json", "fleet.msgpack.zst"} {
		path := filepath.Join(t.TempDir(), name)
		if err := f.Save(path); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		g, err := LoadFleet(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(g.Ships) != 3 || g.Ships[0].Nav.Status != NavInTransit || g.Ships[2].Nav.WaypointSymbol != "X1-AB-A1" {
			t.Errorf("%s: ships loaded as %+v", name, g.Ships)
		}
		if d := g.Directory(); len(d.SystemWaypoints("X1-AB")) != 4 {
			t.Errorf("%s: directory has %d X1-AB waypoints", name, len(d.SystemWaypoints("X1-AB")))
		}
	}
}
