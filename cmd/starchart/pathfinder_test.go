// cmd/starchart/pathfinder_test.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"testing"

	"github.com/fleetdash/starchart/pkg/universe"
)

var testConnections = []universe.Connection{
	{Origin: "X1-TR-A1", Destination: "X1-TR-B2", Distance: 10},
	{Origin: "X1-TR-B2", Destination: "X1-TR-C3", Distance: 10},
	{Origin: "X1-TR-A1", Destination: "X1-TR-C3", Distance: 35},
	{Origin: "X1-TR-C3", Destination: "X1-TR-D4", Distance: 5, FlightMode: universe.FlightModeDrift},
}

func hops(route []universe.Connection) []string {
	var h []string
	for _, c := range route {
		h = append(h, c.Origin+">"+c.Destination)
	}
	return h
}

func TestPathfinderShortest(t *testing.T) {
	pf := newGraphPathfinder(testConnections)
	ctx := context.Background()

	route, err := pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-A1", Destination: "X1-TR-D4"})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"X1-TR-A1>X1-TR-B2", "X1-TR-B2>X1-TR-C3", "X1-TR-C3>X1-TR-D4"}
	if got := hops(route); len(got) != 3 || got[0] != expected[0] || got[1] != expected[1] || got[2] != expected[2] {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if route[2].FlightMode != universe.FlightModeDrift {
		t.Errorf("lost the connection's flight mode")
	}

	// Reverse direction works too.
	route, err = pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-D4", Destination: "X1-TR-A1", FlightMode: universe.FlightModeBurn})
	if err != nil || len(route) != 3 || route[2].Destination != "X1-TR-A1" {
		t.Fatalf("got %v, %v", hops(route), err)
	}
	for _, c := range route {
		if c.FlightMode != universe.FlightModeBurn {
			t.Errorf("%s: query flight mode not applied", c.Origin)
		}
	}
}

func TestPathfinderFuel(t *testing.T) {
	pf := newGraphPathfinder(testConnections)
	ctx := context.Background()

	// Going through B2 is shorter than the direct hop.
	route, err := pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-A1", Destination: "X1-TR-C3", MaxFuel: 40})
	if err != nil || len(route) != 2 {
		t.Errorf("got %v, %v", hops(route), err)
	}

	if _, err := pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-A1", Destination: "X1-TR-D4", MaxFuel: 8}); err == nil {
		t.Errorf("expected no route with too little fuel")
	}

	all, err := pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-A1", MaxFuel: 20})
	if err != nil || len(all) != 1 || all[0].Destination != "X1-TR-B2" {
		t.Errorf("got %v, %v", hops(all), err)
	}
}

func TestPathfinderErrors(t *testing.T) {
	pf := newGraphPathfinder(testConnections)
	if _, err := pf.FindRoute(context.Background(), universe.PathQuery{Origin: "X1-ZZ-A1"}); err == nil {
		t.Errorf("expected an error for an unknown origin")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pf.FindRoute(ctx, universe.PathQuery{Origin: "X1-TR-A1", Destination: "X1-TR-D4"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, expected context.Canceled", err)
	}
}
