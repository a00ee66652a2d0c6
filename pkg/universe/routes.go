// pkg/universe/routes.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package universe

import "context"

// Connection is one hop of a route returned by a Pathfinder.
type Connection struct {
	Origin      string     `json:"origin" msgpack:"origin"`
	Destination string     `json:"destination" msgpack:"destination"`
	Distance    float32    `json:"distance" msgpack:"distance"`
	FlightMode  FlightMode `json:"flightMode" msgpack:"flightMode"`
}

// PathQuery holds the parameters for a route request. An empty
// Destination asks for every reachable connection from Origin.
type PathQuery struct {
	Origin      string
	Destination string
	FlightMode  FlightMode
	MaxFuel     int
	StartFuel   int
}

// Pathfinder is implemented by the external route-finding service; the
// map only draws what it returns.
type Pathfinder interface {
	FindRoute(ctx context.Context, q PathQuery) ([]Connection, error)
}

// PathfinderFunc adapts a function to the Pathfinder interface.
type PathfinderFunc func(ctx context.Context, q PathQuery) ([]Connection, error)

func (f PathfinderFunc) FindRoute(ctx context.Context, q PathQuery) ([]Connection, error) {
	return f(ctx, q)
}
