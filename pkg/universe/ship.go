// pkg/universe/ship.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package universe

import (
	"time"
)

// NavStatus is a ship's navigation state. It is a closed set: anything
// the API reports that isn't one of the known states decodes as
// NavUnknown, and such ships are not drawn.
type NavStatus int

const (
	NavUnknown NavStatus = iota
	NavDocked
	NavInOrbit
	NavInTransit
)

var navStatusNames = [...]string{
	NavUnknown:   "UNKNOWN",
	NavDocked:    "DOCKED",
	NavInOrbit:   "IN_ORBIT",
	NavInTransit: "IN_TRANSIT",
}

func (s NavStatus) String() string {
	if s < 0 || int(s) >= len(navStatusNames) {
		return navStatusNames[NavUnknown]
	}
	return navStatusNames[s]
}

func (s NavStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *NavStatus) UnmarshalText(b []byte) error {
	*s = NavUnknown
	for i, name := range navStatusNames {
		if string(b) == name {
			*s = NavStatus(i)
			break
		}
	}
	return nil
}

type FlightMode string

const (
	FlightModeCruise  FlightMode = "CRUISE"
	FlightModeBurn    FlightMode = "BURN"
	FlightModeDrift   FlightMode = "DRIFT"
	FlightModeStealth FlightMode = "STEALTH"
)

type Ship struct {
	Symbol string  `json:"symbol" msgpack:"symbol"`
	Nav    ShipNav `json:"nav" msgpack:"nav"`
}

type ShipNav struct {
	Status         NavStatus  `json:"status" msgpack:"status"`
	SystemSymbol   string     `json:"systemSymbol" msgpack:"systemSymbol"`
	WaypointSymbol string     `json:"waypointSymbol" msgpack:"waypointSymbol"`
	FlightMode     FlightMode `json:"flightMode" msgpack:"flightMode"`
	Route          NavRoute   `json:"route" msgpack:"route"`
}

type NavRoute struct {
	Origin        RouteEndpoint `json:"origin" msgpack:"origin"`
	Destination   RouteEndpoint `json:"destination" msgpack:"destination"`
	DepartureTime time.Time     `json:"departureTime" msgpack:"departureTime"`
	Arrival       time.Time     `json:"arrival" msgpack:"arrival"`
}

type RouteEndpoint struct {
	Symbol       string `json:"symbol" msgpack:"symbol"`
	SystemSymbol string `json:"systemSymbol" msgpack:"systemSymbol"`
	Type         string `json:"type,omitempty" msgpack:"type,omitempty"`
	X            int    `json:"x" msgpack:"x"`
	Y            int    `json:"y" msgpack:"y"`
}

// Duration returns the scheduled travel time of the route; it is zero or
// negative if the route's times are inconsistent.
func (r NavRoute) Duration() time.Duration {
	return r.Arrival.Sub(r.DepartureTime)
}
