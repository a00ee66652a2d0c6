// pkg/universe/fleet.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package universe

import (
	"time"

	"github.com/fleetdash/starchart/pkg/util"
)

// Fleet is a snapshot of everything the map needs for an agent: the
// world directory, the ship roster, and the known jump/travel
// connections that the demo pathfinder routes over.
type Fleet struct {
	Systems     []System     `json:"systems" msgpack:"systems"`
	Waypoints   []Waypoint   `json:"waypoints" msgpack:"waypoints"`
	Ships       []Ship       `json:"ships" msgpack:"ships"`
	Connections []Connection `json:"connections,omitempty" msgpack:"connections,omitempty"`
}

// LoadFleet decodes a fleet snapshot from a .json or .msgpack file,
// either of which may be zstd compressed (.zst).
func LoadFleet(path string) (*Fleet, error) {
	var f Fleet
	if err := util.DecodeFile(path, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fleet) Save(path string) error {
	return util.EncodeFile(path, f)
}

func (f *Fleet) Directory() *Directory {
	return NewDirectory(f.Systems, f.Waypoints)
}

// Rebase shifts every in-transit route so that the earliest departure
// happens at now, keeping each route's duration. Snapshots saved in the
// past can then be replayed with ships still moving.
func (f *Fleet) Rebase(now time.Time) {
	var earliest time.Time
	for _, s := range f.Ships {
		if s.Nav.Status != NavInTransit {
			continue
		}
		if dep := s.Nav.Route.DepartureTime; earliest.IsZero() || dep.Before(earliest) {
			earliest = dep
		}
	}
	if earliest.IsZero() {
		return
	}

	shift := now.Sub(earliest)
	for i := range f.Ships {
		r := &f.Ships[i].Nav.Route
		if f.Ships[i].Nav.Status == NavInTransit {
			r.DepartureTime = r.DepartureTime.Add(shift)
			r.Arrival = r.Arrival.Add(shift)
		}
	}
}
