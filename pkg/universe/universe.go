// pkg/universe/universe.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package universe holds the world data the map is drawn from: systems,
// waypoints, the ship roster and route connections. All of it is supplied
// by an external fetcher and is treated as read-only here.
package universe

import (
	"encoding/json"
	"fmt"
	"strings"
)

type WorldPoint struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

func (p WorldPoint) Float() [2]float32 {
	return [2]float32{float32(p.X), float32(p.Y)}
}

type System struct {
	Symbol string `json:"symbol" msgpack:"symbol"`
	Type   string `json:"type" msgpack:"type"`
	X      int    `json:"x" msgpack:"x"`
	Y      int    `json:"y" msgpack:"y"`
}

func (s System) Point() WorldPoint { return WorldPoint{X: s.X, Y: s.Y} }

type Waypoint struct {
	Symbol       string     `json:"symbol" msgpack:"symbol"`
	SystemSymbol string     `json:"systemSymbol" msgpack:"systemSymbol"`
	Type         string     `json:"type" msgpack:"type"`
	X            int        `json:"x" msgpack:"x"`
	Y            int        `json:"y" msgpack:"y"`
	Orbits       string     `json:"orbits,omitempty" msgpack:"orbits,omitempty"`
	Orbitals     SymbolList `json:"orbitals,omitempty" msgpack:"orbitals,omitempty"`
}

func (w Waypoint) Point() WorldPoint { return WorldPoint{X: w.X, Y: w.Y} }

// IsOrbital reports whether the waypoint orbits another waypoint.
func (w Waypoint) IsOrbital() bool { return w.Orbits != "" }

func (w Waypoint) String() string {
	return fmt.Sprintf("Waypoint(%s)", w.Symbol)
}

// SymbolList is a list of waypoint symbols. In JSON it may be given
// either as plain strings or as the {"symbol": ...} objects that the game
// API returns for a waypoint's orbitals.
type SymbolList []string

func (s *SymbolList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	list := make(SymbolList, 0, len(raw))
	for _, r := range raw {
		var str string
		if err := json.Unmarshal(r, &str); err == nil {
			list = append(list, str)
			continue
		}
		var obj struct {
			Symbol string `json:"symbol"`
		}
		if err := json.Unmarshal(r, &obj); err != nil {
			return fmt.Errorf("orbital entry %s: %w", string(r), err)
		}
		list = append(list, obj.Symbol)
	}
	*s = list
	return nil
}

// ExtractSystemSymbol extracts the system symbol from a waypoint symbol
// by finding the last hyphen and returning everything before it.
// Example: "X1-AB12-C3D4" -> "X1-AB12"
func ExtractSystemSymbol(waypointSymbol string) string {
	if i := strings.LastIndexByte(waypointSymbol, '-'); i >= 0 {
		return waypointSymbol[:i]
	}
	return waypointSymbol
}
