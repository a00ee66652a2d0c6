// pkg/universe/directory.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package universe

import (
	"slices"
	"strings"

	"github.com/fleetdash/starchart/pkg/util"
)

// Directory is an indexed, read-only view of the systems and waypoints
// supplied for one activation of the map. A refresh from the fetcher
// produces a new Directory rather than mutating an existing one.
type Directory struct {
	systems   map[string]System
	waypoints map[string]Waypoint
	// Waypoint symbols for each system, sorted.
	bySystem map[string][]string
}

// NewDirectory indexes the given systems and waypoints. If a symbol is
// repeated, the last entry wins; Validate reports the repetition.
func NewDirectory(systems []System, waypoints []Waypoint) *Directory {
	d := &Directory{
		systems:   make(map[string]System, len(systems)),
		waypoints: make(map[string]Waypoint, len(waypoints)),
		bySystem:  make(map[string][]string),
	}
	for _, s := range systems {
		d.systems[s.Symbol] = s
	}
	for _, w := range waypoints {
		if w.SystemSymbol == "" {
			w.SystemSymbol = ExtractSystemSymbol(w.Symbol)
		}
		if _, ok := d.waypoints[w.Symbol]; !ok {
			d.bySystem[w.SystemSymbol] = append(d.bySystem[w.SystemSymbol], w.Symbol)
		}
		d.waypoints[w.Symbol] = w
	}
	for _, syms := range d.bySystem {
		slices.Sort(syms)
	}
	return d
}

func (d *Directory) System(symbol string) (System, bool) {
	s, ok := d.systems[symbol]
	return s, ok
}

func (d *Directory) Waypoint(symbol string) (Waypoint, bool) {
	w, ok := d.waypoints[symbol]
	return w, ok
}

// Systems returns all systems sorted by symbol.
func (d *Directory) Systems() []System {
	s := make([]System, 0, len(d.systems))
	for _, sym := range util.SortedMapKeys(d.systems) {
		s = append(s, d.systems[sym])
	}
	return s
}

// SystemWaypoints returns the waypoints of the given system, sorted by
// symbol.
func (d *Directory) SystemWaypoints(system string) []Waypoint {
	syms := d.bySystem[system]
	wps := make([]Waypoint, len(syms))
	for i, sym := range syms {
		wps[i] = d.waypoints[sym]
	}
	return wps
}

// SystemSymbols returns the symbols of every system that has either a
// System entry or at least one waypoint, sorted.
func (d *Directory) SystemSymbols() []string {
	set := make(map[string]struct{})
	for s := range d.systems {
		set[s] = struct{}{}
	}
	for s := range d.bySystem {
		set[s] = struct{}{}
	}
	return util.SortedMapKeys(set)
}

// Validate checks the directory's internal references. Problems are
// recorded in e; none of them prevent layout, which omits or falls back
// per entity.
func Validate(systems []System, waypoints []Waypoint, e *util.ErrorLogger) {
	seen := make(map[string]struct{})
	for _, s := range systems {
		if _, ok := seen[s.Symbol]; ok {
			e.ErrorString("duplicate system symbol %q", s.Symbol)
		}
		seen[s.Symbol] = struct{}{}
	}

	d := NewDirectory(systems, waypoints)
	clear(seen)
	for _, w := range waypoints {
		e.Push(w.Symbol)

		if _, ok := seen[w.Symbol]; ok {
			e.ErrorString("duplicate waypoint symbol")
		}
		seen[w.Symbol] = struct{}{}

		if !strings.HasPrefix(w.Symbol, w.SystemSymbol+"-") && w.SystemSymbol != "" {
			e.ErrorString("symbol is not in system %q", w.SystemSymbol)
		}

		if w.Orbits != "" {
			if w.Orbits == w.Symbol {
				e.ErrorString("orbits itself")
			} else if parent, ok := d.Waypoint(w.Orbits); !ok {
				e.ErrorString("orbits unknown waypoint %q", w.Orbits)
			} else if parent.SystemSymbol != d.waypoints[w.Symbol].SystemSymbol {
				e.ErrorString("orbits %q in a different system", w.Orbits)
			} else if !slices.Contains(parent.Orbitals, w.Symbol) {
				e.ErrorString("parent %q does not list it as an orbital", w.Orbits)
			}
		}

		for _, o := range w.Orbitals {
			if child, ok := d.Waypoint(o); !ok {
				e.ErrorString("orbital %q is unknown", o)
			} else if child.Orbits != w.Symbol {
				e.ErrorString("orbital %q orbits %q instead", o, child.Orbits)
			}
		}

		e.Pop()
	}
}
