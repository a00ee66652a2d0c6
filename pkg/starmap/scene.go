// pkg/starmap/scene.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fleetdash/starchart/pkg/log"
	"github.com/fleetdash/starchart/pkg/rand"
	"github.com/fleetdash/starchart/pkg/universe"

	"github.com/brunoga/deep"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Number of system layouts kept around across directory refreshes.
const layoutCacheSize = 64

// Scene holds everything the map needs between frames: the current world
// directory, the latest ship roster, and memoized layouts. It is the
// explicit context passed to the layout code; nothing here is global.
type Scene struct {
	mu      sync.Mutex
	dir     *universe.Directory
	ships   []universe.Ship
	options Options
	lg      *log.Logger

	// Layouts for the current directory, by system symbol.
	current map[string]*SystemLayout
	galaxy  *GalaxyLayout
	// Layouts keyed by content, so that a refresh that doesn't change a
	// system's waypoints reuses its layout.
	layouts *lru.Cache[layoutKey, *SystemLayout]

	lastShipDiagnostics string
}

type layoutKey struct {
	system      string
	fingerprint uint64
}

// Frame is everything needed to draw one system at one instant.
type Frame struct {
	System      string
	Time        time.Time
	Bodies      []PlacedBody
	Ships       []ShipMarker
	Diagnostics []error
}

func NewScene(dir *universe.Directory, opts Options, lg *log.Logger) *Scene {
	cache, err := lru.New[layoutKey, *SystemLayout](layoutCacheSize)
	if err != nil {
		// Only possible with a non-positive size.
		panic(err)
	}
	if dir == nil {
		dir = universe.NewDirectory(nil, nil)
	}
	return &Scene{
		dir:     dir,
		options: opts,
		lg:      lg,
		current: make(map[string]*SystemLayout),
		layouts: cache,
	}
}

// SetDirectory replaces the world directory. Layouts are recomputed
// lazily, and only for systems whose waypoints actually changed.
func (s *Scene) SetDirectory(dir *universe.Directory) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dir = dir
	s.current = make(map[string]*SystemLayout)
	s.galaxy = nil
}

func (s *Scene) Directory() *universe.Directory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir
}

// SetShips replaces the ship roster. The roster is copied, so the caller
// is free to keep modifying its slice.
func (s *Scene) SetShips(ships []universe.Ship) {
	cp := deep.MustCopy(ships)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ships = cp
}

// Ships returns a copy of the current roster.
func (s *Scene) Ships() []universe.Ship {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.ships)
}

// Layout returns the layout of the given system, computing it if needed.
func (s *Scene) Layout(system string) *SystemLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layoutLocked(system)
}

func (s *Scene) layoutLocked(system string) *SystemLayout {
	if l, ok := s.current[system]; ok {
		return l
	}

	wps := s.dir.SystemWaypoints(system)
	key := layoutKey{system: system, fingerprint: fingerprint(wps)}
	l, ok := s.layouts.Get(key)
	if !ok {
		l = LayoutSystem(system, wps, s.options)
		s.layouts.Add(key, l)

		s.lg.Debug("computed system layout", slog.String("system", system),
			slog.Int("waypoints", len(wps)), slog.Int("diagnostics", len(l.Diagnostics)))
		for _, d := range l.Diagnostics {
			s.lg.Debug("layout", slog.String("system", system), slog.Any("error", d))
		}
	}
	s.current[system] = l
	return l
}

// Galaxy returns the layout of all systems in the directory.
func (s *Scene) Galaxy() *GalaxyLayout {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.galaxy == nil {
		s.galaxy = LayoutGalaxy(s.dir.Systems())
	}
	return s.galaxy
}

// Frame positions the ships of the given system at now.
func (s *Scene) Frame(system string, now time.Time) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.layoutLocked(system)
	ships, diags := PositionShips(l, s.ships, now)
	s.logShipDiagnostics(system, diags)

	return Frame{
		System:      system,
		Time:        now,
		Bodies:      l.Sorted(),
		Ships:       ships,
		Diagnostics: append(append([]error(nil), l.Diagnostics...), diags...),
	}
}

// logShipDiagnostics logs ship problems when they change rather than on
// every tick.
func (s *Scene) logShipDiagnostics(system string, diags []error) {
	var sb strings.Builder
	for _, d := range diags {
		sb.WriteString(d.Error())
		sb.WriteByte('\n')
	}
	if str := sb.String(); str != s.lastShipDiagnostics {
		s.lastShipDiagnostics = str
		for _, d := range diags {
			s.lg.Debug("ship positioning", slog.String("system", system), slog.Any("error", d))
		}
	}
}

// Routes asks the pathfinder for a route and resolves it against the
// given system's layout, or against the galaxy layout if system is "".
func (s *Scene) Routes(ctx context.Context, pf universe.Pathfinder, q universe.PathQuery,
	system string) ([]RouteSegment, []error, error) {
	conns, err := pf.FindRoute(ctx, q)
	if err != nil {
		return nil, nil, fmt.Errorf("route from %s: %w", q.Origin, err)
	}

	var r Resolver
	if system == "" {
		r = s.Galaxy()
	} else {
		r = s.Layout(system)
	}

	segs, diags := ResolveRoute(conns, r)
	for _, d := range diags {
		s.lg.Debug("route overlay", slog.String("origin", q.Origin), slog.Any("error", d))
	}
	return segs, diags, nil
}

// fingerprint hashes everything about a system's waypoints that affects
// its layout.
func fingerprint(wps []universe.Waypoint) uint64 {
	var sb strings.Builder
	for _, w := range wps {
		sb.WriteString(w.Symbol)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(w.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(w.Y))
		sb.WriteByte(' ')
		sb.WriteString(w.Orbits)
		sb.WriteByte(' ')
		sb.WriteString(w.Type)
		sb.WriteByte('\n')
	}
	return rand.Hash53(sb.String(), 0)
}
