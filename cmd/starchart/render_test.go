// cmd/starchart/render_test.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fleetdash/starchart/pkg/starmap"
	"github.com/fleetdash/starchart/pkg/universe"
	"github.com/fleetdash/starchart/pkg/viewport"

	"github.com/gdamore/tcell/v2"
)

type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat("?", w))
	}
	return g
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic("drawing outside the screen")
	}
	g.cells[y][x] = r
}

func (g *grid) row(y int) string { return string(g.cells[y]) }

func TestRenderFrame(t *testing.T) {
	frame := starmap.Frame{
		Bodies: []starmap.PlacedBody{
			{Symbol: "X1-TR-A1", Type: "PLANET", Position: [2]float32{50, 50}},
			{Symbol: "X1-TR-B2", Type: "JUMP_GATE", Position: [2]float32{0, 0}},
		},
		Ships: []starmap.ShipMarker{{
			Symbol:   "HAULER-1",
			Status:   universe.NavInTransit,
			Position: [2]float32{75, 50},
			Line:     &starmap.Segment{From: [2]float32{50, 50}, To: [2]float32{100, 50}},
		}},
	}

	g := newGrid(80, 25)
	r := renderer{
		frame:     frame,
		transform: viewport.Transform{Zoom: 100, StrokeWidth: 0.2},
		status:    " X1-TR",
	}
	r.draw(g)

	// The map is 80x48 pixels; the center is cell (40, 12).
	if c := g.cells[12][40]; c != 'O' {
		t.Errorf("planet drawn as %q", c)
	}
	if c := g.cells[0][0]; c != '*' {
		t.Errorf("jump gate drawn as %q", c)
	}
	if c := g.cells[12][60]; c != '>' {
		t.Errorf("ship drawn as %q", c)
	}
	if c := g.cells[12][50]; c != '-' {
		t.Errorf("transit line drawn as %q", c)
	}
	if !strings.HasPrefix(g.row(24), " X1-TR ") {
		t.Errorf("status line %q", g.row(24))
	}
	for y := range 25 {
		if strings.ContainsRune(g.row(y), '?') {
			t.Errorf("row %d not fully drawn: %q", y, g.row(y))
		}
	}
}

func TestRenderZoomedOffscreen(t *testing.T) {
	frame := starmap.Frame{
		Bodies: []starmap.PlacedBody{{Symbol: "X1-TR-A1", Type: "MOON", Position: [2]float32{50, 50},
			OrbitCenter: &[2]float32{49, 50}, OrbitRadius: 1}},
	}
	g := newGrid(40, 10)
	r := renderer{frame: frame, transform: viewport.Transform{Zoom: 2000, Left: -5000, Top: -5000, StrokeWidth: 0.1}}
	r.draw(g) // must not draw outside the grid

	r.transform = viewport.Transform{Zoom: 2000, Left: -2067, Top: -950, StrokeWidth: 0.1}
	r.draw(g)
	found := false
	for y := range 9 {
		if strings.ContainsRune(g.row(y), '.') {
			found = true
		}
	}
	if !found {
		t.Errorf("orbit circle not drawn when zoomed in")
	}
}

func TestViewerRoutesAndSystems(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	f := GenerateDemoFleet(5, 4, 12, now)
	scene := starmap.NewScene(f.Directory(), starmap.DefaultOptions(), nil)
	scene.SetShips(f.Ships)

	view := viewport.NewController(viewport.DefaultConfig(), nil)
	v := NewViewer(scene, newGraphPathfinder(f.Connections), view, starmap.NewClock(0, nil), "X1-NOWHERE", nil)
	if v.system != v.systems[0] {
		t.Errorf("unknown system not replaced: %s", v.system)
	}

	ctx := context.Background()
	view.Key(viewport.KeyZoomIn)
	start := v.system
	for range len(v.systems) {
		v.nextSystem(ctx)
	}
	if v.system != start {
		t.Errorf("cycling systems ended at %s rather than %s", v.system, start)
	}
	if view.State() != viewport.DefaultState() {
		t.Errorf("switching systems didn't reset the view")
	}

	v.showRoutes = true
	total := 0
	for range len(v.systems) {
		v.nextSystem(ctx)
		total += len(v.routes)
		for _, seg := range v.routes {
			if seg.Weight < 0 || seg.Weight > 1 {
				t.Errorf("segment weight %f", seg.Weight)
			}
		}
	}
	if total == 0 {
		t.Errorf("no routes from any parked ship")
	}
}
