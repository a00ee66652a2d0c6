// cmd/starchart/render.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	gomath "math"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/starmap"
	"github.com/fleetdash/starchart/pkg/universe"
	"github.com/fleetdash/starchart/pkg/util"
	"github.com/fleetdash/starchart/pkg/viewport"

	"github.com/gdamore/tcell/v2"
)

// canvas is the part of tcell.Screen that drawing uses.
type canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleOrbit  = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleTether = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRoute  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

var flightModeColors = map[universe.FlightMode]tcell.Color{
	universe.FlightModeCruise:  tcell.ColorGreen,
	universe.FlightModeBurn:    tcell.ColorRed,
	universe.FlightModeDrift:   tcell.ColorBlue,
	universe.FlightModeStealth: tcell.ColorDarkGray,
}

func flightModeStyle(m universe.FlightMode) tcell.Style {
	if c, ok := flightModeColors[m]; ok {
		return tcell.StyleDefault.Foreground(c)
	}
	return tcell.StyleDefault
}

func bodyGlyph(typ string) rune {
	switch typ {
	case "PLANET":
		return 'O'
	case "GAS_GIANT":
		return '@'
	case "MOON":
		return 'o'
	case "ORBITAL_STATION", "FUEL_STATION":
		return '#'
	case "JUMP_GATE":
		return '*'
	case "ASTEROID", "ENGINEERED_ASTEROID", "ASTEROID_BASE", "ASTEROID_FIELD", "DEBRIS_FIELD":
		return ':'
	default:
		return '+'
	}
}

func shipGlyph(s universe.NavStatus) rune {
	switch s {
	case universe.NavDocked:
		return 'd'
	case universe.NavInOrbit:
		return 'e'
	default:
		return '>'
	}
}

// mapContainer returns the pixel rectangle of the map area for a screen
// of the given size. Terminal cells are about twice as tall as they are
// wide, so each row counts as two pixels; the last row holds the status
// line.
func mapContainer(w, h int) math.Extent2D {
	return math.Extent2D{P1: [2]float32{float32(w), float32(2 * max(h-1, 0))}}
}

// pointerPixel returns the pixel at the center of a cell.
func pointerPixel(x, y int) [2]float32 {
	return [2]float32{float32(x) + 0.5, float32(2*y) + 1}
}

type renderer struct {
	frame     starmap.Frame
	routes    []starmap.RouteSegment
	transform viewport.Transform
	status    string

	c         canvas
	w, h      int
	container math.Extent2D
}

func (r *renderer) draw(c canvas) {
	r.c = c
	r.w, r.h = c.Size()
	r.container = mapContainer(r.w, r.h)

	for y := 0; y < r.h-1; y++ {
		for x := 0; x < r.w; x++ {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}

	for _, b := range r.frame.Bodies {
		if b.OrbitCenter != nil {
			r.circle(*b.OrbitCenter, b.OrbitRadius, styleOrbit)
		}
	}

	// Lines get lighter once zoomed in far enough that strokes thin.
	fine := r.transform.StrokeWidth < 0.2
	for _, s := range r.frame.Ships {
		if s.Line == nil {
			continue
		}
		if s.Status == universe.NavInTransit {
			r.line(s.Line.From, s.Line.To, util.Select(fine, '.', '-'), flightModeStyle(s.FlightMode))
		} else {
			r.line(s.Line.From, s.Line.To, '.', styleTether)
		}
	}
	for _, seg := range r.routes {
		ch := util.Select(seg.Weight > 0.5, '=', '-')
		r.line(seg.From, seg.To, ch, styleRoute)
	}

	for _, b := range r.frame.Bodies {
		r.point(b.Position, bodyGlyph(b.Type), styleBody)
	}
	for _, s := range r.frame.Ships {
		r.point(s.Position, shipGlyph(s.Status), flightModeStyle(s.FlightMode).Bold(true))
	}

	if r.h > 0 {
		col := 0
		for _, ch := range r.status {
			if col >= r.w {
				break
			}
			c.SetContent(col, r.h-1, ch, nil, styleStatus)
			col++
		}
		for ; col < r.w; col++ {
			c.SetContent(col, r.h-1, ' ', nil, styleStatus)
		}
	}
}

// cell returns the screen cell for a projected point and whether it's in
// the map area.
func (r *renderer) cell(p [2]float32) (int, int, bool) {
	px := r.transform.Apply(p, r.container)
	x, y := int(gomath.Floor(float64(px[0]))), int(gomath.Floor(float64(px[1]/2)))
	return x, y, x >= 0 && x < r.w && y >= 0 && y < r.h-1
}

func (r *renderer) point(p [2]float32, ch rune, style tcell.Style) {
	if x, y, ok := r.cell(p); ok {
		r.c.SetContent(x, y, ch, nil, style)
	}
}

func (r *renderer) line(from, to [2]float32, ch rune, style tcell.Style) {
	x0, y0, _ := r.cell(from)
	x1, y1, _ := r.cell(to)
	n := max(math.Abs(x1-x0), math.Abs(y1-y0))
	// Don't walk absurdly long offscreen lines when zoomed far in.
	n = min(n, 4*(r.w+r.h))
	for i := 0; i <= n; i++ {
		t := float32(i) / float32(max(n, 1))
		r.point(math.Lerp2f(t, from, to), ch, style)
	}
}

func (r *renderer) circle(center [2]float32, radius float32, style tcell.Style) {
	frame := r.transform.Frame(r.container)
	// Circumference in cells decides how many samples are needed.
	circ := 2 * gomath.Pi * float64(radius/100*frame.Width())
	if circ < 6 {
		return
	}
	n := min(int(circ), 512)
	for i := range n {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		p := [2]float32{
			center[0] + radius*float32(gomath.Cos(a)),
			center[1] + radius*float32(gomath.Sin(a)),
		}
		r.point(p, '.', style)
	}
}
