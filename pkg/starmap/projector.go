// pkg/starmap/projector.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	gomath "math"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/universe"
)

// Projected coordinates are percentages of the map's width and height.
const (
	ProjectedMin = 0
	ProjectedMax = 100
	ProjectedMid = (ProjectedMin + ProjectedMax) / 2

	// Fraction of the largest coordinate reserved as margin around the
	// outermost points.
	extentPadding = 1.05
)

// Projector maps world coordinates to projected space. The world region
// [-Extent, Extent] on each axis maps to [0, 100], so the world origin is
// always at the center of the map.
type Projector struct {
	Bounds math.Extent2D
	Extent [2]float32
}

// ComputeBoundary returns the bounding box of the given world points.
func ComputeBoundary(pts []universe.WorldPoint) math.Extent2D {
	fp := make([][2]float32, len(pts))
	for i, p := range pts {
		fp[i] = p.Float()
	}
	return math.Extent2DFromPoints(fp)
}

// ComputeExtent returns the padded half-width of a symmetric range about
// zero that covers [lo, hi].
func ComputeExtent(lo, hi float32) float32 {
	// Computed in float64 so that exact products like 20*1.05 don't pick
	// up float32 rounding and then get pushed up by the ceiling.
	m := max(math.Abs(float64(hi)), math.Abs(float64(lo)))
	return float32(gomath.Ceil(m * extentPadding))
}

func NewProjector(pts []universe.WorldPoint) Projector {
	b := ComputeBoundary(pts)
	return Projector{
		Bounds: b,
		Extent: [2]float32{ComputeExtent(b.P0[0], b.P1[0]), ComputeExtent(b.P0[1], b.P1[1])},
	}
}

// Degenerate reports whether either axis has zero extent; points are
// projected to the midpoint along such an axis.
func (p Projector) Degenerate() bool {
	return p.Extent[0] == 0 || p.Extent[1] == 0
}

func (p Projector) Project(w universe.WorldPoint) [2]float32 {
	return p.ProjectFloat(w.Float())
}

func (p Projector) ProjectFloat(w [2]float32) [2]float32 {
	var r [2]float32
	for d := range 2 {
		if e := p.Extent[d]; e == 0 {
			r[d] = ProjectedMid
		} else {
			r[d] = math.Remap(w[d], -e, e, ProjectedMin, ProjectedMax)
		}
	}
	return r
}

// Unproject returns the world position corresponding to a projected
// point. Degenerate axes return 0.
func (p Projector) Unproject(q [2]float32) [2]float32 {
	var r [2]float32
	for d := range 2 {
		if e := p.Extent[d]; e != 0 {
			r[d] = math.Remap(q[d], ProjectedMin, ProjectedMax, -e, e)
		}
	}
	return r
}
