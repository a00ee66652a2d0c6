// pkg/viewport/controller_test.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package viewport

import (
	"testing"

	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/rand"
	"github.com/fleetdash/starchart/pkg/util"
)

var container = math.Extent2D{P0: [2]float32{0, 0}, P1: [2]float32{800, 600}}

func approx(a, b, eps float32) bool {
	return math.Abs(a-b) <= eps
}

func TestWheelZoomIn(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	tr := c.Transform()
	pointer := [2]float32{600, 150}
	before := tr.Invert(pointer, container)

	if !c.Wheel(-1, pointer, tr.Frame(container), container) {
		t.Fatalf("wheel didn't change the state")
	}

	s := c.State()
	if !approx(s.Zoom, 110, 1e-4) {
		t.Errorf("got zoom %f, expected 110", s.Zoom)
	}
	// The pointer is 3/4 across and 1/4 down; the container is 4:3.
	if !approx(s.Left, -10, 1e-4) || !approx(s.Top, -2.5, 1e-4) {
		t.Errorf("got left %f top %f, expected -10 -2.5", s.Left, s.Top)
	}

	after := c.Transform().Invert(pointer, container)
	if !approx(before[0], after[0], 1e-3) || !approx(before[1], after[1], 1e-3) {
		t.Errorf("point under the pointer moved from %v to %v", before, after)
	}
}

func TestWheelAnchored(t *testing.T) {
	r := rand.Make()
	r.Seed(7)

	for _, cont := range []math.Extent2D{
		container,
		{P0: [2]float32{10, 20}, P1: [2]float32{310, 920}},
		{P0: [2]float32{0, 0}, P1: [2]float32{500, 500}},
	} {
		c := NewController(DefaultConfig(), nil)
		for range 100 {
			pointer := [2]float32{
				math.Lerp(r.Float32(), cont.P0[0], cont.P1[0]),
				math.Lerp(r.Float32(), cont.P0[1], cont.P1[1]),
			}
			dy := float32(1)
			if r.Intn(2) == 0 {
				dy = -1
			}

			tr := c.Transform()
			before := tr.Invert(pointer, cont)
			if !c.Wheel(dy, pointer, tr.Frame(cont), cont) {
				continue
			}
			after := c.Transform().Invert(pointer, cont)
			if !approx(before[0], after[0], 1e-2) || !approx(before[1], after[1], 1e-2) {
				t.Fatalf("container %v: point under %v moved from %v to %v", cont, pointer, before, after)
			}
		}
	}
}

func TestWheelClamped(t *testing.T) {
	r := rand.Make()
	r.Seed(99)
	cfg := DefaultConfig()
	c := NewController(cfg, nil)

	for i := range 2000 {
		// Long runs in one direction so that both bounds are hit.
		dy := float32(1)
		if (i/150)%2 == 0 {
			dy = -1
		}
		if r.Intn(5) == 0 {
			dy = -dy
		}
		pointer := [2]float32{r.Float32() * 800, r.Float32() * 600}
		c.Wheel(dy*r.Float32()*3+dy, pointer, c.Transform().Frame(container), container)

		if z := c.State().Zoom; z < cfg.ZoomMin || z > cfg.ZoomMax {
			t.Fatalf("event %d: zoom %f out of bounds", i, z)
		}
	}

	c.SetState(State{Zoom: 1e6, Left: 12})
	if s := c.State(); s.Zoom != cfg.ZoomMax || s.Left != 12 {
		t.Errorf("SetState gave %+v", s)
	}
	if c.Wheel(-1, [2]float32{1, 1}, container, container) {
		t.Errorf("zooming in past the maximum reported a change")
	}
	if c.Wheel(0, [2]float32{1, 1}, container, container) {
		t.Errorf("zero wheel delta reported a change")
	}
}

func TestKeys(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	for _, k := range []Key{KeyLeft, KeyLeft, KeyUp, KeyRight, KeyDown, KeyDown} {
		if !c.Key(k) {
			t.Errorf("%s: no change", k)
		}
	}
	if s := c.State(); s != (State{Zoom: 100, Left: 10, Top: -10}) {
		t.Errorf("after panning got %+v", s)
	}

	c.Key(KeyZoomIn)
	if z := c.State().Zoom; z != 110 {
		t.Errorf("zoom in gave %f", z)
	}
	for range 20 {
		c.Key(KeyZoomOut)
	}
	if z := c.State().Zoom; z != 30 {
		t.Errorf("zoom out gave %f, expected the minimum", z)
	}
	if c.Key(KeyZoomOut) {
		t.Errorf("zoom out at the minimum reported a change")
	}

	if !c.Key(KeyReset) || c.State() != DefaultState() {
		t.Errorf("reset gave %+v", c.State())
	}
	if c.Key(KeyNone) {
		t.Errorf("KeyNone changed the state")
	}
}

func TestDrag(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	// Moving without a button held doesn't pan.
	if c.PointerMove([2]float32{100, 100}, container) {
		t.Errorf("hover panned the map")
	}

	c.PointerDown([2]float32{100, 100}, MouseButtonSecondary)
	if c.PointerMove([2]float32{180, 100}, container) {
		t.Errorf("secondary button drag panned the map")
	}
	c.PointerUp([2]float32{180, 100}, MouseButtonSecondary)

	c.PointerDown([2]float32{100, 100}, MouseButtonPrimary)
	if !c.Dragging() {
		t.Errorf("not dragging")
	}
	c.PointerMove([2]float32{140, 70}, container)
	c.PointerMove([2]float32{180, 40}, container)
	c.PointerUp([2]float32{180, 40}, MouseButtonPrimary)

	s := c.State()
	if !approx(s.Left, 10, 1e-4) || !approx(s.Top, -10, 1e-4) {
		t.Errorf("got left %f top %f, expected 10 -10", s.Left, s.Top)
	}

	if c.PointerMove([2]float32{400, 400}, container) {
		t.Errorf("panned after release")
	}
	if s.Zoom != 100 {
		t.Errorf("drag changed zoom to %f", s.Zoom)
	}
}

func TestStrokeWidth(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	for _, tc := range []struct{ zoom, width float32 }{
		{30, 0.2},
		{100, 0.2},
		{1000, 0.2},
		{2000, 0.1},
	} {
		c.SetState(State{Zoom: tc.zoom})
		if w := c.StrokeWidth(); !approx(w, tc.width, 1e-6) {
			t.Errorf("zoom %f: stroke %f, expected %f", tc.zoom, w, tc.width)
		}
		if tr := c.Transform(); tr.StrokeWidth != c.StrokeWidth() || tr.Zoom != tc.zoom {
			t.Errorf("transform %+v", tr)
		}
	}
}

func TestTransformApply(t *testing.T) {
	tr := Transform{Zoom: 200, Left: -50, Top: -25}
	// Shorter side is 600 pixels, so 1% is 6 pixels.
	f := tr.Frame(container)
	if f.P0 != [2]float32{-300, -150} || f.P1 != [2]float32{1300, 1050} {
		t.Errorf("got frame %+v", f)
	}
	p := tr.Apply([2]float32{50, 50}, container)
	if !approx(p[0], 500, 1e-3) || !approx(p[1], 450, 1e-3) {
		t.Errorf("center mapped to %v", p)
	}
	q := tr.Invert(p, container)
	if !approx(q[0], 50, 1e-3) || !approx(q[1], 50, 1e-3) {
		t.Errorf("inverted to %v", q)
	}
}

func TestConfigValidate(t *testing.T) {
	var e util.ErrorLogger
	DefaultConfig().Validate(&e)
	if e.HaveErrors() {
		t.Errorf("default config: %s", e.String())
	}

	bad := Config{ZoomMin: 0, ZoomMax: -1, WheelStep: 1.5}
	bad.Validate(&e)
	if n := len(e.Errors()); n != 5 {
		t.Errorf("expected 5 errors, got %d: %s", n, e.String())
	}

	c := NewController(bad, nil)
	if c.Config() != DefaultConfig() {
		t.Errorf("invalid config was kept: %+v", c.Config())
	}
}
