// pkg/viewport/controller.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package viewport maintains the zoom and pan of the map layer and turns
// wheel, keyboard, and drag input into updates of them.
package viewport

import (
	"log/slog"

	"github.com/fleetdash/starchart/pkg/log"
	"github.com/fleetdash/starchart/pkg/math"
	"github.com/fleetdash/starchart/pkg/util"
)

const (
	DefaultZoom = 100

	// Line and circle strokes are at most this wide in projected units
	// and get thinner once zoomed past strokeZoomScale/maxStrokeWidth.
	maxStrokeWidth  = 0.2
	strokeZoomScale = 200
)

type Config struct {
	ZoomMin float32 `json:"zoom_min"`
	ZoomMax float32 `json:"zoom_max"`
	// Fractional zoom change per wheel event.
	WheelStep float32 `json:"wheel_step"`
	// Pan step for the arrow keys, in percent.
	KeyPanStep float32 `json:"key_pan_step"`
	// Absolute zoom change for the zoom keys.
	KeyZoomStep float32 `json:"key_zoom_step"`
}

func DefaultConfig() Config {
	return Config{
		ZoomMin:     30,
		ZoomMax:     2000,
		WheelStep:   0.1,
		KeyPanStep:  10,
		KeyZoomStep: 10,
	}
}

func (c Config) Validate(e *util.ErrorLogger) {
	e.Push("viewport")
	defer e.Pop()

	if c.ZoomMin <= 0 {
		e.ErrorString("zoom_min %f must be positive", c.ZoomMin)
	}
	if c.ZoomMax < c.ZoomMin {
		e.ErrorString("zoom_max %f is less than zoom_min %f", c.ZoomMax, c.ZoomMin)
	}
	if c.WheelStep <= 0 || c.WheelStep >= 1 {
		e.ErrorString("wheel_step %f must be between 0 and 1", c.WheelStep)
	}
	if c.KeyPanStep <= 0 {
		e.ErrorString("key_pan_step %f must be positive", c.KeyPanStep)
	}
	if c.KeyZoomStep <= 0 {
		e.ErrorString("key_zoom_step %f must be positive", c.KeyZoomStep)
	}
}

// State is the zoom of the map layer, as a percentage of the container,
// and its offset from the container's top-left corner, as a percentage
// of the container's shorter side. Zoom always lies within the
// configured bounds; the offsets are unconstrained.
type State struct {
	Zoom float32 `json:"zoom"`
	Top  float32 `json:"top"`
	Left float32 `json:"left"`
}

func DefaultState() State {
	return State{Zoom: DefaultZoom}
}

// Transform is what renderers need from the viewport.
type Transform struct {
	Zoom, Top, Left float32
	StrokeWidth     float32
}

// Controller owns the viewport state; nothing else modifies it.
type Controller struct {
	config Config
	state  State
	mouse  MouseState
	lg     *log.Logger
}

// NewController returns a controller at the default state. Invalid
// configurations are replaced by the defaults, with a warning.
func NewController(config Config, lg *log.Logger) *Controller {
	var e util.ErrorLogger
	config.Validate(&e)
	if e.HaveErrors() {
		e.LogErrors(lg)
		lg.Warn("using the default viewport configuration")
		config = DefaultConfig()
	}
	return &Controller{config: config, state: DefaultState(), lg: lg}
}

func (c *Controller) Config() Config { return c.config }

func (c *Controller) State() State { return c.state }

// SetState restores a saved state; the zoom is clamped to the configured
// bounds.
func (c *Controller) SetState(s State) {
	s.Zoom = c.clampZoom(s.Zoom)
	c.state = s
}

func (c *Controller) Reset() {
	c.state = DefaultState()
	c.lg.Debug("viewport reset")
}

func (c *Controller) clampZoom(z float32) float32 {
	return math.Clamp(z, c.config.ZoomMin, c.config.ZoomMax)
}

// aspect returns the horizontal and vertical corrections for a container
// that isn't square.
func aspect(container math.Extent2D) (float32, float32) {
	w, h := container.Width(), container.Height()
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	return max(w/h, 1), max(h/w, 1)
}

// Wheel zooms by one step, in if dy < 0 and out if dy > 0, keeping the
// point of the map layer under the pointer where it is. frame is the
// rectangle the map layer currently occupies and container is the
// rectangle of the view holding it, both in pixels. It returns whether
// the state changed.
func (c *Controller) Wheel(dy float32, pointer [2]float32, frame, container math.Extent2D) bool {
	if dy == 0 {
		return false
	}

	zoom := c.state.Zoom
	var newZoom float32
	if dy < 0 {
		newZoom = c.clampZoom(zoom * (1 + c.config.WheelStep))
	} else {
		newZoom = c.clampZoom(zoom * (1 - c.config.WheelStep))
	}
	if newZoom == zoom {
		return false
	}

	// Shift the layer so that the pointer's fractional position within
	// it is unchanged after the zoom.
	f := frame.Fraction(pointer)
	ax, ay := aspect(container)
	dz := newZoom - zoom
	c.state.Left -= dz * f[0] * ax
	c.state.Top -= dz * f[1] * ay
	c.state.Zoom = newZoom

	return true
}

// Key applies a keyboard command. The arrow keys move the view in the
// given direction, which moves the map layer the opposite way. Keyboard
// zoom isn't anchored to the pointer.
func (c *Controller) Key(k Key) bool {
	prev := c.state
	switch k {
	case KeyUp:
		c.state.Top += c.config.KeyPanStep
	case KeyDown:
		c.state.Top -= c.config.KeyPanStep
	case KeyLeft:
		c.state.Left += c.config.KeyPanStep
	case KeyRight:
		c.state.Left -= c.config.KeyPanStep
	case KeyZoomIn:
		c.state.Zoom = c.clampZoom(c.state.Zoom + c.config.KeyZoomStep)
	case KeyZoomOut:
		c.state.Zoom = c.clampZoom(c.state.Zoom - c.config.KeyZoomStep)
	case KeyReset:
		c.Reset()
	default:
		return false
	}
	return c.state != prev
}

func (c *Controller) PointerDown(p [2]float32, b MouseButton) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	c.mouse.Down[b] = true
	c.mouse.Pos = p
}

// PointerMove pans the layer by the pointer's movement while the primary
// button is held. The movement is converted to a percentage of the
// container so that dragging feels the same at any window size. It
// returns whether the state changed.
func (c *Controller) PointerMove(p [2]float32, container math.Extent2D) bool {
	delta := math.Sub2f(p, c.mouse.Pos)
	c.mouse.Pos = p

	if !c.mouse.Dragging() || (delta[0] == 0 && delta[1] == 0) {
		return false
	}
	if w := container.Width(); w > 0 {
		c.state.Left += delta[0] / w * 100
	}
	if h := container.Height(); h > 0 {
		c.state.Top += delta[1] / h * 100
	}
	return true
}

func (c *Controller) PointerUp(p [2]float32, b MouseButton) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	c.mouse.Down[b] = false
	c.mouse.Pos = p
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.mouse.Dragging()
}

// StrokeWidth returns the width to draw route lines and orbit circles
// at, in projected units.
func (c *Controller) StrokeWidth() float32 {
	return min(maxStrokeWidth, strokeZoomScale/c.state.Zoom)
}

func (c *Controller) Transform() Transform {
	return Transform{
		Zoom:        c.state.Zoom,
		Top:         c.state.Top,
		Left:        c.state.Left,
		StrokeWidth: c.StrokeWidth(),
	}
}

///////////////////////////////////////////////////////////////////////////
// Transform

func (t Transform) unit(container math.Extent2D) float32 {
	return min(container.Width(), container.Height()) / 100
}

// Frame returns the rectangle the map layer occupies within the
// container, in pixels. At 100% zoom and no offset the layer fills the
// container.
func (t Transform) Frame(container math.Extent2D) math.Extent2D {
	u := t.unit(container)
	p0 := [2]float32{container.P0[0] + t.Left*u, container.P0[1] + t.Top*u}
	size := [2]float32{container.Width() * t.Zoom / 100, container.Height() * t.Zoom / 100}
	return math.Extent2D{P0: p0, P1: math.Add2f(p0, size)}
}

// Apply maps a projected point, in [0, 100] on both axes, to a pixel
// position in the container.
func (t Transform) Apply(p [2]float32, container math.Extent2D) [2]float32 {
	f := t.Frame(container)
	return [2]float32{
		math.Lerp(p[0]/100, f.P0[0], f.P1[0]),
		math.Lerp(p[1]/100, f.P0[1], f.P1[1]),
	}
}

// Invert maps a pixel position in the container back to projected
// coordinates.
func (t Transform) Invert(px [2]float32, container math.Extent2D) [2]float32 {
	return math.Scale2f(t.Frame(container).Fraction(px), 100)
}

// LogValue lets a Transform be passed directly to the logger.
func (t Transform) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("zoom", float64(t.Zoom)),
		slog.Float64("top", float64(t.Top)),
		slog.Float64("left", float64(t.Left)),
		slog.Float64("stroke", float64(t.StrokeWidth)))
}
