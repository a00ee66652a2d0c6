// pkg/viewport/input.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package viewport

type MouseButton int

const (
	MouseButtonPrimary MouseButton = iota
	MouseButtonSecondary
	MouseButtonTertiary
	MouseButtonCount
)

// Key is a viewport command; the front end decides which physical keys
// map to which command.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyZoomIn
	KeyZoomOut
	KeyReset
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyZoomIn:
		return "zoom-in"
	case KeyZoomOut:
		return "zoom-out"
	case KeyReset:
		return "reset"
	default:
		return "none"
	}
}

// MouseState tracks the pointer between events so that drags can be
// turned into pan deltas.
type MouseState struct {
	Pos  [2]float32
	Down [MouseButtonCount]bool
}

func (ms *MouseState) Dragging() bool {
	return ms.Down[MouseButtonPrimary]
}
