// cmd/starchart/viewer.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/fleetdash/starchart/pkg/log"
	"github.com/fleetdash/starchart/pkg/starmap"
	"github.com/fleetdash/starchart/pkg/universe"
	"github.com/fleetdash/starchart/pkg/viewport"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

var errQuit = errors.New("quit")

// Viewer is the interactive map. All of its state is owned by the
// goroutine running loop; the clock and the event poller only send to it.
type Viewer struct {
	scene      *starmap.Scene
	pathfinder universe.Pathfinder
	view       *viewport.Controller
	clock      *starmap.Clock
	lg         *log.Logger

	systems    []string
	system     string
	showRoutes bool
	routes     []starmap.RouteSegment
	routeErr   error

	buttons tcell.ButtonMask
	now     time.Time
}

func NewViewer(scene *starmap.Scene, pf universe.Pathfinder, view *viewport.Controller,
	clock *starmap.Clock, system string, lg *log.Logger) *Viewer {
	v := &Viewer{
		scene:      scene,
		pathfinder: pf,
		view:       view,
		clock:      clock,
		lg:         lg,
		systems:    scene.Directory().SystemSymbols(),
		system:     system,
	}
	if !slices.Contains(v.systems, system) && len(v.systems) > 0 {
		v.system = v.systems[0]
	}
	return v
}

// Run takes over the screen until the user quits or ctx is canceled.
func (v *Viewer) Run(ctx context.Context, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))

	ticks := make(chan time.Time, 1)
	events := make(chan tcell.Event)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return v.clock.Run(ctx, func(now time.Time) {
			// Drop the tick if the last one hasn't been drawn yet.
			select {
			case ticks <- now:
			default:
			}
		})
	})
	eg.Go(func() error {
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		defer screen.Fini()
		return v.loop(ctx, screen, ticks, events)
	})

	err := eg.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (v *Viewer) loop(ctx context.Context, screen tcell.Screen, ticks <-chan time.Time, events <-chan tcell.Event) error {
	v.now = time.Now()
	v.lg.Info("viewer started", slog.String("system", v.system), slog.Duration("tick", v.clock.Period()))

	for {
		v.render(screen)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case v.now = <-ticks:
		case ev := <-events:
			if quit := v.handleEvent(ctx, ev, screen); quit {
				v.lg.Info("viewer exiting", slog.Any("viewport", v.view.Transform()))
				return errQuit
			}
		}
	}
}

func (v *Viewer) render(screen tcell.Screen) {
	f := v.scene.Frame(v.system, v.now)
	tr := v.view.Transform()

	status := fmt.Sprintf(" %s  zoom %.0f%%  ships %d  bodies %d", v.system, tr.Zoom, len(f.Ships), len(f.Bodies))
	if n := len(f.Diagnostics); n > 0 {
		status += fmt.Sprintf("  (%d warnings)", n)
	}
	if v.showRoutes {
		if v.routeErr != nil {
			status += "  routes: " + v.routeErr.Error()
		} else {
			status += fmt.Sprintf("  routes %d", len(v.routes))
		}
	}
	status += "  [arrows] pan [+/-] zoom [0] reset [tab] system [r] routes [q] quit"

	r := renderer{frame: f, routes: v.routes, transform: tr, status: status}
	r.draw(screen)
	screen.Show()
}

// handleEvent applies one input event and reports whether to quit.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event, screen tcell.Screen) bool {
	w, h := screen.Size()
	container := mapContainer(w, h)

	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			v.view.Key(viewport.KeyUp)
		case tcell.KeyDown:
			v.view.Key(viewport.KeyDown)
		case tcell.KeyLeft:
			v.view.Key(viewport.KeyLeft)
		case tcell.KeyRight:
			v.view.Key(viewport.KeyRight)
		case tcell.KeyTab:
			v.nextSystem(ctx)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case '+', '=':
				v.view.Key(viewport.KeyZoomIn)
			case '-', '_':
				v.view.Key(viewport.KeyZoomOut)
			case '0':
				v.view.Key(viewport.KeyReset)
			case 'r':
				v.showRoutes = !v.showRoutes
				v.updateRoutes(ctx)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := pointerPixel(x, y)
		buttons := ev.Buttons()

		switch {
		case buttons&tcell.WheelUp != 0:
			v.view.Wheel(-1, p, v.view.Transform().Frame(container), container)
		case buttons&tcell.WheelDown != 0:
			v.view.Wheel(1, p, v.view.Transform().Frame(container), container)
		}

		pressed, released := buttons&^v.buttons, v.buttons&^buttons
		if pressed&tcell.Button1 != 0 {
			v.view.PointerDown(p, viewport.MouseButtonPrimary)
		}
		v.view.PointerMove(p, container)
		if released&tcell.Button1 != 0 {
			v.view.PointerUp(p, viewport.MouseButtonPrimary)
		}
		v.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	}
	return false
}

func (v *Viewer) nextSystem(ctx context.Context) {
	if len(v.systems) == 0 {
		return
	}
	i := slices.Index(v.systems, v.system)
	v.system = v.systems[(i+1)%len(v.systems)]
	v.view.Reset()
	v.updateRoutes(ctx)
	v.lg.Debug("switched system", slog.String("system", v.system))
}

// updateRoutes recomputes the route overlay: the hops available from
// every waypoint in the current system that has a ship parked at it.
func (v *Viewer) updateRoutes(ctx context.Context) {
	v.routes, v.routeErr = nil, nil
	if !v.showRoutes || v.pathfinder == nil {
		return
	}

	seen := make(map[string]bool)
	for _, s := range v.scene.Ships() {
		nav := s.Nav
		if nav.SystemSymbol != v.system || nav.Status == universe.NavInTransit || seen[nav.WaypointSymbol] {
			continue
		}
		seen[nav.WaypointSymbol] = true

		q := universe.PathQuery{Origin: nav.WaypointSymbol, FlightMode: nav.FlightMode}
		segs, _, err := v.scene.Routes(ctx, v.pathfinder, q, v.system)
		if err != nil {
			v.lg.Debug("route overlay", slog.Any("error", err))
			v.routeErr = err
			continue
		}
		v.routes = append(v.routes, segs...)
	}
}
