// cmd/starchart/main.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// starchart draws a fleet snapshot as an animated system map in the
// terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fleetdash/starchart/pkg/log"
	"github.com/fleetdash/starchart/pkg/starmap"
	"github.com/fleetdash/starchart/pkg/universe"
	"github.com/fleetdash/starchart/pkg/util"
	"github.com/fleetdash/starchart/pkg/viewport"

	"github.com/gdamore/tcell/v2"
	"github.com/goforj/godump"
)

var (
	fleetFile    = flag.String("fleet", "", "fleet snapshot to display (.json or .msgpack, optionally .zst compressed)")
	systemSymbol = flag.String("system", "", "system to show initially")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	configPath   = flag.String("config", "", "config file (default: starchart/config.json in the user config directory)")
	legacyLayout = flag.Bool("legacy-layout", false, "place ships and orbiting bodies as the old web dashboard did")
	tickPeriod   = flag.Duration("tick", starmap.DefaultTickPeriod, "ship animation period")
	dumpFrame    = flag.Bool("dump", false, "print the initial frame and exit rather than starting the viewer")
	rebase       = flag.Bool("rebase", false, "shift the snapshot's routes so that ships are moving now")
	demoSeed     = flag.Int64("demo", 0, "if no fleet is given, generate a demo fleet from this seed")
	demoOut      = flag.String("demo-out", "", "write the generated demo fleet to this file and exit")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if *configPath == "" {
		*configPath = configFilePath(lg)
	}
	config, err := LoadConfig(*configPath)
	if err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "%v; using the default configuration\n", err)
	}
	applyFlags(&config)

	var e util.ErrorLogger
	config.Validate(&e)
	if e.HaveErrors() {
		e.LogErrors(lg)
		fmt.Fprint(os.Stderr, e.String())
		os.Exit(1)
	}

	fleet, err := openFleet(*fleetFile, *demoSeed, lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *demoOut != "" {
		if err := fleet.Save(*demoOut); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *demoOut, err)
			os.Exit(1)
		}
		return
	}
	if *rebase {
		fleet.Rebase(time.Now())
	}

	e = util.ErrorLogger{}
	universe.Validate(fleet.Systems, fleet.Waypoints, &e)
	if e.HaveErrors() {
		lg.Warnf("%d problems found in the fleet's waypoints", len(e.Errors()))
		e.LogErrors(lg)
	}

	scene := starmap.NewScene(fleet.Directory(), config.LayoutOptions(), lg)
	scene.SetShips(fleet.Ships)
	system := initialSystem(config.System, fleet)

	if *dumpFrame {
		godump.Dump(scene.Frame(system, time.Now()))
		return
	}

	view := viewport.NewController(config.Viewport, lg)
	view.SetState(config.View)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	v := NewViewer(scene, newGraphPathfinder(fleet.Connections), view,
		starmap.NewClock(config.TickPeriod(), nil), system, lg)
	if err := v.Run(ctx, screen); err != nil {
		lg.Errorf("viewer: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	config.View = view.State()
	config.System = v.system
	if err := config.Save(*configPath); err != nil {
		lg.Errorf("%s: unable to save config: %v", *configPath, err)
	}
}

// applyFlags overrides config file settings with the flags that were
// given explicitly on the command line.
func applyFlags(c *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "system":
			c.System = *systemSymbol
		case "legacy-layout":
			c.LegacyLayout = *legacyLayout
		case "tick":
			c.TickMillis = int(*tickPeriod / time.Millisecond)
		}
	})
}

func openFleet(path string, seed int64, lg *log.Logger) (*universe.Fleet, error) {
	if path == "" {
		lg.Info("generating demo fleet", slog.Int64("seed", seed))
		return GenerateDemoFleet(seed, 6, 24, time.Now()), nil
	}

	f, err := universe.LoadFleet(path)
	if err != nil {
		return nil, err
	}
	lg.Info("loaded fleet", slog.String("path", path), slog.Int("systems", len(f.Systems)),
		slog.Int("waypoints", len(f.Waypoints)), slog.Int("ships", len(f.Ships)))
	return f, nil
}

// initialSystem returns the requested system if there is one and
// otherwise the system of the first ship.
func initialSystem(requested string, f *universe.Fleet) string {
	if requested != "" {
		return requested
	}
	for _, s := range f.Ships {
		if s.Nav.SystemSymbol != "" {
			return s.Nav.SystemSymbol
		}
	}
	if len(f.Systems) > 0 {
		return f.Systems[0].Symbol
	}
	return ""
}
