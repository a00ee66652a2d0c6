// cmd/starchart/config.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fleetdash/starchart/pkg/log"
	"github.com/fleetdash/starchart/pkg/starmap"
	"github.com/fleetdash/starchart/pkg/util"
	"github.com/fleetdash/starchart/pkg/viewport"
)

// Config is persisted between runs in the user's config directory.
type Config struct {
	Viewport     viewport.Config `json:"viewport"`
	View         viewport.State  `json:"view"`
	TickMillis   int             `json:"tick_ms"`
	LegacyLayout bool            `json:"legacy_layout"`
	System       string          `json:"system,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Viewport:   viewport.DefaultConfig(),
		View:       viewport.DefaultState(),
		TickMillis: int(starmap.DefaultTickPeriod / time.Millisecond),
	}
}

func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

func (c Config) LayoutOptions() starmap.Options {
	return util.Select(c.LegacyLayout, starmap.LegacyOptions(), starmap.DefaultOptions())
}

func (c Config) Validate(e *util.ErrorLogger) {
	c.Viewport.Validate(e)
	if c.TickMillis <= 0 {
		e.ErrorString("tick_ms %d must be positive", c.TickMillis)
	}
}

func configFilePath(lg *log.Logger) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		lg.Errorf("Unable to find user config dir: %v", err)
		dir = "."
	}
	return filepath.Join(dir, "starchart", "config.json")
}

// LoadConfig reads the config file at path. A missing file isn't an
// error; the defaults are returned. Fields absent from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return c, err
	}

	if err := util.UnmarshalJSON(b, &c); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(c)
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Encode(f)
}
