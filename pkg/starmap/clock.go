// pkg/starmap/clock.go
// Copyright(c) 2024-2026 starchart contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package starmap

import (
	"context"
	"sync"
	"time"
)

const DefaultTickPeriod = 100 * time.Millisecond

type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time { return time.Now() }

// Clock drives ship animation: it calls its tick function periodically
// with the current time, independent of how often the roster itself is
// refreshed. The time is read fresh on every tick rather than
// accumulated, so a late tick simply shows ships further along.
type Clock struct {
	period time.Duration
	time   TimeSource
}

func NewClock(period time.Duration, ts TimeSource) *Clock {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	if ts == nil {
		ts = SystemTime{}
	}
	return &Clock{period: period, time: ts}
}

func (c *Clock) Period() time.Duration { return c.period }

// Run calls tick every period until ctx is canceled, then returns
// ctx.Err(). tick runs on the caller's goroutine.
func (c *Clock) Run(ctx context.Context, tick func(now time.Time)) error {
	t := time.NewTicker(c.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			tick(c.time.Now())
		}
	}
}

// Start runs the clock on its own goroutine. The returned stop function
// cancels it and waits until no further ticks can happen; it may be
// called more than once.
func (c *Clock) Start(ctx context.Context, tick func(now time.Time)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Run(ctx, tick)
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}
