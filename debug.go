package overscroll

import (
	"fmt"
	"sync/atomic"
)

// Stats reports what a factory has done since it was created.
type Stats struct {
	// Compiles counts program compilations (at most one between resets).
	Compiles int
	// Created counts instances returned to callers.
	Created int64
	// Skipped counts calls that returned nil because the effect was empty.
	Skipped int64
}

func (s Stats) String() string {
	return fmt.Sprintf("compiles: %d | created: %d | skipped: %d", s.Compiles, s.Created, s.Skipped)
}

// factoryCounters holds the per-call counters shared by both factories.
type factoryCounters struct {
	created atomic.Int64
	skipped atomic.Int64
}

func (c *factoryCounters) stats(compiles int) Stats {
	return Stats{
		Compiles: compiles,
		Created:  c.created.Load(),
		Skipped:  c.skipped.Load(),
	}
}
