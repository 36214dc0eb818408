package gbce

import (
	"sync"
	"time"
)

// fakeClock returns a Clock frozen at start and a function advancing it.
// Window-based tests must never depend on the wall clock.
func fakeClock(start time.Time) (Clock, func(d time.Duration)) {
	var mu sync.Mutex
	now := start
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}
	return clock, advance
}

// epoch is an arbitrary fixed instant for deterministic tests.
var epoch = time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
