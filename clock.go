package gbce

import "time"

// Clock returns the current instant.
//
// The exchange never reads ambient time: the clock is injected at
// construction so that trade timestamps and window cutoffs are
// deterministic under test. time.Now is the production Clock.
type Clock func() time.Time
