package schedule

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the slice of clockwork this package needs. Production code
// uses Real(); tests substitute clockwork's fake clock.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) clockwork.Timer
}

// Real returns the system clock.
func Real() Clock { return clockwork.NewRealClock() }
