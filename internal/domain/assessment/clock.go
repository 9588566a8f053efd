package assessment

import "time"

// Clock abstracts "now" so scheduler tests can pin the calendar instead of
// waiting on real timers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
