package kernel

import "time"

// Clock supplies the current time to entities that stamp their own
// mutations. Tests replace it with a fixed function.
type Clock func() time.Time

// SystemClock is the production clock. Timestamps are kept in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
