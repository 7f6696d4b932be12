//go:build !linux && !darwin && !windows && !tickclock

package timebase

import "time"

// Now returns the current wall-clock time from the Go runtime's clock. This
// is the fallback source for platforms without a dedicated clock file; the
// wall clock may step backward when the system clock is adjusted.
func Now() AbsTime {
	t := time.Now()
	return AbsTime{Seconds: t.Unix(), Nanoseconds: int64(t.Nanosecond())}
}
