//go:build (linux || darwin) && !tickclock

package timebase

import "golang.org/x/sys/unix"

// Now returns the current wall-clock time read via clock_gettime(2) with
// CLOCK_REALTIME. The wall clock may step backward when the system clock is
// adjusted; callers needing strict monotonic ordering must not rely on
// consecutive Now values being non-decreasing.
// If the clock read fails, Now returns the zero AbsTime as a sentinel.
func Now() AbsTime {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return AbsTime{}
	}
	return AbsTime{Seconds: int64(ts.Sec), Nanoseconds: int64(ts.Nsec)}
}
