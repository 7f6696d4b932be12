// Package timebase provides a platform-independent abstraction for absolute
// and relative time values: an AbsTime point in time, a signed RelTime
// duration, and rollover-aware arithmetic, comparison, and unit conversion
// over them.
//
// Exactly one representation of the two types is compiled into a binary.
// The default is a POSIX-style seconds+nanoseconds pair with nanosecond
// resolution; building with the "tickclock" tag swaps in a wrapping 32-bit
// millisecond tick counter modeling an embedded RTC. The function surface is
// identical under both, so callers never depend on the layout.
//
// All operations are pure value arithmetic with no allocation and no shared
// state; concurrent use from multiple goroutines needs no coordination.
package timebase

const iterationsForCalibration = 1_000_000

var (
	// precision holds the measured clock step of Now() on the runtime system, in ticks.
	precision = RelTime(-1)
)

// GetClockPrecision returns the smallest nonzero step observed between
// consecutive Now calls, in ticks of the active representation. The first
// call calibrates and caches the result; subsequent calls return the cached
// value. Callers polling a deadline can use it to size their poll interval.
func GetClockPrecision() RelTime {
	if precision == RelTime(-1) {
		precision = calcMinClockStep()
	}
	return precision
}

func calcMinClockStep() RelTime {
	var minDiff = RelMax() // initial large value
	for range iterationsForCalibration {
		t1 := Now()
		t2 := Now()
		diff := Difference(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
