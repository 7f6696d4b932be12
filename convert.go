package timebase

// RelFromSeconds converts a duration in seconds to a RelTime, scaling by the
// active representation's ticks per second and truncating toward zero.
func RelFromSeconds(seconds float64) RelTime {
	return RelTime(seconds * ticksPerSecond)
}

// RelToSeconds converts a RelTime to seconds as a float64.
func RelToSeconds(delta RelTime) float64 {
	return float64(delta) / ticksPerSecond
}

// RelFromMillis converts a duration in milliseconds to a RelTime.
func RelFromMillis(milliseconds uint32) RelTime {
	return RelTime(int64(milliseconds) * ticksPerMilli)
}

// RelToMillis converts a RelTime to whole milliseconds, truncating toward
// zero. The input domain is non-negative deltas; a negative delta wraps in
// the unsigned conversion.
func RelToMillis(delta RelTime) uint32 {
	return uint32(int64(delta) / ticksPerMilli)
}
