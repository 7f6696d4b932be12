//go:build tickclock

package timebase

import (
	"math"
	"time"
)

// AbsTime is a free-running millisecond tick count, modeling an embedded RTC
// counter register (1 tick = 1 ms). The counter wraps at 2^32 ticks, roughly
// every 49.7 days; wrapping is normal operation, not an error.
// AbsTime is a plain value: copy it freely, compare it with ==.
type AbsTime uint32

// RelTime is a signed duration in ticks. Positive values lie in the future,
// negative values in the past.
type RelTime int32

const (
	// ticksPerSecond is the resolution of this representation: one tick is one millisecond.
	ticksPerSecond = 1_000
	ticksPerMilli  = 1
)

// Now returns the current tick count. On hosted platforms the counter is
// derived from the system clock's millisecond reading truncated to 32 bits;
// a hardware port replaces this with the RTC count register read.
func Now() AbsTime {
	return AbsTime(time.Now().UnixMilli())
}

// RelMax returns the largest representable RelTime: half the counter range
// minus one tick, the farthest future offset that still orders as "after"
// under the half-range comparison rule.
func RelMax() RelTime {
	return math.MaxInt32
}

// Offset returns base + delta, wrapping modulo the counter width.
func Offset(base AbsTime, delta RelTime) AbsTime {
	return base + AbsTime(delta)
}

// Difference returns b - a as a modular subtraction. The result is the true
// separation whenever it is shorter than half the counter range, even across
// a rollover of the counter.
func Difference(a, b AbsTime) RelTime {
	return RelTime(b - a)
}

// IsBefore reports whether a happens before b. Ordering on a wrapping counter
// is only meaningful for pairs separated by less than half the counter range;
// callers must bound their comparisons to intervals shorter than that.
func IsBefore(a, b AbsTime) bool {
	return RelTime(b-a) > 0
}

// IsAfter reports whether a happens after b, under the same half-range rule
// as IsBefore.
func IsAfter(a, b AbsTime) bool {
	return RelTime(b-a) < 0
}

// IsZero reports whether t is the zero tick.
func IsZero(t AbsTime) bool {
	return t == 0
}
