//go:build !tickclock

package timebase

import "math"

// AbsTime is a point in time, stored as whole seconds and a nanosecond
// remainder since the Unix epoch. The nanosecond field is always kept in
// [0, 1_000_000_000); every operation that could push it out of range
// renormalizes by carrying into the seconds field.
// AbsTime is a plain value: copy it freely, compare it with ==.
type AbsTime struct {
	Seconds     int64
	Nanoseconds int64
}

// RelTime is a signed duration in nanoseconds. Positive values lie in the
// future, negative values in the past.
type RelTime int64

const (
	// ticksPerSecond is the resolution of this representation: one tick is one nanosecond.
	ticksPerSecond = 1_000_000_000
	ticksPerMilli  = 1_000_000
)

// RelMax returns the largest representable RelTime. Callers use it to express
// "never" deadlines; Offset with RelMax still yields a time after the base.
func RelMax() RelTime {
	return math.MaxInt64
}

// Offset returns base + delta. The nanosecond component is renormalized into
// [0, 1_000_000_000), carrying overflow or underflow into the seconds.
func Offset(base AbsTime, delta RelTime) AbsTime {
	secs := base.Seconds + int64(delta)/ticksPerSecond
	nsec := base.Nanoseconds + int64(delta)%ticksPerSecond

	if nsec >= ticksPerSecond {
		secs++
		nsec -= ticksPerSecond
	} else if nsec < 0 {
		secs--
		nsec += ticksPerSecond
	}

	return AbsTime{Seconds: secs, Nanoseconds: nsec}
}

// Difference returns b - a in nanoseconds. It is anti-symmetric:
// Difference(a, b) == -Difference(b, a).
func Difference(a, b AbsTime) RelTime {
	return RelTime((b.Seconds-a.Seconds)*ticksPerSecond + (b.Nanoseconds - a.Nanoseconds))
}

// IsBefore reports whether a happens before b. Together with IsAfter and ==
// this is a total order, decided by seconds first and nanoseconds second.
func IsBefore(a, b AbsTime) bool {
	return a.Seconds < b.Seconds || (a.Seconds == b.Seconds && a.Nanoseconds < b.Nanoseconds)
}

// IsAfter reports whether a happens after b.
func IsAfter(a, b AbsTime) bool {
	return a.Seconds > b.Seconds || (a.Seconds == b.Seconds && a.Nanoseconds > b.Nanoseconds)
}

// IsZero reports whether t is the zero value, which Now returns as a sentinel
// if the underlying clock read fails.
func IsZero(t AbsTime) bool {
	return t == AbsTime{}
}
