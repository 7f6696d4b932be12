//go:build !tickclock

package timebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelFromSeconds(t *testing.T) {
	assert.Equal(t, RelTime(1_500_000_000), RelFromSeconds(1.5))
	assert.Equal(t, RelTime(-1_500_000_000), RelFromSeconds(-1.5))
	assert.Equal(t, RelTime(0), RelFromSeconds(0))
}

func TestRelToSeconds(t *testing.T) {
	assert.Equal(t, 1.5, RelToSeconds(1_500_000_000))
	assert.Equal(t, -1.5, RelToSeconds(-1_500_000_000))
	assert.Equal(t, 0.0, RelToSeconds(0))
}

func TestRelFromSecondsTruncatesTowardZero(t *testing.T) {
	// 1.9 ns worth of seconds truncates to 1 tick, not 2; same magnitude for negatives
	assert.Equal(t, RelTime(1), RelFromSeconds(1.9e-9))
	assert.Equal(t, RelTime(-1), RelFromSeconds(-1.9e-9))
}

func TestRelSecondsRoundTrip(t *testing.T) {
	rng := newDPRNG(0x1234567890ABCDEF)
	for i := range 100_000 {
		x := rng.float64() * 1000
		if rng.uint64()&1 == 0 {
			x = -x
		}
		got := RelToSeconds(RelFromSeconds(x))
		// truncation loses at most one tick
		assert.InDelta(t, x, got, 2.0/ticksPerSecond, "round trip diverged in round %d", i)
	}
}

func TestRelFromMillis(t *testing.T) {
	assert.Equal(t, RelTime(1_500_000_000), RelFromMillis(1500))
	assert.Equal(t, RelTime(0), RelFromMillis(0))
}

func TestRelToMillis(t *testing.T) {
	assert.Equal(t, uint32(1500), RelToMillis(1_500_000_000))
	assert.Equal(t, uint32(0), RelToMillis(0))
	// sub-millisecond remainders truncate
	assert.Equal(t, uint32(1500), RelToMillis(1_500_999_999))
}

func TestRelMillisRoundTrip(t *testing.T) {
	rng := newDPRNG(0x1234567890ABCDEF)
	for i := range 100_000 {
		n := uint32(rng.uint64())
		assert.True(t, RelToMillis(RelFromMillis(n)) == n, "millis round trip broke for %d in round %d", n, i)
	}
}

func TestMillisSecondsAgree(t *testing.T) {
	assert.Equal(t, RelFromSeconds(1.5), RelFromMillis(1500))
}
