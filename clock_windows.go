//go:build windows && !tickclock

package timebase

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32     = windows.NewLazySystemDLL("kernel32.dll")
	procPreciseTime = modkernel32.NewProc("GetSystemTimePreciseAsFileTime")
)

// Now returns the current wall-clock time via GetSystemTimePreciseAsFileTime
// (Windows 8 and later, ~100ns granularity). The wall clock may step backward
// when the system clock is adjusted.
// If the clock read fails, Now returns the zero AbsTime as a sentinel.
func Now() AbsTime {
	if err := procPreciseTime.Find(); err != nil {
		return AbsTime{}
	}
	var ft windows.Filetime
	procPreciseTime.Call(uintptr(unsafe.Pointer(&ft)))
	ns := ft.Nanoseconds()
	return AbsTime{Seconds: ns / ticksPerSecond, Nanoseconds: ns % ticksPerSecond}
}
