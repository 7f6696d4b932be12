package main

import (
	"fmt"
	"time"

	"github.com/timebase-go/timebase"
)

func main() {
	start := timebase.Now()
	deadline := timebase.Offset(start, timebase.RelFromMillis(250))

	for timebase.IsBefore(timebase.Now(), deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	elapsed := timebase.Difference(start, timebase.Now())
	fmt.Printf("deadline reached after %.3f s (%d ms)\n",
		timebase.RelToSeconds(elapsed), timebase.RelToMillis(elapsed))

	never := timebase.Offset(timebase.Now(), timebase.RelMax())
	fmt.Printf("'never' deadline still pending: %v\n", timebase.IsBefore(timebase.Now(), never))
}
