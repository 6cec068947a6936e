package util

import (
	"runtime"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Max returns the larger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Nps computes nodes per second, treating a zero duration as one
// nanosecond so callers never divide by zero.
func Nps(nodes uint64, d time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (d.Nanoseconds() + 1))
}

// MemStat formats current heap usage for startup/diagnostic logging.
func MemStat() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return out.Sprintf("alloc=%d totalAlloc=%d heapObjects=%d numGC=%d",
		m.Alloc, m.TotalAlloc, m.HeapObjects, m.NumGC)
}
