package bench

import "time"

// clockEpoch anchors nowSeconds; time.Since on it reads Go's monotonic clock.
var clockEpoch = time.Now()

// nowSeconds returns the elapsed wall-clock time, in seconds since package
// initialization, from a monotonic source. It is the Go analogue of the
// original's walltime.Now().
func nowSeconds() float64 {
	return time.Since(clockEpoch).Seconds()
}

// cpuSeconds returns the process's total CPU time (self plus children), in
// seconds. The actual measurement is OS-specific; see cpu_unix.go and
// cpu_other.go.
func cpuSeconds() float64 {
	return cpuSecondsOS()
}
