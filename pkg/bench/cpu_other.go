//go:build !unix

package bench

// cpuSecondsOS falls back to wall-clock time on platforms where getrusage
// is unavailable. CPU-time mode is then equivalent to real-time mode.
func cpuSecondsOS() float64 {
	return nowSeconds()
}
