package bench

import (
	"fmt"
	"runtime"
)

// noRange marks an axis as unset for a given instance.
const noRange = -1 << 31

// instance is a concrete (family, axis values, thread count) configuration.
// Built fresh per run and discarded after; see spec's Instance definition.
type instance struct {
	name      string
	family    *Family
	rangeX    int
	rangeXSet bool
	rangeY    int
	rangeYSet bool
	threads   int
}

// expandFamily enumerates the cross product of f's first-axis values (or
// the single sentinel "none"), second-axis values (or "none"), and thread
// counts (or {1}).
func expandFamily(f *Family) []instance {
	xs := f.rangeX
	if len(xs) == 0 {
		xs = []int{noRange}
	}
	ys := f.rangeY
	if len(ys) == 0 {
		ys = []int{noRange}
	}

	var out []instance
	if len(f.rangeY) == 0 {
		for _, x := range xs {
			out = append(out, createInstances(f, x, noRange)...)
		}
	} else {
		for _, x := range xs {
			for _, y := range ys {
				out = append(out, createInstances(f, x, y)...)
			}
		}
	}
	return out
}

// createInstances builds one instance per thread-count value for family f
// at the given (possibly noRange) axis values.
func createInstances(f *Family, x, y int) []instance {
	threadCounts := f.threadCounts
	if len(threadCounts) == 0 {
		threadCounts = []int{1}
	}

	isMultithreaded := f.multithreaded()

	out := make([]instance, 0, len(threadCounts))
	for _, t := range threadCounts {
		numThreads := t
		if numThreads == perCPUMarker {
			numThreads = runtime.NumCPU()
		}

		inst := instance{name: f.name, family: f, threads: numThreads, rangeX: noRange, rangeY: noRange}
		if x != noRange {
			inst.rangeX, inst.rangeXSet = x, true
			inst.name += "/" + formatSI(float64(x), 1.0, 1024, 0)
		}
		if y != noRange {
			inst.rangeY, inst.rangeYSet = y, true
			inst.name += "/" + formatSI(float64(y), 1.0, 1024, 0)
		}
		if isMultithreaded {
			inst.name += fmt.Sprintf("/threads:%d", numThreads)
		}

		out = append(out, inst)
	}
	return out
}
