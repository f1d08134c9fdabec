package bench

import "sync"

// kRangeMultiplier is the multiplier used to space out Range's intermediate
// values. Mirrors the original's kRangeMultiplier.
const kRangeMultiplier = 8

// threadRangeMultiplier is the multiplier used to space out ThreadRange's
// intermediate thread counts.
const threadRangeMultiplier = 2

// perCPUMarker is the sentinel thread count resolved against runtime.NumCPU
// at expansion time, never at registration time.
const perCPUMarker = -1

// Family is a registered (name, routine, axes) triple. It is mutated only
// during registration, through its Handle, and becomes immutable once
// enumeration (FindBenchmarks) begins.
type Family struct {
	name string
	fn   func(*State)

	rangeX []int
	rangeY []int

	threadCounts []int

	index int // position in the registry, stable until Deregister
}

// multithreaded reports whether this family had an explicit thread-count
// axis (as opposed to the implicit {1}).
func (f *Family) multithreaded() bool {
	return len(f.threadCounts) > 0
}

var (
	registryMu sync.Mutex
	families   []*Family // nil slots mark deregistered families
)

// Handle is returned by Register and lets the caller configure a Family's
// parameter and thread-count axes. Every mutator returns the Handle itself
// so calls can be chained, e.g.:
//
//	bench.Register("Sort", benchmarkSort).Range(1, 1<<20).ThreadRange(1, 8)
type Handle struct {
	f *Family
}

// Register adds fn as a new benchmark family named name and returns a
// Handle for configuring its axes. name is matched against
// benchmark-filter, not the decorated instance names Range/ArgPair etc.
// produce.
func Register(name string, fn func(*State)) *Handle {
	registryMu.Lock()
	defer registryMu.Unlock()

	f := &Family{name: name, fn: fn, index: len(families)}
	families = append(families, f)
	return &Handle{f: f}
}

// Deregister removes h's family from the registry. Its slot is nilled, not
// removed, so that other families' indices stay stable while enumeration is
// in progress; trailing nil slots are trimmed as a convenience.
func (h *Handle) Deregister() {
	registryMu.Lock()
	defer registryMu.Unlock()

	families[h.f.index] = nil
	for len(families) > 0 && families[len(families)-1] == nil {
		families = families[:len(families)-1]
	}
}

// Arg adds a single first-axis value.
func (h *Handle) Arg(x int) *Handle {
	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.rangeX = append(h.f.rangeX, x)
	return h
}

// Range adds a geometric range [lo, hi] with multiplier 8: lo, then powers
// of 8 strictly between lo and hi, then hi if distinct from lo.
func (h *Handle) Range(lo, hi int) *Handle {
	values := addRange(lo, hi, kRangeMultiplier)

	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.rangeX = append(h.f.rangeX, values...)
	return h
}

// DenseRange adds every integer in [lo, hi] as a first-axis value.
func (h *Handle) DenseRange(lo, hi int) *Handle {
	if lo < 0 || hi < lo {
		panic("bench: DenseRange requires 0 <= lo <= hi")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	for x := lo; x <= hi; x++ {
		h.f.rangeX = append(h.f.rangeX, x)
	}
	return h
}

// ArgPair adds a single (first-axis, second-axis) value pair.
func (h *Handle) ArgPair(x, y int) *Handle {
	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.rangeX = append(h.f.rangeX, x)
	h.f.rangeY = append(h.f.rangeY, y)
	return h
}

// RangePair adds the cross-spacing of two geometric ranges as parallel
// first-axis/second-axis value lists.
func (h *Handle) RangePair(lo1, hi1, lo2, hi2 int) *Handle {
	x := addRange(lo1, hi1, kRangeMultiplier)
	y := addRange(lo2, hi2, kRangeMultiplier)

	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.rangeX = append(h.f.rangeX, x...)
	h.f.rangeY = append(h.f.rangeY, y...)
	return h
}

// Apply runs fn with this Handle, letting registration-time helpers share
// argument-building logic across families.
func (h *Handle) Apply(fn func(*Handle)) *Handle {
	fn(h)
	return h
}

// Threads fixes a single thread count for this family.
func (h *Handle) Threads(n int) *Handle {
	if n <= 0 {
		panic("bench: Threads requires a positive thread count")
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.threadCounts = append(h.f.threadCounts, n)
	return h
}

// ThreadRange adds a geometric range of thread counts with multiplier 2.
func (h *Handle) ThreadRange(lo, hi int) *Handle {
	if lo <= 0 || hi < lo {
		panic("bench: ThreadRange requires 0 < lo <= hi")
	}
	values := addRange(lo, hi, threadRangeMultiplier)

	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.threadCounts = append(h.f.threadCounts, values...)
	return h
}

// ThreadPerCPU adds the "one worker per logical CPU" marker, resolved
// against runtime.NumCPU at instance-expansion time.
func (h *Handle) ThreadPerCPU() *Handle {
	registryMu.Lock()
	defer registryMu.Unlock()
	h.f.threadCounts = append(h.f.threadCounts, perCPUMarker)
	return h
}

// addRange implements the spec's geometric-expansion invariant:
// {lo} ∪ {mult^i : mult^i > lo ∧ mult^i < hi} ∪ {hi if hi != lo}, ascending.
func addRange(lo, hi, mult int) []int {
	if lo < 0 || hi < lo {
		panic("bench: range requires 0 <= lo <= hi")
	}

	dst := []int{lo}
	for i := 1; i < int(^uint(0)>>1)/mult; i *= mult {
		if i >= hi {
			break
		}
		if i > lo {
			dst = append(dst, i)
		}
	}
	if hi != lo {
		dst = append(dst, hi)
	}
	return dst
}
