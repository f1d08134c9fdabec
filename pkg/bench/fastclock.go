package bench

import (
	"sync/atomic"
	"time"
)

// ClockType selects the source a fastClock samples.
type ClockType int

const (
	// RealTime samples wall-clock time.
	RealTime ClockType = iota
	// CPUTime samples process CPU time (self plus children).
	CPUTime
)

// fastClockTick is the background refresh period. It bounds the skew
// between HasReached and the true clock, per spec: "Tolerated skew ...
// is bounded by the ticker period (~1 ms)."
const fastClockTick = time.Millisecond

// fastClock is a coarse, cheaply-queryable approximation of the current
// clock. A background goroutine refreshes an atomic microsecond counter
// every fastClockTick so that the hot-path check in State.KeepRunning is a
// single atomic load, never a syscall.
type fastClock struct {
	typ         atomic.Int32
	approxMicro atomic.Int64

	done chan struct{}
}

// newFastClock starts the background refresh goroutine and returns a ready
// fastClock sampling typ.
func newFastClock(typ ClockType) *fastClock {
	c := &fastClock{done: make(chan struct{})}
	c.typ.Store(int32(typ))
	c.approxMicro.Store(c.nowMicros())
	go c.refreshLoop()
	return c
}

// refreshLoop is the background ticker. It exits once Stop closes c.done.
func (c *fastClock) refreshLoop() {
	ticker := time.NewTicker(fastClockTick)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.approxMicro.Store(c.nowMicros())
		}
	}
}

// Stop signals the background goroutine to exit. It returns without
// waiting for the goroutine to finish. Safe to call once.
func (c *fastClock) Stop() {
	close(c.done)
}

// HasReached returns true if the current time is guaranteed to be at or
// past whenMicros. Cheap enough to call on every iteration.
func (c *fastClock) HasReached(whenMicros int64) bool {
	return c.approxMicro.Load() >= whenMicros
}

// NowMicros is an exact read of the underlying clock source. Used only at
// interval boundaries, where precision matters more than speed.
func (c *fastClock) NowMicros() int64 {
	return c.nowMicros()
}

func (c *fastClock) nowMicros() int64 {
	var seconds float64
	switch ClockType(c.typ.Load()) {
	case RealTime:
		seconds = nowSeconds()
	case CPUTime:
		seconds = cpuSeconds()
	}
	return int64(seconds * 1e6)
}

// InitType switches the sampled source and immediately resamples, resetting
// the cached value. Used by the last-starter worker, since the clock type
// may change between construction and first iteration (UseRealTime may be
// called from within the user routine's setup).
func (c *fastClock) InitType(typ ClockType) {
	c.typ.Store(int32(typ))
	c.approxMicro.Store(c.nowMicros())
}
