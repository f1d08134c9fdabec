package bench

// State is the object a user routine interacts with. It exposes the
// KeepRunning predicate, pause/resume, processed-byte/item counters, a
// label setter, and the instance's current parameter values.
//
// A State is owned by exactly one worker goroutine for the lifetime of one
// instance execution; it is never shared.
type State struct {
	threadIndex int
	repetition  int // count of completed (non-continuation) intervals

	clock  *fastClock
	shared *sharedRunState
	cfg    *runConfig
	inst   *instance

	phase phase

	iterations      int64
	totalIterations int64

	intervalMicros int64
	deadlineMicros int64

	pauseMicros      int64
	startPauseMicros int64

	startCPUSeconds  float64
	startTimeSeconds float64

	isContinuation bool
	stats          threadStats
}

func newState(clock *fastClock, shared *sharedRunState, cfg *runConfig, inst *instance, threadIndex int) *State {
	return &State{
		threadIndex:    threadIndex,
		clock:          clock,
		shared:         shared,
		cfg:            cfg,
		inst:           inst,
		phase:          phaseInitial,
		intervalMicros: int64(1e6 * cfg.minTime / float64(cfg.repetitions)),
	}
}

// KeepRunning is the user routine's inner-loop predicate. It returns true
// to execute another iteration and returns false exactly once, to
// terminate the routine.
func (s *State) KeepRunning() bool {
	// Fast path: single atomic load and compare, no synchronization.
	if !s.clock.HasReached(s.deadlineMicros + s.pauseMicros) {
		s.iterations++
		return true
	}

	switch s.phase {
	case phaseInitial:
		return s.startRunning()
	case phaseRunning:
		return s.finishInterval()
	case phaseStopping:
		return s.maybeStop()
	default:
		panic("bench: KeepRunning called in phase " + s.phase.String())
	}
}

// PauseTiming records the start of a paused interval within the user
// routine. Pauses must be balanced with ResumeTiming; the engine does not
// verify this, beyond the fatal "pauseTime < realAccumulated" check at
// interval close.
func (s *State) PauseTiming() {
	s.startPauseMicros = microsNow(RealTime)
}

// ResumeTiming adds the elapsed paused duration to this worker's pause
// accumulator. Multiple pause/resume cycles accumulate.
func (s *State) ResumeTiming() {
	s.pauseMicros += microsNow(RealTime) - s.startPauseMicros
}

// UseRealTime requests that this instance measure real (wall-clock) time
// rather than CPU time. It only has an effect if called before this
// worker's first KeepRunning call returns from phaseInitial; the decision
// is latched by whichever worker is the last to reach the start barrier.
func (s *State) UseRealTime() {
	s.shared.mu.Lock()
	s.shared.useRealTime = true
	s.shared.mu.Unlock()
}

// SetBytesProcessed records the number of bytes processed by this worker's
// run, for bytes/second reporting. Legal only after the user loop exits.
func (s *State) SetBytesProcessed(n int64) {
	if s.phase != phaseStopped {
		panic("bench: SetBytesProcessed called before the loop finished")
	}
	s.stats.bytesProcessed = n
}

// SetItemsProcessed records the number of logical items processed by this
// worker's run, for items/second reporting. Legal only after the user loop
// exits.
func (s *State) SetItemsProcessed(n int64) {
	if s.phase != phaseStopped {
		panic("bench: SetItemsProcessed called before the loop finished")
	}
	s.stats.itemsProcessed = n
}

// SetLabel attaches a free-form label to the instance's runs. Legal only
// after the user loop exits. The label is shared by every worker of the
// instance: each call replaces it, so when workers set different labels
// the last call wins.
func (s *State) SetLabel(label string) {
	if s.phase != phaseStopped {
		panic("bench: SetLabel called before the loop finished")
	}
	s.shared.mu.Lock()
	s.shared.label = label
	s.shared.mu.Unlock()
}

// RangeX returns the instance's first-axis value. Panics if the family was
// not registered with an Arg/Range/ArgPair/RangePair axis.
func (s *State) RangeX() int {
	if !s.inst.rangeXSet {
		panic("bench: RangeX called but no first-axis value was registered")
	}
	return s.inst.rangeX
}

// RangeY returns the instance's second-axis value. Panics if the family was
// not registered with an ArgPair/RangePair axis.
func (s *State) RangeY() int {
	if !s.inst.rangeYSet {
		panic("bench: RangeY called but no second-axis value was registered")
	}
	return s.inst.rangeY
}

// Threads returns the number of concurrent workers running this instance.
func (s *State) Threads() int {
	return s.shared.threads
}

// ThreadIndex returns this worker's index in [0, Threads()).
func (s *State) ThreadIndex() int {
	return s.threadIndex
}

func microsNow(typ ClockType) int64 {
	switch typ {
	case CPUTime:
		return int64(cpuSeconds() * 1e6)
	default:
		return int64(nowSeconds() * 1e6)
	}
}

// startRunning implements phaseInitial -> phaseStarting -> phaseRunning.
// The worker whose increment makes starting == threads is the "last
// starter": it is the only one to (re)initialize the fast clock, and it
// wakes every other worker waiting on the same barrier.
func (s *State) startRunning() bool {
	s.shared.mu.Lock()
	s.phase = phaseStarting
	s.isContinuation = false
	s.shared.starting++
	if s.shared.starting == s.shared.threads {
		typ := CPUTime
		if s.shared.useRealTime {
			typ = RealTime
		}
		s.clock.InitType(typ)
		s.shared.cond.Broadcast()
	} else {
		for s.shared.starting != s.shared.threads {
			s.shared.cond.Wait()
		}
	}
	s.phase = phaseRunning
	s.shared.mu.Unlock()

	s.newInterval()
	return true
}

// newInterval opens a fresh measurement window. On a continuation (the
// interval was too short and its duration just doubled), iteration and
// pause counters are NOT reset, per spec: "iterations/pauses carry zero
// start effect" so the eventual RunData covers the whole extended interval.
func (s *State) newInterval() {
	s.deadlineMicros = s.clock.NowMicros() + s.intervalMicros
	if !s.isContinuation {
		s.iterations = 0
		s.pauseMicros = 0
		s.startCPUSeconds = cpuSeconds()
		s.startTimeSeconds = nowSeconds()
	}
}

// finishInterval implements phaseRunning -> phaseRunning|phaseStopping.
func (s *State) finishInterval() bool {
	if s.iterations < s.cfg.minIters/int64(s.cfg.repetitions) && s.intervalMicros < 5_000_000 {
		s.intervalMicros *= 2
		s.isContinuation = true
		s.newInterval()
		return true
	}

	accumulated := nowSeconds() - s.startTimeSeconds
	pauseSeconds := float64(s.pauseMicros) / 1e6
	overhead := 0.0
	if s.cfg.compensateOverhead {
		overhead = s.cfg.overheadPerIter * float64(s.iterations)
	}
	if pauseSeconds+overhead > accumulated {
		// Gross pause/overhead imbalance; the spec treats this as a
		// fatal assertion rather than reporting a negative duration.
		panic("bench: pause time exceeds accumulated interval time")
	}

	data := RunData{
		ThreadIndex: s.threadIndex,
		Iterations:  s.iterations,
		RealTime:    accumulated - pauseSeconds - overhead,
		CPUTime:     cpuSeconds() - s.startCPUSeconds,
	}
	s.totalIterations += s.iterations

	var keepGoing bool
	s.shared.mu.Lock()
	s.shared.setRun(s.threadIndex, s.repetition, data)
	s.repetition++
	keepGoing = s.runAnotherInterval()
	if !keepGoing {
		s.shared.stopping++
		if s.shared.stopping < s.shared.threads {
			s.phase = phaseStopping
			keepGoing = true
		} else {
			s.phase = phaseStopped
			s.shared.cond.Broadcast()
		}
	}
	s.shared.mu.Unlock()

	if s.phase == phaseRunning {
		s.isContinuation = false
		s.newInterval()
	}
	return keepGoing
}

// runAnotherInterval decides whether this worker should run another
// interval. Called under s.shared.mu. The repetitions check counts this
// worker's own completed (non-continuation) runs, not a cross-worker
// total -- see DESIGN.md's note on the "per-thread vs. shared repetitions
// counter" open question.
func (s *State) runAnotherInterval() bool {
	if s.totalIterations < s.cfg.minIters {
		return true
	}
	if s.totalIterations > s.cfg.maxIters {
		return false
	}
	if s.repetition >= s.cfg.repetitions {
		return false
	}
	return true
}

// maybeStop implements phaseStopping -> phaseStopping|phaseStopped. A
// worker that finished before its peers keeps calling its user routine
// (without recording further RunData) to present a representative
// concurrent load, until every worker has stopped.
func (s *State) maybeStop() bool {
	s.shared.mu.Lock()
	defer s.shared.mu.Unlock()

	if s.shared.stopping < s.shared.threads {
		return true
	}
	s.phase = phaseStopped
	return false
}

// run executes the family's routine to completion for this worker, then
// merges this worker's processed-byte/item counters into the shared
// aggregate. It is the Go analogue of the original's State::Run.
func (s *State) run() {
	s.stats = threadStats{}
	s.inst.family.fn(s)

	s.shared.mu.Lock()
	s.shared.stats.add(s.stats)
	s.shared.mu.Unlock()
}
