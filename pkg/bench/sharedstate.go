package bench

import "sync"

// sharedRunState is the per-instance coordination object: barrier
// counters, accumulated runs, label, and aggregate processed counters.
// Every field is protected by mu; runs is written only through setRun,
// called under mu, and each worker only ever touches its own row.
type sharedRunState struct {
	mu sync.Mutex

	inst    *instance
	starting int
	stopping int
	threads  int

	cond *sync.Cond // signaled when starting reaches threads

	// useRealTime is latched by the last worker to reach the start
	// barrier, from whichever value UseRealTime left it at. Default
	// (false) measures CPU time, matching spec.md's default clock.
	useRealTime bool

	stats threadStats
	label string

	// runs is indexed by [threadIndex][repetition], one slot per completed
	// interval. Each worker writes only its own row; this sidesteps the
	// "Continuation overwrite race" spec.md raises against relying on
	// runs.back(), per the Design Notes' recommended fix.
	runs [][]RunData
}

func newSharedRunState(inst *instance, threads int) *sharedRunState {
	s := &sharedRunState{inst: inst, threads: threads, runs: make([][]RunData, threads)}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// allRuns returns a flattened view of every run recorded so far (names and
// labels are filled in later, by finalizeRuns), in no particular
// cross-thread order (spec.md's ordering
// guarantee (ii): interleaving across threads is unspecified).
func (s *sharedRunState) allRuns() []RunData {
	var out []RunData
	for _, perThread := range s.runs {
		out = append(out, perThread...)
	}
	return out
}

// setRun stores data as repetition-th run for threadIndex, growing the
// per-thread slice as needed. Called under s.mu.
func (s *sharedRunState) setRun(threadIndex, repetition int, data RunData) {
	slots := s.runs[threadIndex]
	for len(slots) <= repetition {
		slots = append(slots, RunData{})
	}
	slots[repetition] = data
	s.runs[threadIndex] = slots
}
