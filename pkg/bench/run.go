package bench

import "sync"

// RunInstance executes one instance: it spawns inst.threads workers, each
// running the family's routine against its own State, waits for all of
// them to finish, and returns every RunData they produced. This is the Go
// completion of the original's worker-thread spawning, which the spec's
// source left as a single-threaded stub.
func RunInstance(inst instance, cfg *runConfig) []RunData {
	shared := newSharedRunState(&inst, inst.threads)
	clock := newFastClock(CPUTime)
	defer clock.Stop()

	var wg sync.WaitGroup
	wg.Add(inst.threads)
	for t := 0; t < inst.threads; t++ {
		go func(threadIndex int) {
			defer wg.Done()
			s := newState(clock, shared, cfg, &inst, threadIndex)
			s.run()
		}(t)
	}
	wg.Wait()

	return finalizeRuns(shared, cfg, &inst)
}

// finalizeRuns stamps every recorded RunData with the instance name, the
// instance-wide label (if one was set), and derived rates computed from the
// aggregate bytes/items processed across all workers -- mirroring the
// original's per-repetition BytesPerSecond/ItemsPerSecond calculation, which
// divides the whole run's processed total by that run's real time rather
// than trying to attribute a share of the total to each worker.
func finalizeRuns(shared *sharedRunState, cfg *runConfig, inst *instance) []RunData {
	shared.mu.Lock()
	label := shared.label
	stats := shared.stats
	runs := shared.allRuns()
	shared.mu.Unlock()

	var heapBytes float64
	if cfg.memoryUsage && cfg.memoryProbe != nil {
		heapBytes = cfg.memoryProbe.PeakHeapBytes()
	}

	out := make([]RunData, len(runs))
	for i, r := range runs {
		r.BenchmarkName = inst.name
		r.Label = label
		if r.RealTime > 0 {
			if stats.bytesProcessed > 0 {
				r.BytesPerSecond = float64(stats.bytesProcessed) / r.RealTime
			}
			if stats.itemsProcessed > 0 {
				r.ItemsPerSecond = float64(stats.itemsProcessed) / r.RealTime
			}
		}
		if cfg.memoryUsage {
			r.MaxHeapBytesUsed = heapBytes
		}
		out[i] = r
	}
	return out
}

// MeasureOverhead runs a single-threaded, no-op family for a short, fixed
// number of iterations to estimate the per-iteration cost of the
// measurement loop itself. FlagSet.Config calls it only when an operator
// opts into compensateOverhead; by default it is neither measured nor
// subtracted.
func MeasureOverhead() float64 {
	const overheadIters = 1 << 20

	clock := newFastClock(CPUTime)
	defer clock.Stop()

	shared := newSharedRunState(nil, 1)
	cfg := &runConfig{minIters: overheadIters, maxIters: overheadIters, minTime: 0, repetitions: 1}
	inst := &instance{name: "_overhead_", threads: 1, rangeX: noRange, rangeY: noRange}
	s := newState(clock, shared, cfg, inst, 0)

	start := nowSeconds()
	n := int64(0)
	for s.KeepRunning() {
		n++
	}
	elapsed := nowSeconds() - start
	if n == 0 {
		return 0
	}
	return elapsed / float64(n)
}

// RunSpecifiedBenchmarks runs every registered family matching filterSpec,
// in registration order, and hands each instance's finished runs to every
// reporter in turn. It returns the total number of instances run, for the
// caller to detect an empty filter.
func RunSpecifiedBenchmarks(filterSpec string, cfg *runConfig, reporters ...Reporter) int {
	instances := findBenchmarks(normalizeFilter(filterSpec))
	if len(instances) == 0 {
		return 0
	}

	ctx := buildContext(instances)
	for _, r := range reporters {
		if !r.ReportContext(ctx) {
			return 0
		}
	}

	for _, inst := range instances {
		vlogf(1, "running %s with %d thread(s)", inst.name, inst.threads)
		runs := RunInstance(inst, cfg)
		runs = append(runs, computeStats(inst.name, runs)...)
		for _, r := range reporters {
			r.ReportRuns(runs)
		}
	}
	return len(instances)
}
