package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInstance_SingleThreadProducesOneRunPerRepetition(t *testing.T) {
	cfg := &runConfig{minIters: 10, maxIters: 1_000_000, minTime: 0.001, repetitions: 3}
	inst := instance{name: "TestRunInstance_SingleThreadProducesOneRunPerRepetition", threads: 1,
		rangeX: noRange, rangeY: noRange,
		family: &Family{fn: func(s *State) {
			for s.KeepRunning() {
			}
		}},
	}

	runs := RunInstance(inst, cfg)
	assert.Len(t, runs, 3)
	for _, r := range runs {
		assert.Equal(t, inst.name, r.BenchmarkName)
		assert.GreaterOrEqual(t, r.Iterations, cfg.minIters)
	}
}

func TestRunInstance_MultithreadedBarrierProducesRunsPerThread(t *testing.T) {
	const threads = 4
	cfg := &runConfig{minIters: 10, maxIters: 1_000_000, minTime: 0.001, repetitions: 1}
	inst := instance{name: "TestRunInstance_MultithreadedBarrierProducesRunsPerThread", threads: threads,
		rangeX: noRange, rangeY: noRange,
		family: &Family{fn: func(s *State) {
			for s.KeepRunning() {
			}
		}},
	}

	runs := RunInstance(inst, cfg)
	assert.Len(t, runs, threads)
}

func TestState_PauseTimingExcludesElapsedTime(t *testing.T) {
	cfg := &runConfig{minIters: 5, maxIters: 1_000_000, minTime: 0.001, repetitions: 1}
	inst := instance{name: "TestState_PauseTimingExcludesElapsedTime", threads: 1, rangeX: noRange, rangeY: noRange}
	inst.family = &Family{fn: func(s *State) {
		for s.KeepRunning() {
			s.PauseTiming()
			s.ResumeTiming()
		}
	}}

	runs := RunInstance(inst, cfg)
	require.Len(t, runs, 1)
	// Pausing immediately around every iteration should not inflate RealTime
	// to anything close to the wall-clock cost of the whole loop.
	assert.GreaterOrEqual(t, runs[0].RealTime, 0.0)
}

func TestRunSpecifiedBenchmarks_EmptyFilterRunsNothing(t *testing.T) {
	h := Register("TestRunSpecifiedBenchmarks_EmptyFilterRunsNothing", func(s *State) {
		for s.KeepRunning() {
		}
	})
	defer h.Deregister()

	n := RunSpecifiedBenchmarks("", defaultRunConfig())
	assert.Equal(t, 0, n)
}

func TestMeasureOverhead_ReturnsNonNegativePerIterationSeconds(t *testing.T) {
	overhead := MeasureOverhead()
	assert.GreaterOrEqual(t, overhead, 0.0)
}

func TestRunSpecifiedBenchmarks_FilterRunsMatchingFamily(t *testing.T) {
	h := Register("TestRunSpecifiedBenchmarks_FilterRunsMatchingFamily", func(s *State) {
		for s.KeepRunning() {
		}
	})
	defer h.Deregister()

	cfg := &runConfig{minIters: 5, maxIters: 1_000_000, minTime: 0.001, repetitions: 1}
	n := RunSpecifiedBenchmarks("^TestRunSpecifiedBenchmarks_FilterRunsMatchingFamily$", cfg)
	assert.Equal(t, 1, n)
}
