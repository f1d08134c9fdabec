package bench

import "math"

// weightedStat is a one-pass weighted mean/variance accumulator, playing
// the role of the original's Stat1_d (no stat.h was retrieved in
// original_source/ -- only benchmark.cc -- so this uses the standard
// West weighted online algorithm rather than importing Stat1_d verbatim).
// Weights are each run's iteration count, per spec.md §4.6's "weighted by
// iterations."
type weightedStat struct {
	weightSum float64
	mean      float64
	m2        float64
}

func (s *weightedStat) add(x, w float64) {
	if w <= 0 {
		return
	}
	s.weightSum += w
	delta := x - s.mean
	s.mean += (w / s.weightSum) * delta
	s.m2 += w * delta * (x - s.mean)
}

// variance returns the weighted sample variance, Bessel-corrected against
// the sum of weights rather than the sample count.
func (s *weightedStat) variance() float64 {
	if s.weightSum <= 1 {
		return 0
	}
	return s.m2 / (s.weightSum - 1)
}

func (s *weightedStat) stddev() float64 {
	return math.Sqrt(s.variance())
}

// computeStats derives "_mean" and "_stddev" synthetic RunData entries from
// every run recorded for one instance, grounded in the original's
// ComputeStats/Stat1_d accumulators (original_source/src/benchmark.cc
// lines ~268-310). Real and CPU time are weighted by each run's iteration
// count and accumulated as per-iteration values, then scaled back up by
// the total iteration count so the reporter's per-iteration division
// recovers the weighted figure -- mirroring the comment on the original's
// stddev_data->real_accumulated_time assignment ("We multiply by
// total_iters since PrintRunData expects a total time"). Bytes/second and
// items/second are weighted by iterations but never rescaled, since they
// are already rates rather than accumulated durations. It returns nil when
// there is nothing to aggregate -- a single run has no meaningful spread.
func computeStats(name string, runs []RunData) []RunData {
	if len(runs) < 2 {
		return nil
	}

	var totalIters int64
	var real, cpu, bytesPerSec, itemsPerSec weightedStat
	for _, r := range runs {
		totalIters += r.Iterations
		w := float64(r.Iterations)
		if r.Iterations > 0 {
			real.add(r.RealTime/float64(r.Iterations), w)
			cpu.add(r.CPUTime/float64(r.Iterations), w)
		}
		bytesPerSec.add(r.BytesPerSecond, w)
		itemsPerSec.add(r.ItemsPerSecond, w)
	}

	label := consistentLabel(runs)
	totalItersF := float64(totalIters)

	mean := RunData{
		BenchmarkName:  name + "_mean",
		Iterations:     totalIters,
		RealTime:       real.mean * totalItersF,
		CPUTime:        cpu.mean * totalItersF,
		BytesPerSecond: bytesPerSec.mean,
		ItemsPerSecond: itemsPerSec.mean,
		Label:          label,
	}
	stddev := RunData{
		BenchmarkName:  name + "_stddev",
		Iterations:     totalIters,
		RealTime:       real.stddev() * totalItersF,
		CPUTime:        cpu.stddev() * totalItersF,
		BytesPerSecond: bytesPerSec.stddev(),
		ItemsPerSecond: itemsPerSec.stddev(),
		Label:          label,
	}
	return []RunData{mean, stddev}
}

// consistentLabel returns the label every run shares, or "" if any run's
// label differs or is empty. Matches the original's rule that a label only
// survives aggregation when every thread agreed on it.
func consistentLabel(runs []RunData) string {
	label := runs[0].Label
	if label == "" {
		return ""
	}
	for _, r := range runs[1:] {
		if r.Label != label {
			return ""
		}
	}
	return label
}
