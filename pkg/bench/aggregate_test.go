package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats_SingleRunYieldsNothing(t *testing.T) {
	runs := []RunData{{RealTime: 1}}
	assert.Nil(t, computeStats("X", runs))
}

func TestComputeStats_MeanAndStddev(t *testing.T) {
	// Unequal iteration counts so an unweighted mean/stddev (the old,
	// wrong behavior) would disagree with the weighted result: run 1
	// contributes a per-iteration time of 1.0 with weight 1, run 2 a
	// per-iteration time of 3.0 with weight 3. Weighted mean per
	// iteration is (1*1 + 3*3)/(1+3) = 2.5, scaled back up by the total
	// iteration count (4) to 10.0 -- which also equals the plain sum of
	// the two runs' RealTime, 1.0+9.0.
	runs := []RunData{
		{Iterations: 1, RealTime: 1.0, CPUTime: 1.0},
		{Iterations: 3, RealTime: 9.0, CPUTime: 9.0},
	}
	stats := computeStats("X", runs)
	require.Len(t, stats, 2)

	mean, stddev := stats[0], stats[1]
	assert.Equal(t, "X_mean", mean.BenchmarkName)
	assert.Equal(t, int64(4), mean.Iterations)
	assert.InDelta(t, 10.0, mean.RealTime, 1e-9)
	assert.InDelta(t, 10.0, mean.CPUTime, 1e-9)

	assert.Equal(t, "X_stddev", stddev.BenchmarkName)
	assert.Equal(t, int64(4), stddev.Iterations)
	assert.InDelta(t, 4.0, stddev.RealTime, 1e-9)
	assert.InDelta(t, 4.0, stddev.CPUTime, 1e-9)
}

func TestComputeStats_WeightsBytesAndItemsPerSecondByIterations(t *testing.T) {
	runs := []RunData{
		{Iterations: 1, BytesPerSecond: 10, ItemsPerSecond: 10},
		{Iterations: 3, BytesPerSecond: 30, ItemsPerSecond: 30},
	}
	stats := computeStats("X", runs)
	require.Len(t, stats, 2)

	mean := stats[0]
	// Weighted mean: (1*10 + 3*30)/4 = 25, vs. a plain unweighted mean
	// of 20 -- this distinguishes the weighted implementation.
	assert.InDelta(t, 25.0, mean.BytesPerSecond, 1e-9)
	assert.InDelta(t, 25.0, mean.ItemsPerSecond, 1e-9)
}

func TestConsistentLabel(t *testing.T) {
	assert.Equal(t, "", consistentLabel([]RunData{{Label: ""}, {Label: "x"}}))
	assert.Equal(t, "", consistentLabel([]RunData{{Label: "x"}, {Label: "y"}}))
	assert.Equal(t, "x", consistentLabel([]RunData{{Label: "x"}, {Label: "x"}}))
}
