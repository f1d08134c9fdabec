package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedRunState_SetRunGrowsPerThreadSlice(t *testing.T) {
	s := newSharedRunState(nil, 2)

	s.setRun(0, 2, RunData{Iterations: 7})
	assert.Len(t, s.runs[0], 3)
	assert.Equal(t, int64(7), s.runs[0][2].Iterations)
}

func TestSharedRunState_AllRunsFlattensAcrossThreads(t *testing.T) {
	s := newSharedRunState(nil, 2)
	s.setRun(0, 0, RunData{Iterations: 1})
	s.setRun(1, 0, RunData{Iterations: 2})

	all := s.allRuns()
	assert.Len(t, all, 2)
}

func TestSharedRunState_SetRunOverwritesContinuationSlot(t *testing.T) {
	s := newSharedRunState(nil, 1)
	s.setRun(0, 0, RunData{Iterations: 1})
	s.setRun(0, 0, RunData{Iterations: 5})

	assert.Len(t, s.runs[0], 1)
	assert.Equal(t, int64(5), s.runs[0][0].Iterations)
}
