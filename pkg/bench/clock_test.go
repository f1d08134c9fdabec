package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNowSeconds_Monotonic(t *testing.T) {
	a := nowSeconds()
	b := nowSeconds()
	assert.GreaterOrEqual(t, b, a)
}

func TestCPUSeconds_NonNegative(t *testing.T) {
	assert.GreaterOrEqual(t, cpuSeconds(), 0.0)
}

func TestThreadStats_AddAccumulates(t *testing.T) {
	s := threadStats{bytesProcessed: 1, itemsProcessed: 2}
	s.add(threadStats{bytesProcessed: 10, itemsProcessed: 20})

	assert.Equal(t, int64(11), s.bytesProcessed)
	assert.Equal(t, int64(22), s.itemsProcessed)
}
