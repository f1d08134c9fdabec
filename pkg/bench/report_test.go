package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContext_NameFieldWidthIsLongestInstanceName(t *testing.T) {
	instances := []instance{{name: "Short"}, {name: "MuchLongerName"}, {name: "Mid"}}
	ctx := buildContext(instances)

	assert.Equal(t, len("MuchLongerName"), ctx.NameFieldWidth)
	assert.Greater(t, ctx.NumCPUs, 0)
}

func TestBuildContext_EmptyInstancesYieldsZeroWidth(t *testing.T) {
	ctx := buildContext(nil)
	assert.Equal(t, 0, ctx.NameFieldWidth)
}
