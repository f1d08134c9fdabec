package workloads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleChatEvent_UnmarshalsExpectedShape(t *testing.T) {
	event := sampleChatEvent()

	assert.Equal(t, "chatcmpl-bench", event.Id)
	require.Len(t, event.Choices, 1)
	assert.Equal(t, "the quick brown fox", event.Choices[0].Delta.Content)
}

