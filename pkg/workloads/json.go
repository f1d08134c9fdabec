package workloads

import (
	"encoding/json"

	"github.com/lukasrand/gobench/pkg/api"
	"github.com/lukasrand/gobench/pkg/bench"
)

// sampleChatEvent is a representative chat-completion delta, the shape the
// API client actually unmarshals from every SSE line in a streamed
// response.
func sampleChatEvent() api.ChatCompletionEvent {
	raw := `{
		"id": "chatcmpl-bench",
		"object": "chat.completion.chunk",
		"created": 1700000000,
		"model": "gpt-4.1",
		"system_fingerprint": "fp_bench",
		"choices": [{"index": 0, "delta": {"content": "the quick brown fox"}, "finish_reason": null}]
	}`
	var event api.ChatCompletionEvent
	_ = json.Unmarshal([]byte(raw), &event)
	return event
}

// benchmarkJSONMarshalChatEvent measures the cost of serializing a single
// chat-completion event, the inverse of what the client does once per SSE
// line while consuming a stream.
func benchmarkJSONMarshalChatEvent(s *bench.State) {
	event := sampleChatEvent()
	encoded, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}

	var bytesWritten int64
	for s.KeepRunning() {
		encoded, err = json.Marshal(event)
		if err != nil {
			panic(err)
		}
		bytesWritten += int64(len(encoded))
	}
	s.SetBytesProcessed(bytesWritten)
}

// benchmarkJSONUnmarshalChatEvent measures the cost of the exact decode path
// api.Client.ChatCompletionStream runs once per received SSE line.
func benchmarkJSONUnmarshalChatEvent(s *bench.State) {
	event := sampleChatEvent()
	encoded, err := json.Marshal(event)
	if err != nil {
		panic(err)
	}

	var bytesProcessed int64
	for s.KeepRunning() {
		var decoded api.ChatCompletionEvent
		if err := json.Unmarshal(encoded, &decoded); err != nil {
			panic(err)
		}
		bytesProcessed += int64(len(encoded))
	}
	s.SetBytesProcessed(bytesProcessed)
}
