package workloads

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lukasrand/gobench/pkg/bench"
	"github.com/lukasrand/gobench/pkg/httpx"
)

// sseBody builds a canned chat-completion SSE stream of n chunks, the shape
// a real OpenAI-compatible server emits for a streamed completion.
func sseBody(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "data: {\"choices\":[{\"delta\":{\"content\":\"token%d \"}}]}\n", i)
	}
	b.WriteString("data: [DONE]\n")
	return b.String()
}

// benchmarkSSEParseThroughput measures httpx.ReadServerSentEvents' line
// parsing and dispatch cost against a fixed-size canned response body. The
// chunk count comes from RangeX, letting the filter select a parameter
// sweep via bench.Register(...).Range(...).
func benchmarkSSEParseThroughput(s *bench.State) {
	n := s.RangeX()
	body := sseBody(n)

	var eventsProcessed int64
	for s.KeepRunning() {
		stream := httpx.ReadServerSentEvents(context.Background(), io.NopCloser(strings.NewReader(body)))
		events, err := stream.Exhaust(context.Background())
		if err != nil {
			panic(err)
		}
		eventsProcessed += int64(len(events))
	}
	s.SetItemsProcessed(eventsProcessed)
}
