package workloads

import "github.com/lukasrand/gobench/pkg/bench"

// Register adds every workload benchmark in this package to the bench
// registry. Called once, from internal/cli/run.go, before
// bench.RunSpecifiedBenchmarks.
func Register() {
	bench.Register("JSONMarshalChatEvent", benchmarkJSONMarshalChatEvent)
	bench.Register("JSONUnmarshalChatEvent", benchmarkJSONUnmarshalChatEvent)
	bench.Register("SSEParseThroughput", benchmarkSSEParseThroughput).Range(8, 512)
	bench.Register("RetryClientFlakyServer", benchmarkRetryClientFlakyServer).ThreadRange(1, 4)
}
