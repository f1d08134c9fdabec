package cli

import "github.com/lukasrand/gobench/pkg/bench"

// validateRunFlags validates the flags bench.Initialize just parsed.
func validateRunFlags() string {
	fs := bench.Initialized()

	// A filter is required; bench.RunSpecifiedBenchmarks treats an empty
	// filter as "run nothing" rather than erroring, so we catch the
	// likely-unintentional case here instead.
	if fs.Filter == "" {
		return `A benchmark filter is required (try --benchmark-filter=all).`
	}

	if fs.Config().MinItersExceedsMax() {
		return "benchmark-min-iters must not exceed benchmark-max-iters."
	}

	return ""
}
