package bench

// initialized is the FlagSet the most recent Initialize call parsed, for
// callers that use the package-level entry points instead of building
// their own FlagSet -- mirroring the original's process-wide
// FLAGS_benchmark_* globals that benchmark::Initialize populates and
// RunSpecifiedBenchmarks later reads back.
var initialized *FlagSet

// Initialize parses args as bench's own CLI flags (see flags.go) and
// readies the resulting configuration. It is the Go counterpart of the
// original's benchmark::Initialize(&argc, argv): spec.md's entry-points
// list bundles "Initialize, parse flags, measure empty-loop overhead, run
// matching benchmarks" as one step, and Config resolves the overhead
// measurement as part of materializing the runConfig. Call Initialized
// afterward to retrieve the parsed FlagSet for RunSpecifiedBenchmarks.
func Initialize(args []string) error {
	fs := NewFlagSet("bench")
	if err := fs.Parse(args); err != nil {
		return err
	}
	fs.Config()
	initialized = fs
	return nil
}

// Initialized returns the FlagSet the most recent Initialize call parsed,
// or nil if Initialize has not run yet.
func Initialized() *FlagSet {
	return initialized
}
