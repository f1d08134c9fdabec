package bench

import "github.com/spf13/pflag"

// FlagSet builds a pflag.FlagSet carrying every flag SPEC_FULL.md's
// external-interfaces table names, bound into a freshly-defaulted
// runConfig plus the filter spec and reporter options. Callers (typically
// internal/cli) embed this set into their own cobra command and read back
// the bound values after Parse.
type FlagSet struct {
	*pflag.FlagSet

	Filter      string
	ColorPrint  bool
	Verbose     int
	MemoryUsage bool

	cfg *runConfig
}

// NewFlagSet returns a FlagSet with every flag registered and defaulted.
func NewFlagSet(name string) *FlagSet {
	fs := &FlagSet{FlagSet: pflag.NewFlagSet(name, pflag.ExitOnError), cfg: defaultRunConfig()}

	fs.StringVar(&fs.Filter, "benchmark-filter", ".",
		`Only run benchmarks whose name matches this regular expression, or "all".`)
	fs.Int64Var(&fs.cfg.minIters, "benchmark-min-iters", fs.cfg.minIters,
		"Minimum number of iterations before a run is allowed to stop.")
	fs.Int64Var(&fs.cfg.maxIters, "benchmark-max-iters", fs.cfg.maxIters,
		"Maximum number of iterations a run is allowed to reach.")
	fs.Float64Var(&fs.cfg.minTime, "benchmark-min-time", fs.cfg.minTime,
		"Minimum number of seconds a repetition should run for.")
	fs.IntVar(&fs.cfg.repetitions, "benchmark-repetitions", fs.cfg.repetitions,
		"Number of times to repeat each benchmark.")
	fs.BoolVar(&fs.cfg.compensateOverhead, "benchmark-compensate-overhead", fs.cfg.compensateOverhead,
		"Subtract measured empty-loop overhead from each interval's real time.")
	fs.BoolVar(&fs.MemoryUsage, "benchmark-memory-usage", false,
		"Report peak heap growth per benchmark, when a MemoryProbe is registered.")
	fs.BoolVar(&fs.ColorPrint, "color-print", true,
		"Colorize console reporter output.")
	fs.IntVarP(&fs.Verbose, "v", "v", 0,
		"Verbosity level for diagnostic logging to stderr.")

	return fs
}

// Config materializes the runConfig bound to this FlagSet's values, after
// Parse has run. It also resolves the empty-loop overhead measurement
// compensateOverhead needs: MeasureOverhead only runs once, the first time
// Config is called with compensation requested, since re-measuring on
// every call would be wasted work for a value that never changes within
// a process.
func (fs *FlagSet) Config() *runConfig {
	fs.cfg.memoryUsage = fs.MemoryUsage
	if fs.cfg.compensateOverhead && fs.cfg.overheadPerIter == 0 {
		fs.cfg.overheadPerIter = MeasureOverhead()
	}
	SetVerbosity(fs.Verbose)
	return fs.cfg
}
