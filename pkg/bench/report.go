package bench

import "runtime"

// Context is reported once, before any instance runs, so a Reporter can
// print a header describing the machine the run happened on.
type Context struct {
	NumCPUs           int
	MHzPerCPU         float64
	CPUScalingEnabled bool

	// NameFieldWidth is the longest instance name about to be reported,
	// for reporters that align a name column.
	NameFieldWidth int
}

// Reporter receives the machine context once and every instance's finished
// runs (including any synthetic _mean/_stddev entries) as they complete.
// ReportContext returning false aborts the run before any instance
// executes -- the hook the original uses to let a reporter refuse a
// malformed context (e.g. it requires a feature this machine lacks).
type Reporter interface {
	ReportContext(ctx Context) bool
	ReportRuns(runs []RunData)
}

// buildContext derives a Context from the instances about to run.
func buildContext(instances []instance) Context {
	ctx := Context{
		NumCPUs:           runtime.NumCPU(),
		MHzPerCPU:         cpuMHz(),
		CPUScalingEnabled: cpuScalingEnabled(),
	}
	for _, inst := range instances {
		if len(inst.name) > ctx.NameFieldWidth {
			ctx.NameFieldWidth = len(inst.name)
		}
	}
	return ctx
}
