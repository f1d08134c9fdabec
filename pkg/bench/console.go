package bench

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter is the default Reporter: a human-readable table written
// to an io.Writer (os.Stdout by default). With colorize set, names are
// green, per-iteration real/CPU times yellow, iteration counts cyan, and
// the rate/label suffix yellow. Built on go-pretty/table and go-pretty/text.
type ConsoleReporter struct {
	out       io.Writer
	colorize  bool
	nameWidth int
}

// NewConsoleReporter returns a ConsoleReporter writing to os.Stdout with
// colorize reflecting the color-print flag.
func NewConsoleReporter(colorize bool) *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout, colorize: colorize}
}

func (c *ConsoleReporter) ReportContext(ctx Context) bool {
	fmt.Fprintf(c.out, "Run on %d CPUs", ctx.NumCPUs)
	if ctx.MHzPerCPU > 0 {
		fmt.Fprintf(c.out, " (%.0f MHz)", ctx.MHzPerCPU)
	}
	fmt.Fprintln(c.out)

	if ctx.CPUScalingEnabled {
		c.warnf("CPU scaling is enabled: the reported speed may be inaccurate.")
	}

	c.nameWidth = ctx.NameFieldWidth
	return true
}

func (c *ConsoleReporter) ReportRuns(runs []RunData) {
	t := table.NewWriter()
	t.SetOutputMirror(c.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false

	for _, r := range runs {
		t.AppendRow(c.row(r))
	}
	t.Render()
}

func (c *ConsoleReporter) row(r RunData) table.Row {
	name := r.BenchmarkName

	perIter := float64(r.Iterations)
	if perIter == 0 {
		perIter = 1
	}
	realStr := humanReadableNumber(r.RealTime*1e9/perIter) + "ns"
	cpuStr := humanReadableNumber(r.CPUTime*1e9/perIter) + "ns"
	itersStr := fmt.Sprintf("%d", r.Iterations)

	extras := ""
	if r.BytesPerSecond > 0 {
		extras += " " + humanReadableNumber(r.BytesPerSecond) + "B/s"
	}
	if r.ItemsPerSecond > 0 {
		extras += " " + humanReadableNumber(r.ItemsPerSecond) + "items/s"
	}
	if r.MaxHeapBytesUsed > 0 {
		extras += " " + humanReadableNumber(r.MaxHeapBytesUsed) + "B peak-mem"
	}
	if r.Label != "" {
		extras += " " + r.Label
	}

	if c.colorize {
		name = text.FgGreen.Sprint(name)
		realStr = text.FgYellow.Sprint(realStr)
		cpuStr = text.FgYellow.Sprint(cpuStr)
		itersStr = text.FgCyan.Sprint(itersStr)
		if extras != "" {
			extras = text.FgYellow.Sprint(extras)
		}
	}

	return table.Row{name, realStr, cpuStr, itersStr, extras}
}

func (c *ConsoleReporter) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.colorize {
		msg = text.FgYellow.Sprint(msg)
	}
	fmt.Fprintln(c.out, msg)
}
