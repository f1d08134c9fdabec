package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukasrand/gobench/pkg/bench"
	"github.com/lukasrand/gobench/pkg/utils/miscutils"
	"github.com/lukasrand/gobench/pkg/workloads"
)

// runCmd represents the `run` command. It hands raw argument parsing to
// bench.Initialize, the same entry point a non-cobra caller would use, so
// the engine's own flags (benchmark-filter, benchmark-min-iters, etc.) are
// parsed exactly once and in exactly one place.
var runCmd = &cobra.Command{
	Use:                "run",
	Short:              "Run the registered benchmarks.",
	Long:               "Registers every benchmark in pkg/workloads and runs whichever match --benchmark-filter.",
	DisableFlagParsing: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bench.Initialize(args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if message := validateRunFlags(); message != "" {
			fmt.Println(message)
			os.Exit(1)
		}

		workloads.Register()

		fs := bench.Initialized()
		reporter := bench.NewConsoleReporter(fs.ColorPrint)
		start := time.Now()
		n := bench.RunSpecifiedBenchmarks(fs.Filter, fs.Config(), reporter)
		fmt.Printf("ran %d benchmark(s) in %s\n", n, miscutils.FormatDuration(time.Since(start)))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
