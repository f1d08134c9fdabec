// Package bench is a microbenchmark harness library.
//
// A hosting program registers named measurement routines with Register,
// optionally expands them across parameter and thread-count axes, then
// calls Initialize and RunSpecifiedBenchmarks to discover, schedule, time
// and report them. The package is designed to be linked into a program the
// same way the standard library's testing package is: benchmarks are
// registered at init time and driven from a small main.
package bench
