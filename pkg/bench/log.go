package bench

import (
	"fmt"
	"os"
	"sync/atomic"
)

// currentVerbosity gates vlogf, set from the v flag. Atomic because it is
// written once at startup but read from every worker goroutine.
var currentVerbosity atomic.Int32

// SetVerbosity sets the level vlogf compares against, the direct analogue
// of the original's DEFINE_int32(v, ...) flag.
func SetVerbosity(level int) {
	currentVerbosity.Store(int32(level))
}

// vlogf writes a diagnostic line to stderr when level is at or below the
// current verbosity, mirroring the original's #ifdef DEBUG trace lines.
func vlogf(level int, format string, args ...any) {
	if int32(level) > currentVerbosity.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "bench: "+format+"\n", args...)
}
