package bench

import (
	"fmt"
	"os"
	"regexp"
)

// findBenchmarks compiles spec as a regular expression and returns every
// instance from every registered, non-deregistered family whose family
// name (not its decorated instance name) matches it.
//
// An empty spec matches nothing. An invalid regex is reported to stderr and
// also matches nothing; this never aborts the process, per spec's error
// taxonomy ("Filter empty or no matches -- silent no-op").
func findBenchmarks(spec string) []instance {
	if spec == "" {
		return nil
	}

	re, err := regexp.Compile(spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bench: could not compile filter regex %q: %v\n", spec, err)
		return nil
	}

	registryMu.Lock()
	snapshot := make([]*Family, len(families))
	copy(snapshot, families)
	registryMu.Unlock()

	var out []instance
	for _, f := range snapshot {
		if f == nil {
			continue
		}
		if !re.MatchString(f.name) {
			continue
		}
		out = append(out, expandFamily(f)...)
	}
	return out
}

// normalizeFilter rewrites the literal "all" to ".", matching every family.
// Empty strings are passed through unchanged: they mean "run nothing".
func normalizeFilter(spec string) string {
	if spec == "all" {
		return "."
	}
	return spec
}
