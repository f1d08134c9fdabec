package bench

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// cpuMHz does a best-effort read of /proc/cpuinfo's first "cpu MHz" line.
// It returns 0 if the file is absent or unparseable -- this information is
// cosmetic (console-reporter header only) and never gates a run.
func cpuMHz() float64 {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu MHz") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		return v
	}
	return 0
}

// cpuScalingEnabled checks every logical CPU's scaling_governor file and
// reports true if any of them is not pinned to "performance". Absence of
// the cpufreq sysfs tree (containers, non-Linux) is treated as "unknown",
// reported as false -- the original's warning is advisory, not fatal,
// per SPEC_FULL.md's error-handling design.
func cpuScalingEnabled() bool {
	for cpu := 0; cpu < runtime.NumCPU(); cpu++ {
		path := filepath.Join("/sys/devices/system/cpu", "cpu"+strconv.Itoa(cpu), "cpufreq/scaling_governor")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) != "performance" {
			return true
		}
	}
	return false
}
