//go:build unix

package bench

import "syscall"

// cpuSecondsOS returns this process's total CPU time (self plus children)
// using getrusage, mirroring the original's MyCPUUsage()+ChildrenCPUUsage().
func cpuSecondsOS() float64 {
	var self, children syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &self); err != nil {
		return 0
	}
	if err := syscall.Getrusage(syscall.RUSAGE_CHILDREN, &children); err != nil {
		return rusageSeconds(&self)
	}
	return rusageSeconds(&self) + rusageSeconds(&children)
}

func rusageSeconds(r *syscall.Rusage) float64 {
	user := float64(r.Utime.Sec) + float64(r.Utime.Usec)/1e6
	sys := float64(r.Stime.Sec) + float64(r.Stime.Usec)/1e6
	return user + sys
}
