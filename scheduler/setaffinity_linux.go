// setaffinity_linux.go - Linux CPU affinity via sched_setaffinity(2)

//go:build linux && !tinygo

package scheduler

import (
	"syscall"
	"unsafe"
)

// Pre-computed CPU masks for cores 0-63
var cpuMasks = [64][1]uintptr{}

func init() {
	for i := range cpuMasks {
		cpuMasks[i][0] = 1 << i
	}
}

// setAffinity pins current thread to specified CPU core
//
//go:norace
//go:nocheckptr
//go:nosplit
//go:inline
func setAffinity(cpu int) {
	// Validate CPU index
	if cpu < 0 || cpu >= len(cpuMasks) {
		return
	}

	// Get pre-computed mask
	mask := &cpuMasks[cpu]

	// Direct syscall for minimum overhead
	_, _, _ = syscall.RawSyscall(
		syscall.SYS_SCHED_SETAFFINITY,
		0,                               // Current thread
		uintptr(unsafe.Sizeof(mask[0])), // Mask size
		uintptr(unsafe.Pointer(mask)),   // Mask pointer
	)
}
