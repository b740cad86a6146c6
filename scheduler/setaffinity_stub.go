// setaffinity_stub.go - No-op CPU affinity for platforms without sched_setaffinity

//go:build !linux || tinygo

package scheduler

// setAffinity is a no-op on this platform; the goroutine stays locked to its
// OS thread but the kernel chooses the core.
//
//go:nosplit
//go:inline
func setAffinity(int) {
}
