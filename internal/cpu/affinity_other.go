//go:build !linux && !windows

package cpu

import (
	"runtime"
)

// maxMaskCPUs bounds the masks built by FirstN.
const maxMaskCPUs = 1024

// Thread identifies the OS thread a worker goroutine is locked to.
// CPU pinning and thread priorities are not available on this platform,
// so the thread carries no id and Apply is a no-op.
type Thread struct{}

// LockCurrent locks the goroutine to an OS thread.
func LockCurrent() Thread {
	runtime.LockOSThread()
	return Thread{}
}

// ID always returns 0.
func (Thread) ID() int {
	return 0
}

// Apply does nothing; affinity and priority are hints that this platform
// cannot honor.
func (Thread) Apply(Mask, Priority) error {
	return nil
}

// GetNumCPU returns the number of logical CPUs available.
func GetNumCPU() int {
	return runtime.NumCPU()
}
