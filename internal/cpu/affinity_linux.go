//go:build linux

package cpu

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// maxMaskCPUs is the number of processors a unix.CPUSet can hold.
const maxMaskCPUs = 1024

// Thread identifies the OS thread a worker goroutine is locked to.
type Thread struct {
	tid int
}

// LockCurrent locks the calling goroutine to its OS thread and returns the
// identity of that thread. The goroutine is expected to exit while still
// locked so that the runtime discards the thread together with whatever
// affinity and priority were applied to it.
func LockCurrent() Thread {
	runtime.LockOSThread()
	return Thread{tid: unix.Gettid()}
}

// ID returns the kernel thread id.
func (t Thread) ID() int {
	return t.tid
}

// Apply restricts the thread to mask and sets its nice value from prio.
// The thread does not have to be the caller: it is addressed by tid, so a
// suspended worker can be configured by the goroutine that spawned it.
//
// Both settings are attempted even if one fails. Raising the priority needs
// CAP_SYS_NICE, and a mask outside the cgroup's cpuset is refused; the
// returned error joins whatever the kernel rejected.
func (t Thread) Apply(mask Mask, prio Priority) error {
	if t.tid == 0 {
		return ErrNoThread
	}

	var affErr, prioErr error

	var set unix.CPUSet
	set.Zero()
	for _, c := range mask.CPUs() {
		set.Set(c)
	}
	if set.Count() > 0 {
		if err := unix.SchedSetaffinity(t.tid, &set); err != nil {
			affErr = fmt.Errorf("sched_setaffinity tid %d: %w", t.tid, err)
		}
	}

	if err := unix.Setpriority(unix.PRIO_PROCESS, t.tid, niceValue(prio)); err != nil {
		prioErr = fmt.Errorf("setpriority tid %d to %s: %w", t.tid, prio, err)
	}

	return errors.Join(affErr, prioErr)
}

// GetNumCPU returns the number of logical CPUs available.
func GetNumCPU() int {
	return runtime.NumCPU()
}
