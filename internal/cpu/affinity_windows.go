//go:build windows

package cpu

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	setThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	setThreadPriority     = kernel32.NewProc("SetThreadPriority")
	getCurrentThreadID    = kernel32.NewProc("GetCurrentThreadId")
	openThread            = kernel32.NewProc("OpenThread")
)

// maxMaskCPUs is the width of a thread affinity mask.
const maxMaskCPUs = 64

const (
	threadSetInformation   = 0x0020
	threadQueryInformation = 0x0040
)

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
	id, _, _ := getCurrentThreadID.Call()
	return Thread{tid: int(id)}
}

// ID returns the Windows thread id.
func (t Thread) ID() int {
	return t.tid
}

// Apply opens the thread by id, sets its affinity mask to the first 64
// processors of mask and its relative priority to prio.
func (t Thread) Apply(mask Mask, prio Priority) error {
	if t.tid == 0 {
		return ErrNoThread
	}

	handle, _, err := openThread.Call(threadSetInformation|threadQueryInformation, 0, uintptr(t.tid))
	if handle == 0 {
		return fmt.Errorf("OpenThread %d: %w", t.tid, err)
	}
	defer syscall.CloseHandle(syscall.Handle(handle))

	var affErr, prioErr error

	if word := mask.lowWord(); word != 0 {
		prev, _, err := setThreadAffinityMask.Call(handle, uintptr(word))
		if prev == 0 {
			affErr = fmt.Errorf("SetThreadAffinityMask %d: %w", t.tid, err)
		}
	}

	ok, _, err := setThreadPriority.Call(handle, uintptr(int(prio)))
	if ok == 0 {
		prioErr = fmt.Errorf("SetThreadPriority %d to %s: %w", t.tid, prio, err)
	}
	return errors.Join(affErr, prioErr)
}

// GetNumCPU returns the number of logical CPUs available.
func GetNumCPU() int {
	return runtime.NumCPU()
}
