package pool

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

var (
	ErrStallTimeout = errors.New("pool: workers did not finish before the stall timeout")
	ErrInvalidState = errors.New("pool: invalid handle state")
	ErrJoined       = errors.New("pool: already joined")
	ErrForeign      = errors.New("pool: handle belongs to another pool")
)

// waitUntil blocks until either the done channel is closed or the timeout is reached.
// A non-positive timeout waits forever.
func waitUntil(d <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-d
		return nil
	}

	select {
	case <-d:
		return nil
	case <-time.After(timeout):
		return ErrStallTimeout
	}
}

// runWithRecovery executes a task with panic recovery.
// If a panic occurs, it's converted to an error so the worker still finishes.
func runWithRecovery(id int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker %d panic: %v\nstack trace:\n%s", id, r, buf[:n])
		}
	}()

	return task()
}
