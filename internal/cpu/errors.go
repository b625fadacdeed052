package cpu

import "errors"

// ErrNoThread is returned by Apply on a Thread that was not obtained
// from LockCurrent.
var ErrNoThread = errors.New("cpu: thread is not locked")
