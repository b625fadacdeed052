// Package pool provides a small pool of OS-thread-bound workers that are
// started suspended, configured, and only then released.
//
// Each worker is a goroutine locked to its own OS thread for its whole
// life. Because the thread is known before the worker runs any code, its
// processor affinity and scheduling priority can be set while it is still
// parked, so no work ever executes on an unintended processor or at an
// unintended priority.
//
// # Lifecycle
//
// Every handle moves through the states
//
//	Created -> Configured -> Running -> Done
//
// or ends in Aborted when the pool is abandoned before it is resumed.
//
//	p := pool.New()
//	h, err := p.SpawnSuspended(func() error { return work() })
//	err = p.Configure(h, cpu.FirstN(2), cpu.PriorityNormal)
//	err = p.Resume(h)
//	err = p.JoinAll()
//
// # Affinity and priority are hints
//
// Configure never fails because the operating system refused an affinity or
// priority change (for example raising priority without privileges, or a
// platform with no such API). The refusal is recorded on the handle and can
// be read with Handle.HintErr.
//
// # Faults and stalls
//
// A panicking task is recovered and turned into an error carrying the stack
// trace, so the worker still reaches Done. JoinAll waits without a deadline
// unless WithStallTimeout is given, in which case it returns
// ErrStallTimeout once the deadline passes.
//
// Threads are never returned to the Go runtime: a worker goroutine exits
// while still locked, which makes the runtime discard the thread along with
// its affinity and priority.
package pool
