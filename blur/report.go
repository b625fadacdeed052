package blur

import "time"

// WorkerReport describes what one worker was asked to do and how it went.
type WorkerReport struct {
	// Worker is the 0-based worker index.
	Worker int

	// RowStart and RowEnd bound the worker's rows, [RowStart, RowEnd).
	RowStart, RowEnd int

	// CPUs lists the logical processors the worker was restricted to.
	CPUs []int

	// Priority is the priority requested for the worker.
	Priority Priority

	// Thread is the OS thread id the worker ran on, 0 where unavailable.
	Thread int

	// HintErr is set when the OS did not honor the affinity or priority.
	HintErr error

	// Pixels is the number of pixels the worker computed.
	Pixels int

	// Elapsed is the time the worker spent computing.
	Elapsed time.Duration
}

// Report summarizes a blur.
type Report struct {
	Width, Height int
	Workers       []WorkerReport

	// Elapsed covers the whole blur, from planning to the last worker finishing.
	// For Run it also includes loading and saving.
	Elapsed time.Duration
}

// Pixels returns the number of pixels computed by all workers.
func (r *Report) Pixels() int {
	total := 0
	for _, w := range r.Workers {
		total += w.Pixels
	}
	return total
}
