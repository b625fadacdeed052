package scheduler

import (
	"fmt"

	"github.com/utkarsh5026/rowblur/internal/cpu"
)

// Assignment is the unit of work handed to exactly one worker: a contiguous,
// half-open row range [RowStart, RowEnd) plus the processor mask and priority
// the worker's thread runs with.
type Assignment struct {
	// Worker is the 0-based worker index.
	Worker int

	// RowStart is the first row of the range (inclusive).
	RowStart int

	// RowEnd is one past the last row of the range (exclusive).
	RowEnd int

	// Mask restricts the worker thread to a set of logical processors.
	Mask cpu.Mask

	// Priority is the scheduling hint applied to the worker thread.
	Priority cpu.Priority
}

// Rows returns the number of rows in the assignment.
func (a Assignment) Rows() int {
	return a.RowEnd - a.RowStart
}

// Validate rejects empty or inverted ranges.
func (a Assignment) Validate() error {
	if a.RowStart < 0 || a.RowEnd <= a.RowStart {
		return fmt.Errorf("%w: worker %d has rows [%d, %d)", ErrEmptyRange, a.Worker, a.RowStart, a.RowEnd)
	}
	return nil
}

func (a Assignment) String() string {
	return fmt.Sprintf("worker %d rows [%d, %d) cpus %s %s", a.Worker, a.RowStart, a.RowEnd, a.Mask, a.Priority)
}
