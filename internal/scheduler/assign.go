package scheduler

import (
	"fmt"

	"github.com/utkarsh5026/rowblur/internal/cpu"
)

// Assign fills in the processor mask and priority of every assignment.
//
// All workers share the same mask, the first coreCount logical processors:
// the pool as a whole is restricted, workers are not pinned to exclusive
// cores. coreCount may exceed the processors present on the machine.
func Assign(assignments []Assignment, coreCount int, priorities PriorityMap) error {
	if coreCount < 1 {
		return fmt.Errorf("%w: got %d", ErrCoreCount, coreCount)
	}
	if priorities.Len() != len(assignments) {
		return fmt.Errorf("%w: %d priorities for %d workers", ErrPriorityCount, priorities.Len(), len(assignments))
	}

	mask := cpu.FirstN(coreCount)
	for i := range assignments {
		assignments[i].Mask = mask
		assignments[i].Priority = priorities.For(i)
	}
	return nil
}

// Plan validates every parameter and returns the complete, ready to run set
// of assignments for an image of the given height. Nothing is returned
// unless the whole plan is valid.
func Plan(height, workerCount, coreCount int, priorities []cpu.Priority) ([]Assignment, error) {
	if coreCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCoreCount, coreCount)
	}

	pm, err := NewPriorityMap(workerCount, priorities)
	if err != nil {
		return nil, err
	}

	assignments, err := Partition(height, workerCount)
	if err != nil {
		return nil, err
	}

	if err := Assign(assignments, coreCount, pm); err != nil {
		return nil, err
	}
	return assignments, nil
}
