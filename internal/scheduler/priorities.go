package scheduler

import (
	"fmt"

	"github.com/utkarsh5026/rowblur/internal/cpu"
)

// PriorityMap is a validated mapping from worker index to priority.
// It can only be built through NewPriorityMap, which guarantees that it has
// exactly one entry per worker.
type PriorityMap struct {
	levels []cpu.Priority
}

// NewPriorityMap builds the map for workerCount workers.
// An empty priorities slice means every worker runs at normal priority;
// otherwise its length must equal workerCount.
func NewPriorityMap(workerCount int, priorities []cpu.Priority) (PriorityMap, error) {
	if workerCount < 1 {
		return PriorityMap{}, fmt.Errorf("%w: got %d", ErrWorkerCount, workerCount)
	}

	if len(priorities) == 0 {
		levels := make([]cpu.Priority, workerCount)
		for i := range levels {
			levels[i] = cpu.PriorityNormal
		}
		return PriorityMap{levels: levels}, nil
	}

	if len(priorities) != workerCount {
		return PriorityMap{}, fmt.Errorf("%w: %d priorities for %d workers", ErrPriorityCount, len(priorities), workerCount)
	}

	for i, p := range priorities {
		if !p.Valid() {
			return PriorityMap{}, fmt.Errorf("%w: worker %d has %s", ErrInvalidPriority, i, p)
		}
	}

	return PriorityMap{levels: append([]cpu.Priority(nil), priorities...)}, nil
}

// Len returns the number of workers covered by the map.
func (m PriorityMap) Len() int {
	return len(m.levels)
}

// For returns the priority of worker i.
func (m PriorityMap) For(i int) cpu.Priority {
	return m.levels[i]
}
