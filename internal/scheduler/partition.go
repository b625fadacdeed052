package scheduler

import "fmt"

// Partition splits the rows [0, height) into workerCount contiguous,
// non-overlapping ranges that together cover every row exactly once.
//
// Every worker gets height/workerCount rows; the last one also absorbs the
// remainder. Requesting more workers than rows is rejected instead of
// producing workers with nothing to do.
//
// The returned assignments carry no mask or priority yet; see Assign.
func Partition(height, workerCount int) ([]Assignment, error) {
	if workerCount < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkerCount, workerCount)
	}
	if height < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrHeight, height)
	}
	if workerCount > height {
		return nil, fmt.Errorf("%w: %d workers for %d rows", ErrTooManyWorkers, workerCount, height)
	}

	chunk := height / workerCount
	assignments := make([]Assignment, workerCount)

	for i := range workerCount {
		end := chunk * (i + 1)
		if i == workerCount-1 {
			end = height
		}

		assignments[i] = Assignment{
			Worker:   i,
			RowStart: chunk * i,
			RowEnd:   end,
		}
		if err := assignments[i].Validate(); err != nil {
			return nil, err
		}
	}

	debugLog("partitioned %d rows across %d workers, chunk=%d", height, workerCount, chunk)
	return assignments, nil
}
