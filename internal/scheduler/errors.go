package scheduler

import "errors"

var (
	// ErrWorkerCount is returned when fewer than one worker is requested.
	ErrWorkerCount = errors.New("worker count must be at least 1")

	// ErrCoreCount is returned when fewer than one core is requested.
	ErrCoreCount = errors.New("core count must be at least 1")

	// ErrHeight is returned when the image has no rows to partition.
	ErrHeight = errors.New("image height must be at least 1")

	// ErrTooManyWorkers is returned when there are more workers than rows,
	// which would leave some workers with an empty range.
	ErrTooManyWorkers = errors.New("more workers than image rows")

	// ErrPriorityCount is returned when the number of priorities does not
	// match the number of workers.
	ErrPriorityCount = errors.New("priority count does not match worker count")

	// ErrInvalidPriority is returned for a priority outside the known levels.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrEmptyRange is returned for an assignment whose row range is empty or inverted.
	ErrEmptyRange = errors.New("empty row range")
)
