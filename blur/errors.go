package blur

import "errors"

var (
	// ErrConfiguration wraps invalid worker counts, core counts, priority
	// lists and images with fewer rows than workers.
	ErrConfiguration = errors.New("blur: invalid configuration")

	// ErrCodec wraps failures to load or save an image.
	ErrCodec = errors.New("blur: codec failure")

	// ErrWorkerFault wraps a worker that finished with an error or panic.
	ErrWorkerFault = errors.New("blur: worker failed")

	// ErrStalled is returned when the workers did not all finish within the
	// stall timeout.
	ErrStalled = errors.New("blur: workers stalled")
)
