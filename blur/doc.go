// Package blur implements a fixed-radius box blur that splits an image's
// rows across a pool of OS-thread-bound workers.
//
// Every destination pixel is the per-channel integer mean of the source
// pixels in the 11x11 window centered on it, clipped to the image. The
// result depends only on the source image, never on how many workers
// computed it.
//
// # Basic Usage
//
//	eng, err := blur.New(
//	    blur.WithWorkerCount(4),
//	    blur.WithCoreCount(2),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := eng.Run("in.bmp", "out.bmp")
//
// # Execution model
//
// The rows [0, height) are cut into one contiguous range per worker, the
// last worker taking the remainder. All workers are spawned suspended,
// restricted to the first N logical processors, given their priority, then
// resumed together. The engine waits for all of them before anything is
// saved, so a failed or stalled run never leaves partial output behind.
//
// # Configuration Options
//
//   - WithWorkerCount(n): number of workers (default: GOMAXPROCS)
//   - WithCoreCount(n): restrict workers to processors 0..n-1 (default: NumCPU)
//   - WithPriorities(p...): one priority per worker (default: all normal)
//   - WithDiagnostics(d): per-worker timing records (default: none)
//   - WithStallTimeout(d): bound the final wait (default: wait forever)
//   - WithRowHook(fn): observe row completion, e.g. for progress output
//   - WithCodec(c): replace the file codec used by Run
//
// # Error Handling
//
// Errors wrap one of ErrConfiguration, ErrCodec, ErrWorkerFault or
// ErrStalled and can be told apart with errors.Is. Configuration errors are
// detected before any worker thread exists.
package blur
