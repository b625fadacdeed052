package blur

import (
	"fmt"
	"time"

	"github.com/utkarsh5026/rowblur/internal/scheduler"
	"github.com/utkarsh5026/rowblur/raster"
)

// worker blurs the rows of one assignment. It only reads src and only writes
// the rows it was assigned in dst, so workers need no locking between them.
type worker struct {
	assignment  scheduler.Assignment
	src         *raster.Image
	dst         *raster.Image
	diagnostics Diagnostics
	batchStart  time.Time
	onRow       func(worker, row int)

	pixels  int
	elapsed time.Duration
}

// run is the worker's task. The diagnostic sink lives exactly as long as the
// task: it is closed on every return path, panics included.
func (w *worker) run() (err error) {
	id := w.assignment.Worker

	sink, err := w.diagnostics.Open(id)
	if err != nil {
		return fmt.Errorf("worker %d: open diagnostics: %w", id+1, err)
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("worker %d: close diagnostics: %w", id+1, cerr)
		}
	}()

	began := time.Now()
	width := w.src.Width()

	for y := w.assignment.RowStart; y < w.assignment.RowEnd; y++ {
		for x := range width {
			w.dst.SetPixel(x, y, Pixel(w.src, x, y))
			w.pixels++

			if err := sink.Record(id, time.Since(w.batchStart)); err != nil {
				return fmt.Errorf("worker %d: record diagnostics: %w", id+1, err)
			}
		}
		if w.onRow != nil {
			w.onRow(id, y)
		}
	}

	w.elapsed = time.Since(began)
	return nil
}
