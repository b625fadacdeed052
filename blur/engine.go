package blur

import (
	"errors"
	"fmt"
	"time"

	"github.com/utkarsh5026/rowblur/internal/scheduler"
	"github.com/utkarsh5026/rowblur/pool"
	"github.com/utkarsh5026/rowblur/raster"
)

// Engine runs blurs with a fixed configuration. It holds no per-run state and
// may be reused for several images. Concurrent calls are safe only when the
// configured Diagnostics and hooks are: FileDiagnostics writes fixed file
// names, so two concurrent blurs would truncate each other's logs.
type Engine struct {
	conf config
}

// New validates the options and returns an engine.
// The check that the image has at least as many rows as there are workers
// can only happen once the image is known, in Blur.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.workerCount < 1 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrConfiguration, scheduler.ErrWorkerCount, cfg.workerCount)
	}
	if cfg.coreCount < 1 {
		return nil, fmt.Errorf("%w: %w: got %d", ErrConfiguration, scheduler.ErrCoreCount, cfg.coreCount)
	}
	if _, err := scheduler.NewPriorityMap(cfg.workerCount, cfg.priorities); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return &Engine{conf: cfg}, nil
}

// WorkerCount returns the configured number of workers.
func (e *Engine) WorkerCount() int { return e.conf.workerCount }

// Run loads inputPath, blurs it and saves the result to outputPath.
// Nothing is written unless every worker finished successfully.
func (e *Engine) Run(inputPath, outputPath string) (*Report, error) {
	start := time.Now()

	src, err := e.conf.codec.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %w", ErrCodec, inputPath, err)
	}

	dst, report, err := e.Blur(src)
	if err != nil {
		return report, err
	}

	if err := e.conf.codec.Save(dst, outputPath); err != nil {
		return report, fmt.Errorf("%w: save %s: %w", ErrCodec, outputPath, err)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}

// Blur returns a new image holding the blurred src.
//
// The workers are spawned suspended, each restricted to the configured
// processors and given its priority while parked, and only then resumed.
// Blur returns after every worker has finished; with no stall timeout
// configured that wait is unbounded.
func (e *Engine) Blur(src *raster.Image) (*raster.Image, *Report, error) {
	start := time.Now()

	plan, err := scheduler.Plan(src.Height(), e.conf.workerCount, e.conf.coreCount, e.conf.priorities)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if e.conf.onPlan != nil {
		e.conf.onPlan(plan)
	}

	dst := raster.New(src.Width(), src.Height())
	report := &Report{Width: src.Width(), Height: src.Height()}

	p := pool.New(
		pool.WithStallTimeout(e.conf.stallTimeout),
		pool.WithStateHook(func(id int, s pool.State) {
			debugLog("worker %d -> %s", id+1, s)
		}),
	)

	workers := make([]*worker, len(plan))
	handles := make([]*pool.Handle, len(plan))

	for i, a := range plan {
		workers[i] = &worker{
			assignment:  a,
			src:         src,
			dst:         dst,
			diagnostics: e.conf.diagnostics,
			batchStart:  start,
			onRow:       e.conf.onRow,
		}

		handles[i], err = p.SpawnSuspended(workers[i].run)
		if err != nil {
			return nil, nil, e.abandon(p, err)
		}
	}

	for i, h := range handles {
		if err := p.Configure(h, plan[i].Mask, plan[i].Priority); err != nil {
			return nil, nil, e.abandon(p, err)
		}
	}

	for _, h := range handles {
		if err := p.Resume(h); err != nil {
			return nil, nil, e.abandon(p, err)
		}
	}

	if err := p.JoinAll(); err != nil {
		if errors.Is(err, pool.ErrStallTimeout) {
			return nil, report, fmt.Errorf("%w: %w", ErrStalled, err)
		}
		return nil, report, fmt.Errorf("%w: %w", ErrWorkerFault, err)
	}

	report.Workers = make([]WorkerReport, len(plan))
	for i, a := range plan {
		report.Workers[i] = WorkerReport{
			Worker:   a.Worker,
			RowStart: a.RowStart,
			RowEnd:   a.RowEnd,
			CPUs:     a.Mask.CPUs(),
			Priority: a.Priority,
			Thread:   handles[i].Thread().ID(),
			HintErr:  handles[i].HintErr(),
			Pixels:   workers[i].pixels,
			Elapsed:  workers[i].elapsed,
		}
	}
	report.Elapsed = time.Since(start)

	return dst, report, nil
}

// abandon releases every parked worker and waits for the ones already
// running before reporting err.
func (e *Engine) abandon(p *pool.Pool, err error) error {
	p.Abort()
	_ = p.JoinAll()
	return fmt.Errorf("%w: %w", ErrWorkerFault, err)
}
