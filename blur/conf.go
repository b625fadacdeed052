package blur

import (
	"runtime"
	"time"

	"github.com/utkarsh5026/rowblur/internal/cpu"
	"github.com/utkarsh5026/rowblur/internal/imaging"
	"github.com/utkarsh5026/rowblur/internal/scheduler"
)

// Option is a functional option for configuring the engine.
type Option func(*config)

type config struct {
	workerCount  int
	coreCount    int
	priorities   []Priority
	diagnostics  Diagnostics
	stallTimeout time.Duration
	onRow        func(worker, row int)
	onPlan       func(plan []scheduler.Assignment)
	codec        Codec
}

func defaultConfig() config {
	return config{
		workerCount: runtime.GOMAXPROCS(0),
		coreCount:   cpu.GetNumCPU(),
		diagnostics: NopDiagnostics{},
		codec:       imaging.Codec{},
	}
}

// WithWorkerCount sets the number of workers. Unlike most options, invalid
// values are kept and rejected by New.
func WithWorkerCount(n int) Option {
	return func(cfg *config) {
		cfg.workerCount = n
	}
}

// WithCoreCount restricts every worker to logical processors 0..n-1.
// n may exceed the processors present; it must be at least 1.
func WithCoreCount(n int) Option {
	return func(cfg *config) {
		cfg.coreCount = n
	}
}

// WithPriorities sets the priority of each worker, in worker order.
// The number of priorities must equal the worker count.
func WithPriorities(p ...Priority) Option {
	return func(cfg *config) {
		cfg.priorities = append([]Priority(nil), p...)
	}
}

// WithDiagnostics enables per-pixel timing records.
func WithDiagnostics(d Diagnostics) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.diagnostics = d
		}
	}
}

// WithStallTimeout bounds the wait for the workers. Zero, the default,
// waits forever.
func WithStallTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.stallTimeout = d
		}
	}
}

// WithRowHook registers fn to be called by a worker each time it finishes a
// row. fn is called concurrently from all workers.
func WithRowHook(fn func(worker, row int)) Option {
	return func(cfg *config) {
		cfg.onRow = fn
	}
}

// WithPlanHook registers fn to be called with the validated plan of each
// blur, before any worker is spawned.
func WithPlanHook(fn func(plan []scheduler.Assignment)) Option {
	return func(cfg *config) {
		cfg.onPlan = fn
	}
}

// WithCodec replaces the codec used by Run.
func WithCodec(c Codec) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.codec = c
		}
	}
}
