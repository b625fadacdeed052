package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/utkarsh5026/rowblur/internal/cpu"
	"golang.org/x/sync/errgroup"
)

// Task is the body of a worker. It runs on the worker's locked OS thread
// once the worker is resumed.
type Task func() error

// Handle refers to one worker of a Pool.
type Handle struct {
	id      int
	owner   *Pool
	thread  cpu.Thread
	state   atomic.Int32
	resume  chan struct{}
	aborted atomic.Bool
	hintErr error
	err     error
}

// ID returns the index of the worker in spawn order, starting at 0.
func (h *Handle) ID() int { return h.id }

// State returns the current lifecycle state.
func (h *Handle) State() State { return State(h.state.Load()) }

// Thread returns the OS thread the worker is locked to.
func (h *Handle) Thread() cpu.Thread { return h.thread }

// HintErr returns the error the operating system reported while applying
// affinity or priority, or nil. It is only meaningful after Configure.
func (h *Handle) HintErr() error { return h.hintErr }

// Err returns the task's error. It is only meaningful after JoinAll.
func (h *Handle) Err() error { return h.err }

// Pool owns a fixed set of suspended workers for one batch of work.
// A Pool is not reusable: once JoinAll has been called no more workers can
// be spawned.
type Pool struct {
	conf    poolConfig
	mu      sync.Mutex
	handles []*Handle
	g       errgroup.Group
	joined  atomic.Bool
}

// New creates an empty pool.
func New(opts ...Option) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(&p.conf)
	}
	return p
}

// Handles returns the spawned handles in spawn order.
func (p *Pool) Handles() []*Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Handle(nil), p.handles...)
}

// SpawnSuspended starts a new worker goroutine, locks it to an OS thread and
// parks it before it runs task. It returns once the worker's thread is known,
// so the handle can be configured immediately.
func (p *Pool) SpawnSuspended(task Task) (*Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.joined.Load() {
		return nil, ErrJoined
	}

	h := &Handle{
		id:     len(p.handles),
		owner:  p,
		resume: make(chan struct{}),
	}
	h.state.Store(int32(StateCreated))

	ready := make(chan cpu.Thread, 1)
	p.g.Go(func() error {
		// Never unlocked: the thread is discarded when this goroutine exits.
		ready <- cpu.LockCurrent()

		<-h.resume
		if h.aborted.Load() {
			return nil
		}

		h.err = runWithRecovery(h.id, task)
		p.transition(h, StateDone)
		return h.err
	})

	h.thread = <-ready
	p.handles = append(p.handles, h)
	p.notify(h.id, StateCreated)
	debugLog("worker %d spawned on thread %d", h.id, h.thread.ID())

	return h, nil
}

// Configure applies mask and prio to a parked worker's thread.
// It fails only if the handle is not in the Created state, including when
// an Abort wins the race; an operating system refusal is recorded in HintErr
// instead.
func (p *Pool) Configure(h *Handle, mask cpu.Mask, prio cpu.Priority) error {
	if h.owner != p {
		return ErrForeign
	}
	if s := h.State(); s != StateCreated {
		return fmt.Errorf("%w: configure worker %d in state %s", ErrInvalidState, h.id, s)
	}

	hintErr := h.thread.Apply(mask, prio)

	if !h.state.CompareAndSwap(int32(StateCreated), int32(StateConfigured)) {
		return fmt.Errorf("%w: configure worker %d in state %s", ErrInvalidState, h.id, h.State())
	}
	h.hintErr = hintErr
	if hintErr != nil {
		debugLog("worker %d: affinity/priority hint ignored: %v", h.id, hintErr)
	}

	p.notify(h.id, StateConfigured)
	return nil
}

// Resume releases a configured worker.
func (p *Pool) Resume(h *Handle) error {
	if h.owner != p {
		return ErrForeign
	}
	if !h.state.CompareAndSwap(int32(StateConfigured), int32(StateRunning)) {
		return fmt.Errorf("%w: resume worker %d in state %s", ErrInvalidState, h.id, h.State())
	}

	p.notify(h.id, StateRunning)
	close(h.resume)
	return nil
}

// Abort releases every worker that has not been resumed yet without running
// its task. Workers already running are not affected.
func (p *Pool) Abort() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range p.handles {
		for {
			s := h.State()
			if s != StateCreated && s != StateConfigured {
				break
			}
			if h.state.CompareAndSwap(int32(s), int32(StateAborted)) {
				h.aborted.Store(true)
				p.notify(h.id, StateAborted)
				close(h.resume)
				break
			}
		}
	}
}

// JoinAll blocks until every spawned worker has finished and returns the
// first task error. Workers still parked are waited for as well, so callers
// must Resume or Abort every handle first.
//
// Without a stall timeout the wait is unbounded.
func (p *Pool) JoinAll() error {
	if !p.joined.CompareAndSwap(false, true) {
		return ErrJoined
	}

	done := make(chan struct{})
	var err error
	go func() {
		err = p.g.Wait()
		close(done)
	}()

	if werr := waitUntil(done, p.conf.stallTimeout); werr != nil {
		return werr
	}
	return err
}

func (p *Pool) transition(h *Handle, s State) {
	h.state.Store(int32(s))
	p.notify(h.id, s)
}

func (p *Pool) notify(id int, s State) {
	if p.conf.onState != nil {
		p.conf.onState(id, s)
	}
}
