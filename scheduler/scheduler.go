// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ WORKER SCHEDULER & PHASE COORDINATION
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Barrier + Atomic Work-Ticket Distribution
//
// Description:
//   Runs W copies of the counting function on core-pinned OS threads. Coordination is two
//   primitives only: a cyclic barrier of arity W separating the counting phases, and one
//   atomic 64-bit ticket distributing work slices. Each worker keeps two cursors; Rejected
//   bumps the local cursor and claims a fresh ticket on a hit, so accepted indices partition
//   the natural numbers across workers with no locks in the hot path.
//
// Threading model:
//   - Suspension happens only at barrier points.
//   - One ignored Rejected call seeds each worker's cursors before the counting function
//     runs; the protocol depends on it.
//   - A worker count of one selects the single-threaded policy: no barrier, no tickets,
//     every index accepted.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package scheduler

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Scheduler owns the shared coordination state for one counting run.
type Scheduler struct {
	workers int
	barrier barrier
	work    atomic.Uint64
}

// New creates a scheduler for the given worker count. Counts below one fall
// back to a single worker.
func New(workerCount int) *Scheduler {
	if workerCount < 1 {
		workerCount = 1
	}

	s := &Scheduler{workers: workerCount}
	s.work.Store(2)
	s.barrier.init(workerCount)
	return s
}

// Threaded reports whether shared state needs the merge/clear choreography.
func (s *Scheduler) Threaded() bool {
	return s.workers > 1
}

// Launch runs fn on every worker and returns the summed results. Workers
// lock their OS thread and pin to consecutive cores so the per-thread
// matcher state keeps NUMA locality across phases.
func (s *Scheduler) Launch(fn func(*Worker) uint64) uint64 {
	if !s.Threaded() {
		return fn(&Worker{})
	}

	totals := make([]uint64, s.workers)
	var g errgroup.Group

	for i := range totals {
		i := i
		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			setAffinity(i)

			w := Worker{sch: s, next: 1}
			_ = w.Rejected() // seeds the cursors; must be called once and ignored
			totals[i] = fn(&w)
			return nil
		})
	}

	_ = g.Wait() // workers return no errors

	var total uint64
	for _, t := range totals {
		total += t
	}
	return total
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// WORKER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Worker is one thread's view of the scheduler. A zero Worker is the
// single-threaded policy: Sync is a no-op and every index is accepted.
type Worker struct {
	sch  *Scheduler
	curr uint64
	next uint64
}

// Threaded reports whether this worker coordinates with others.
//
//go:nosplit
//go:inline
func (w *Worker) Threaded() bool {
	return w.sch != nil
}

// Sync blocks until every worker arrives at the same phase boundary.
func (w *Worker) Sync() {
	if w.sch != nil {
		w.sch.barrier.wait()
	}
}

// Rejected advances this worker's cursor and reports whether the current
// index belongs to another worker. On a cursor hit the worker claims the
// next ticket and owns the index.
//
//go:nosplit
//go:inline
func (w *Worker) Rejected() bool {
	if w.sch == nil {
		return false
	}

	w.curr++
	if w.curr == w.next {
		w.next = w.sch.work.Add(1) - 1
		return false
	}

	return true
}

// Accepted is the complement of Rejected; it advances the cursor too.
//
//go:nosplit
//go:inline
func (w *Worker) Accepted() bool {
	return !w.Rejected()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CYCLIC BARRIER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// barrier is a reusable rendezvous of fixed arity. The mutex hand-off gives
// every phase the acquire/release edge the shared matcher state relies on.
type barrier struct {
	mu    sync.Mutex
	cond  sync.Cond
	arity int
	count int
	gen   uint64
}

func (b *barrier) init(arity int) {
	b.arity = arity
	b.cond.L = &b.mu
}

func (b *barrier) wait() {
	b.mu.Lock()
	gen := b.gen

	b.count++
	if b.count == b.arity {
		b.count = 0
		b.gen++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}

	for gen == b.gen {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// DIVIDER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Divider returns false one out of parts times. Useful to investigate a
// long-running program, to apply pgo, or to divide work into smaller parts.
type Divider struct {
	counter int
	parts   int
}

// NewDivider starts the skip cycle at start out of parts.
func NewDivider(start, parts int) Divider {
	return Divider{counter: start, parts: parts}
}

// Skip reports whether the current outer iteration belongs to another part.
//
//go:nosplit
//go:inline
func (d *Divider) Skip() bool {
	d.counter++
	if d.counter >= d.parts {
		d.counter = 0
	}
	return d.counter != 0
}
