// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ FREEZE — THREAD-PRIVATE TO SHARED MERGE POINT
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Sieve Rendezvous
//
// Description:
//   Merges mutable thread-private sieves into one shared sieve that the counting phase then
//   reads as immutable. Workers register their private sinks at setup; Freeze runs once per
//   row-combination between barriers, with the ticket protocol spreading the matcher slots
//   across workers. The registered pointers are borrows scoped to the worker invocation —
//   the merged sieve reaches back into every worker's sink only inside Pull, serialized by
//   the preceding barrier.
//
//   The single-threaded policy skips the merge entirely: the lone sink is finalized and
//   consumed in place.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package freeze

import (
	"sync"

	"main/scheduler"
	"main/sieve"
)

// Freeze owns the shared sieve and the list of registered worker sinks.
type Freeze struct {
	mu       sync.Mutex
	obj      *sieve.Sieve
	ptrs     []*sieve.Sieve
	threaded bool
}

// New wraps the shared sieve. With threaded false the shared object stays
// untouched and the first registered sink serves both roles.
func New(obj *sieve.Sieve, threaded bool) *Freeze {
	return &Freeze{obj: obj, threaded: threaded}
}

// Obj returns the merged sieve for the counting phase.
func (f *Freeze) Obj() *sieve.Sieve {
	return f.obj
}

// Reg registers one worker's private sink. Called during setup only.
func (f *Freeze) Reg(p *sieve.Sieve) {
	f.mu.Lock()
	f.ptrs = append(f.ptrs, p)
	f.mu.Unlock()
}

// Merge pulls every registered sink into the shared sieve, cooperatively
// across workers. Must sit between barriers.
func (f *Freeze) Merge(w *scheduler.Worker) {
	if f.threaded {
		f.obj.Pull(f.ptrs, w)
	} else {
		f.ptrs[0].ClosePatterns()
	}
}

// Clear resets the merged state for the next row-combination.
func (f *Freeze) Clear() {
	if f.threaded {
		f.obj.Clear()
	} else {
		f.ptrs[0].Clear()
	}
}

// Shrink relinquishes memory of the possibly unused merged object. The
// single-threaded sink keeps its buffers — they are reused immediately.
func (f *Freeze) Shrink() {
	if f.threaded {
		f.obj.Shrink()
	}
}
