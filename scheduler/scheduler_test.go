// Validates the ticket protocol (accepted indices partition the naturals),
// barrier reuse across generations, and the divider skip pattern.
package scheduler

import (
	"sync"
	"testing"
)

func TestTicketPartition(t *testing.T) {
	const workers = 4
	const indices = 1000
	s := New(workers)

	var mu sync.Mutex
	owners := make(map[int]int)

	s.Launch(func(w *Worker) uint64 {
		for i := 0; i != indices; i++ {
			if !w.Rejected() {
				mu.Lock()
				owners[i]++
				mu.Unlock()
			}
		}
		return 0
	})

	for i := 0; i != indices; i++ {
		if owners[i] != 1 {
			t.Fatalf("index %d claimed %d times", i, owners[i])
		}
	}
}

func TestSingleThreadedAcceptsEverything(t *testing.T) {
	s := New(1)
	res := s.Launch(func(w *Worker) uint64 {
		var accepted uint64
		for i := 0; i != 100; i++ {
			w.Sync() // must not block
			if w.Accepted() {
				accepted++
			}
		}
		return accepted
	})
	if res != 100 {
		t.Fatalf("single-threaded worker accepted %d of 100", res)
	}
}

func TestBarrierPhases(t *testing.T) {
	const workers = 8
	const phases = 50
	s := New(workers)

	var stage [phases]int32
	var mu sync.Mutex

	s.Launch(func(w *Worker) uint64 {
		for p := 0; p != phases; p++ {
			mu.Lock()
			stage[p]++
			mu.Unlock()
			w.Sync()
			// after the barrier every worker must have bumped this phase
			mu.Lock()
			got := stage[p]
			mu.Unlock()
			if got != workers {
				t.Errorf("phase %d: saw %d arrivals after barrier", p, got)
			}
			w.Sync()
		}
		return 0
	})
}

func TestLaunchSumsResults(t *testing.T) {
	s := New(3)
	res := s.Launch(func(*Worker) uint64 { return 7 })
	if res != 21 {
		t.Fatalf("Launch summed %d, want 21", res)
	}
}

func TestDivider(t *testing.T) {
	d := NewDivider(0, 3)
	var kept []int
	for i := 0; i != 9; i++ {
		if !d.Skip() {
			kept = append(kept, i)
		}
	}
	if len(kept) != 3 || kept[0] != 2 || kept[1] != 5 || kept[2] != 8 {
		t.Fatalf("kept %v", kept)
	}

	whole := NewDivider(0, 1)
	for i := 0; i != 5; i++ {
		if whole.Skip() {
			t.Fatal("parts=1 must keep every iteration")
		}
	}

	// the part offset shifts which iterations are kept
	shifted := NewDivider(1, 3)
	var keptShifted []int
	for i := 0; i != 9; i++ {
		if !shifted.Skip() {
			keptShifted = append(keptShifted, i)
		}
	}
	if len(keptShifted) != 3 || keptShifted[0] != 1 {
		t.Fatalf("kept %v with offset 1", keptShifted)
	}
}
