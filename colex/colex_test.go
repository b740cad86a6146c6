// Exhaustive generator validation for every k at several bit widths: the
// stream must be strictly increasing, contain C(n, k) elements, and every
// element must carry exactly k set bits.
package colex

import (
	"math/bits"
	"testing"

	"main/bitutil"
)

func collect(n, k int) []uint32 {
	var sink []uint32
	for g := New(n, k); g.Valid(); g.Advance() {
		sink = append(sink, g.Value())
	}
	return sink
}

func testNK(t *testing.T, n, k int) {
	t.Helper()
	sink := collect(n, k)

	if want := bitutil.Combinations(n, k); uint32(len(sink)) != want {
		t.Fatalf("n=%d k=%d: got %d combinations, want %d", n, k, len(sink), want)
	}

	prev := uint32(0)
	for i, v := range sink {
		if bits.OnesCount32(v) != k {
			t.Fatalf("n=%d k=%d: element %#b has popcount %d", n, k, v, bits.OnesCount32(v))
		}
		if i > 0 && v <= prev {
			t.Fatalf("n=%d k=%d: sequence not strictly increasing at %#b", n, k, v)
		}
		prev = v
	}
}

func TestAll(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 10} {
		for k := 1; k <= n; k++ {
			testNK(t, n, k)
		}
	}
}

func TestFirstAndLast(t *testing.T) {
	sink := collect(5, 3)
	if sink[0] != 0b00111 {
		t.Fatalf("first = %#b", sink[0])
	}
	if sink[len(sink)-1] != 0b11100 {
		t.Fatalf("last = %#b", sink[len(sink)-1])
	}
}

func TestBadParameters(t *testing.T) {
	for _, c := range [][2]int{{4, 0}, {4, 5}, {32, 3}, {0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("New(%d, %d) should panic", c[0], c[1])
				}
			}()
			New(c[0], c[1])
		}()
	}
}
