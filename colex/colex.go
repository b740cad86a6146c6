// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ COLEX BIT-COMBINATION GENERATOR
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Ordered Row-Combination Stream
//
// Description:
//   Lazily enumerates every n-bit word carrying exactly k set bits, in co-lexicographic order
//   (see "Matters Computational" by Jörg Arndt, section 1.24.1). The stream is finite,
//   strictly increasing and non-restartable; callers create a fresh generator per pass.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package colex

import "main/bitutil"

// Gen walks the combinations. Use as:
//
//	for g := colex.New(n, k); g.Valid(); g.Advance() { use(g.Value()) }
type Gen struct {
	value     uint32
	endMarker uint32
}

// New sets up the first combination of k bits, i.e. 00..001111..1
// (k low bits set). Requires 0 < k <= n < 32; anything else panics.
func New(n, k int) Gen {
	if k <= 0 || k > n || n >= 32 {
		panic("colex: need 0 < k <= n < 32")
	}
	return Gen{
		value:     bitutil.NLeastBits32(k),
		endMarker: uint32(1) << n,
	}
}

// Valid reports whether the generator still holds a combination.
//
//go:nosplit
//go:inline
func (g *Gen) Valid() bool {
	return g.value&g.endMarker == 0
}

// Value returns the current combination.
//
//go:nosplit
//go:inline
func (g *Gen) Value() uint32 {
	return g.value
}

// Advance steps to the next combination in colex order: promote the lowest
// run of ones by one position, then park the remainder of that run at the
// low end of the word, one bit shorter.
//
//go:nosplit
//go:inline
func (g *Gen) Advance() {
	lowestSetBit := g.value & -g.value
	g.value += lowestSetBit
	lowestBlock := (g.value & -g.value) - lowestSetBit

	for lowestBlock&1 == 0 {
		lowestBlock >>= 1
	}

	g.value |= lowestBlock >> 1
}
