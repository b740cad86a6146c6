// Exercises the matcher across group sizes, chunk widths and pattern-count
// regimes: raw-only, promoted, mixed, and multi-piece stores must all agree
// on the rotation-stream counts.
package matchtr

import (
	"math/bits"
	"testing"

	"main/bitutil"
	"main/constants"
)

type regime int

const (
	belowMin regime = iota
	belowMax
	belowMaxPlusMin
	aboveMaxPlusMin
)

func testMatchTr(t *testing.T, grpSize, chunkSize, sizeMod int, c regime) {
	t.Helper()
	size := 24 + sizeMod
	pat := uint64(0xFEFEFEFEFEFEFEFE)

	var patCnt, trSize int
	switch c {
	case belowMin:
		patCnt, trSize = 32, 0
	case belowMax:
		patCnt, trSize = 48, 1
	case belowMaxPlusMin:
		patCnt, trSize = grpSize*64+32, 1
	case aboveMaxPlusMin:
		patCnt, trSize = grpSize*64+48, 2
	}
	res := uint64(patCnt / 8)

	cfg := constants.Cfg{
		SieveCuts:      0,
		MatchChunkSize: chunkSize,
		MatchGroupSize: grpSize,
		MatchMinSize:   40,
	}
	m := New(size, cfg)
	if len(m.patterns) != 0 || len(m.pieces) != 0 {
		t.Fatal("fresh matcher must be empty")
	}

	for i := 0; i != patCnt; i++ {
		m.AppendPattern(pat & bitutil.NLeastBits64(size))
		pat = bits.RotateLeft64(pat, 1)
	}

	if len(m.patterns) != patCnt%(grpSize*64) {
		t.Fatalf("raw buffer holds %d, want %d", len(m.patterns), patCnt%(grpSize*64))
	}
	if len(m.pieces) != patCnt/(grpSize*64) {
		t.Fatalf("%d pieces, want %d", len(m.pieces), patCnt/(grpSize*64))
	}

	m.ClosePatterns()
	wantRaw := 0
	if patCnt%(grpSize*64) == 32 {
		wantRaw = 32 // below patMin, promotion skipped
	}
	if len(m.patterns) != wantRaw {
		t.Fatalf("after close: raw buffer holds %d, want %d", len(m.patterns), wantRaw)
	}
	if len(m.pieces) != trSize {
		t.Fatalf("after close: %d pieces, want %d", len(m.pieces), trSize)
	}

	if got := m.Count(1); got != res {
		t.Fatalf("grp=%d chunk=%d size=%d: Count(1) = %d, want %d",
			grpSize, chunkSize, size, got, res)
	}
	if got := m.Count(1 << (size - 1)); got != res {
		t.Fatalf("grp=%d chunk=%d size=%d: Count(top) = %d, want %d",
			grpSize, chunkSize, size, got, res)
	}

	m.Clear()
	if len(m.patterns) != 0 || len(m.pieces) != 0 {
		t.Fatal("Clear must drop everything")
	}
	if m.Count(1) != 0 || m.Count(1<<(size-1)) != 0 {
		t.Fatal("cleared matcher must count zero")
	}
}

func runRegime(t *testing.T, c regime) {
	t.Helper()
	for _, grpSize := range []int{1, 8} {
		for chunkSize := 1; chunkSize <= 3; chunkSize++ {
			for sizeMod := 0; sizeMod != chunkSize; sizeMod++ {
				testMatchTr(t, grpSize, chunkSize, sizeMod, c)
			}
		}
	}
}

func TestBelowMin(t *testing.T)        { runRegime(t, belowMin) }
func TestBelowMax(t *testing.T)        { runRegime(t, belowMax) }
func TestBelowMaxPlusMin(t *testing.T) { runRegime(t, belowMaxPlusMin) }
func TestAboveMaxPlusMin(t *testing.T) { runRegime(t, aboveMaxPlusMin) }

// -----------------------------------------------------------------------------
// ░░ PassTo Conservation ░░
// -----------------------------------------------------------------------------

func TestPassToConservesCounts(t *testing.T) {
	const size = 25
	cfg := constants.Cfg{MatchChunkSize: 2, MatchGroupSize: 1, MatchMinSize: 40}
	src := New(size, cfg)
	dst := New(size, cfg)

	pat := uint64(0xFEFEFEFEFEFEFEFE)
	for i := 0; i != 100; i++ { // one promoted piece plus 36 raw in src
		src.AppendPattern(pat & bitutil.NLeastBits64(size))
		pat = bits.RotateLeft64(pat, 1)
	}
	for i := 0; i != 40; i++ { // raw patterns already waiting in dst
		dst.AppendPattern(pat & bitutil.NLeastBits64(size))
		pat = bits.RotateLeft64(pat, 1)
	}

	item := uint64(1)
	want := src.Count(item) + dst.Count(item)

	src.PassTo(dst)
	dst.ClosePatterns()

	if src.Count(item) != 0 {
		t.Fatal("source must be empty after PassTo")
	}
	if got := dst.Count(item); got != want {
		t.Fatalf("merged count = %d, want %d", got, want)
	}
}
