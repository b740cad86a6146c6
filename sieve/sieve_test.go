// Validates the superset enumeration: with one always-compatible pattern
// per matcher slot, an item with cut index i must count exactly the number
// of supersets of i in the cut universe — under both splitting policies.
package sieve

import (
	"math/bits"
	"testing"

	"main/constants"
)

func testSieveCount(t *testing.T, bmi bool, cut int) {
	t.Helper()
	cfg := constants.Cfg{
		SieveCuts:      cut,
		MatchChunkSize: 5,
		MatchGroupSize: 8,
		MatchMinSize:   40,
		BmiIntrin:      bmi,
	}
	s := New(cfg, 17, 0)
	// Leave only second-half bits 0..7 significant, forcing the two
	// splitting policies onto the same cut positions.
	s.SetHoles([2]uint64{0x1FFFF, 0x1FF00})

	for p := uint32(0); p != 1<<cut; p++ {
		s.AppendPattern(0, p<<(8-cut))
	}
	s.ClosePatterns()

	for i := uint32(0); i != 1<<cut; i++ {
		want := uint64(1) << (cut - bits.OnesCount32(i))
		if got := s.Count(0, i<<(8-cut)); got != want {
			t.Fatalf("bmi=%v cut=%d i=%d: Count = %d, want %d", bmi, cut, i, got, want)
		}
	}
}

func TestCount(t *testing.T) {
	for _, bmi := range []bool{false, true} {
		for cut := 0; cut != 3; cut++ {
			testSieveCount(t, bmi, cut)
		}
	}
}

func TestClearDropsPatterns(t *testing.T) {
	cfg := constants.Cfg{MatchChunkSize: 5, MatchGroupSize: 8, MatchMinSize: 40}
	s := New(cfg, 17, 0)

	s.AppendPattern(0, 0)
	s.ClosePatterns()
	if s.Count(0, 0) != 1 {
		t.Fatal("single compatible pattern must count once")
	}

	s.Clear()
	s.Shrink()
	if s.Count(0, 0) != 0 {
		t.Fatal("cleared sieve must count zero")
	}
}
