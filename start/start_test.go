// Checks seed geometry: gap insertion in StretchRows, locked rows/columns,
// locked-queen diagonals, and the per-variant sieve shapes.
package start

import (
	"testing"

	"main/bitutil"
)

func TestEmpty(t *testing.T) {
	s := NewEmpty(8)

	if hl, holes := s.SieveSpec(); hl != 7 || holes != 1 {
		t.Fatalf("sieve spec = (%d, %d)", hl, holes)
	}
	if s.StretchRows(0b1010) != 0b1010 {
		t.Fatal("no locked rows, stretch must be identity")
	}
	if s.FreeRows() != 0xFF || s.Columns() != 0 {
		t.Fatal("empty start must free every row and lock no column")
	}

	n := 0
	for g := s.BitComb(); g.Valid(); g.Advance() {
		n++
	}
	if want := int(bitutil.Combinations(8, 4)); n != want {
		t.Fatalf("row combinations = %d, want %d", n, want)
	}
	if !s.InternalSymmetry() || !s.DiagSymmetry() || s.FilterDiag() {
		t.Fatal("symmetry switches wrong for the even case")
	}
}

func TestCenterStretchRows(t *testing.T) {
	s := NewCenter(9)

	if got := s.StretchRows(0x0F); got != 0x0F {
		t.Fatalf("low rows must pass through, got %#x", got)
	}
	if got := s.StretchRows(0xF0); got != 0x1E0 {
		t.Fatalf("high rows must skip the center, got %#x", got)
	}
	if s.FreeRows() != 0x1EF {
		t.Fatalf("free rows = %#x, want center row locked", s.FreeRows())
	}
	if s.Columns() != 0x10 {
		t.Fatalf("columns = %#x, want the center column", s.Columns())
	}
	if hl, holes := s.SieveSpec(); hl != 7 || holes != 1 {
		t.Fatalf("sieve spec = (%d, %d)", hl, holes)
	}
	if !s.InternalSymmetry() || s.DiagSymmetry() || !s.FilterDiag() {
		t.Fatal("symmetry switches wrong for the center case")
	}
}

func TestTwoDSeedState(t *testing.T) {
	s := NewTwoD(9)
	s.setColumnRow(6, 7)

	if s.Columns() != 0x50 {
		t.Fatalf("columns = %#x, want seed and center columns", s.Columns())
	}
	if s.FreeRows() != 0x16F {
		t.Fatalf("free rows = %#x, want rows 4 and 7 locked", s.FreeRows())
	}
	if s.diags[0] != 0x420 || s.diags[1] != 0xC00 {
		t.Fatalf("locked diagonals = %#x/%#x", s.diags[0], s.diags[1])
	}

	holes := s.mkHoles()
	if holes[0] != 0x420>>5 || holes[1] != 0xC00>>5 {
		t.Fatalf("holes = %#x/%#x", holes[0], holes[1])
	}

	if hl, hc := s.SieveSpec(); hl != 7 || hc != 2 {
		t.Fatalf("sieve spec = (%d, %d)", hl, hc)
	}
	if s.InternalSymmetry() || s.DiagSymmetry() || !s.FilterDiag() {
		t.Fatal("symmetry switches wrong for the two-queen case")
	}
}

func TestOneDOverrides(t *testing.T) {
	s := NewOneD(9)

	if hl, hc := s.SieveSpec(); hl != 7 || hc != 1 {
		t.Fatalf("sieve spec = (%d, %d)", hl, hc)
	}
	if s.FilterDiag() {
		t.Fatal("border seed must not filter diagonals")
	}
}
