// Checks the three symmetry policies in several simple cases; for
// FullSymmetry only 2 of the 8 symmetry cases are exercised directly.
package qsym

import (
	"testing"

	"main/pack"
)

func TestNoSymmetryUniq(t *testing.T) {
	s := NewNoSymmetry(9, pack.NewNothing(9))
	if !s.IsUniq(0x100, 0x40) {
		t.Fatal("NoSymmetry must accept everything")
	}
}

func TestRowSymmetryUniq(t *testing.T) {
	s := NewRowSymmetry(9, pack.NewNothing(9))
	if !s.IsUniq(4, 8) {
		t.Fatal("rows below their reversal must be unique")
	}
	if !s.IsUniq(0x10, 8) {
		t.Fatal("self-symmetric rows must be unique")
	}
	if s.IsUniq(0x40, 8) {
		t.Fatal("rows above their reversal must be dropped")
	}
}

func TestFullSymmetryUniq(t *testing.T) {
	s := NewFullSymmetry(9, pack.NewNothing(9))

	for _, c := range [][2]uint32{{4, 8}, {4, 0x10}} {
		if !s.IsUniq(c[0], c[1]) {
			t.Fatalf("IsUniq(%#x, %#x) should hold", c[0], c[1])
		}
	}
	for _, c := range [][2]uint32{
		{0x40, 8}, {0x40, 0x10}, {4, 0x80}, {0x10, 0x80}, {8, 4}, {0x10, 4},
	} {
		if s.IsUniq(c[0], c[1]) {
			t.Fatalf("IsUniq(%#x, %#x) should not hold", c[0], c[1])
		}
	}
}

func TestNoSymmetryCellInd(t *testing.T) {
	s := NewNoSymmetry(9, pack.NewNothing(9))
	cf := s.WithRows(0x100)
	ci := cf.MakeCellInd(0x40)

	if !s.Filter(ci, false, 1) || !s.Filter(ci, true, 1) {
		t.Fatal("NoSymmetry never blocks filtering")
	}
	if s.Reflect(ci) {
		t.Fatal("NoSymmetry never reflects")
	}
	if d := s.Fix(Diagonals{1, 2}, ci); d != (Diagonals{1, 2}) {
		t.Fatalf("Fix must be identity, got %v", d)
	}
}

func TestRowSymmetryCellInd(t *testing.T) {
	s := NewRowSymmetry(9, pack.NewNothing(9))
	cf := s.WithRows(0x100)
	ci := cf.MakeCellInd(0x40)

	if !s.Filter(ci, false, 1) || !s.Filter(ci, true, 1) {
		t.Fatal("RowSymmetry never blocks filtering")
	}
	if !s.Reflect(ci) {
		t.Fatal("reversed rows must reflect")
	}
	if d := s.Fix(Diagonals{1, 2}, ci); d != (Diagonals{2, 1}) {
		t.Fatalf("Fix must swap diagonals, got %v", d)
	}
}

func TestFullSymmetryHV(t *testing.T) {
	s := NewFullSymmetry(9, pack.NewNothing(9))
	cf := s.WithRows(0x100)
	ci := cf.MakeCellInd(0x40)

	if s.Filter(ci, false, 1) || s.Filter(ci, true, 1) {
		t.Fatal("reversed diagonals must block off-center filtering")
	}
	if !s.Filter(ci, false, 0x100) || !s.Filter(ci, true, 0x100) {
		t.Fatal("center bit must always be filterable")
	}
	if s.Reflect(ci) {
		t.Fatal("double swap must cancel the reflection")
	}
	if d := s.Fix(Diagonals{1, 2}, ci); d != (Diagonals{0x10000, 0x8000}) {
		t.Fatalf("Fix = %v, want both diagonals reversed", d)
	}
}

func TestFullSymmetryHVD(t *testing.T) {
	s := NewFullSymmetry(9, pack.NewNothing(9))
	cf := s.WithRows(0x40)
	ci := cf.MakeCellInd(0x100)

	if !s.Filter(ci, false, 1) {
		t.Fatal("diagonal 0 is not reversed here, filtering must pass")
	}
	if s.Filter(ci, true, 1) {
		t.Fatal("diagonal 1 is reversed here, filtering must be blocked")
	}
	if !s.Filter(ci, false, 0x100) || !s.Filter(ci, true, 0x100) {
		t.Fatal("center bit must always be filterable")
	}
	if s.Reflect(ci) {
		t.Fatal("swap flags must cancel out")
	}
	if d := s.Fix(Diagonals{1, 2}, ci); d != (Diagonals{1, 0x8000}) {
		t.Fatalf("Fix = %v, want only diagonal 1 reversed", d)
	}
}
