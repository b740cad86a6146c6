// Drives the engine over real quarter stores on small even boards under the
// single-threaded policy, across symmetry and packing mixes. The engine's
// only observable is the count, so the assertions are the published A000170
// values.
package quadrants_test

import (
	"testing"

	"main/constants"
	"main/freeze"
	"main/pack"
	"main/qsym"
	"main/quadrants"
	"main/scheduler"
	"main/sieve"
	"main/start"
	"main/subsquare"
)

type quarterMix int

const (
	noSymIter quarterMix = iota
	noSymColumns
	rowSymIter
)

func runEmptyStart(size int, mix quarterMix) uint64 {
	cfg := constants.ForSize(size)
	quarterSize := size / 2

	var pk pack.Packing
	switch mix {
	case noSymColumns:
		pk = pack.NewColumns(quarterSize)
	default:
		pk = pack.NewIter(quarterSize)
	}

	var symm qsym.Symmetry
	if mix == rowSymIter {
		symm = qsym.NewRowSymmetry(quarterSize, pk)
	} else {
		symm = qsym.NewNoSymmetry(quarterSize, pk)
	}

	quarter := subsquare.New(quarterSize, symm, pk)
	quad := quadrants.New(size, quarter)

	st := start.NewEmpty(size)
	halfLen, holeCount := st.SieveSpec()
	sink := sieve.New(cfg, halfLen, holeCount)
	frz := freeze.New(sieve.New(cfg, halfLen, holeCount), false)
	frz.Reg(sink)

	env := &quadrants.Context{
		Start:   st,
		Worker:  &scheduler.Worker{},
		Sink:    sink,
		Freeze:  frz,
		Divider: scheduler.NewDivider(0, 1),
	}

	res := quad.Run(env)
	quad.Shrink(env)
	return res
}

func TestEvenBoards(t *testing.T) {
	if got := runEmptyStart(6, noSymIter); got != 4 {
		t.Fatalf("6x6 count = %d, want 4", got)
	}
	if got := runEmptyStart(8, noSymIter); got != 92 {
		t.Fatalf("8x8 count = %d, want 92", got)
	}
}

func TestQuarterStoreMixes(t *testing.T) {
	if got := runEmptyStart(8, noSymColumns); got != 92 {
		t.Fatalf("8x8 over the compact layout = %d, want 92", got)
	}
	if got := runEmptyStart(8, rowSymIter); got != 92 {
		t.Fatalf("8x8 over the folded store = %d, want 92", got)
	}
}
