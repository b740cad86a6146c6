// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ QUARTER-BOARD SYMMETRY STRATEGIES
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Cell Canonicalization Policies
//
// Description:
//   Three policies controlling how compactly the quarter-board store keeps its data:
//   NoSymmetry stores everything (fast, largest), RowSymmetry folds one reflection (half the
//   size), FullSymmetry folds the complete 8-fold square group (1/8 size, slowest). A policy
//   canonicalizes (rows, columns) pairs into cell identities and records which transforms it
//   applied as flag bits, so the engine can undo them on retrieved diagonal pairs with Fix.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package qsym

import (
	"main/bitutil"
	"main/pack"
)

// Diagonals is one stored pair of occupied-diagonal sets.
type Diagonals = [2]uint32

// Flags records the canonicalization transforms applied to a cell.
type Flags struct {
	RevDiag  [2]bool
	SwapDiag bool
}

// Cell identifies one (rows, columns) slot of the store, post-canonicalization.
type Cell struct {
	Index   uint32
	Rows    uint32
	Columns uint32
	Flags   Flags
}

// CellInd is the slim form of Cell used during diagonal retrieval.
type CellInd struct {
	Index uint32
	Flags Flags
}

// Symmetry is the canonicalization policy consumed by the quarter-board
// store and the quadrants engine.
type Symmetry interface {
	// WithRows prepares a factory for all cells sharing one row set.
	WithRows(rows uint32) CellFactory
	// IsUniq reports whether the store should keep this (rows, columns)
	// pair, i.e. whether it lies in the canonical fundamental domain.
	IsUniq(rows, columns uint32) bool
	// Filter reports whether the store may prune this cell's diagonal list
	// by the special bit. The other flag selects which side of the pairing
	// is being traversed.
	Filter(ci CellInd, other bool, bit uint32) bool
	// Reflect reports whether the cell's diagonals are swapped.
	Reflect(ci CellInd) bool
	// Fix undoes the recorded transforms on a retrieved diagonal pair.
	Fix(d Diagonals, ci CellInd) Diagonals
	// Factor is the work reduction this policy buys: 1, 2 or 8.
	Factor() int

	makeCellInd(cf *CellFactory, rows, columns uint32, flags Flags) CellInd
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CELL FACTORY
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// CellFactory caches the canonicalized row set, its packing info and the
// transform flags for one ForCells pass.
type CellFactory struct {
	owner   Symmetry
	rowInfo pack.RowInfo
	rows    uint32
	flags   Flags
}

func (cf *CellFactory) RowInfo() pack.RowInfo {
	return cf.rowInfo
}

func (cf *CellFactory) Rows() uint32 {
	return cf.rows
}

func (cf *CellFactory) MakeCell(index, columns uint32) Cell {
	return Cell{Index: index, Rows: cf.rows, Columns: columns, Flags: cf.flags}
}

func (cf *CellFactory) MakeCellInd(columns uint32) CellInd {
	return cf.owner.makeCellInd(cf, cf.rows, columns, cf.flags)
}

func (cf *CellFactory) MakeCellIndOf(c Cell) CellInd {
	return cf.owner.makeCellInd(cf, c.Rows, c.Columns, c.Flags)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// NO SYMMETRY (factor 1)
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// NoSymmetry keeps every partial solution under its own identity.
type NoSymmetry struct {
	size int
	pack pack.Packing
}

func NewNoSymmetry(size int, p pack.Packing) *NoSymmetry {
	return &NoSymmetry{size: size, pack: p}
}

func (s *NoSymmetry) WithRows(rows uint32) CellFactory {
	return CellFactory{owner: s, rowInfo: s.pack.RowInfo(rows), rows: rows}
}

func (s *NoSymmetry) IsUniq(uint32, uint32) bool {
	return true
}

func (s *NoSymmetry) Filter(CellInd, bool, uint32) bool {
	return true
}

func (s *NoSymmetry) Reflect(CellInd) bool {
	return false
}

func (s *NoSymmetry) Fix(d Diagonals, _ CellInd) Diagonals {
	return d
}

func (s *NoSymmetry) Factor() int {
	return 1
}

func (s *NoSymmetry) makeCellInd(cf *CellFactory, _, columns uint32, flags Flags) CellInd {
	return CellInd{Index: s.pack.ColIndex(cf.rowInfo, columns), Flags: flags}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ROW SYMMETRY (factor 2)
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// RowSymmetry keeps only row sets at or below their bit-reversed image; a
// factory built from a larger row set stores the reversed rows and flags
// the diagonal swap.
type RowSymmetry struct {
	size int
	pack pack.Packing
}

func NewRowSymmetry(size int, p pack.Packing) *RowSymmetry {
	return &RowSymmetry{size: size, pack: p}
}

func withRowsFolded(s Symmetry, p pack.Packing, size int, rows uint32) CellFactory {
	cf := CellFactory{owner: s, rows: rows}

	if reversed := bitutil.RevBits(rows, size, size); reversed < rows {
		cf.rows = reversed
		cf.flags.SwapDiag = true
	}

	cf.rowInfo = p.RowInfo(cf.rows)
	return cf
}

func (s *RowSymmetry) WithRows(rows uint32) CellFactory {
	return withRowsFolded(s, s.pack, s.size, rows)
}

func (s *RowSymmetry) IsUniq(rows, _ uint32) bool {
	return rows <= bitutil.RevBits(rows, s.size, s.size)
}

func (s *RowSymmetry) Filter(CellInd, bool, uint32) bool {
	return true
}

func (s *RowSymmetry) Reflect(ci CellInd) bool {
	return ci.Flags.SwapDiag
}

func (s *RowSymmetry) Fix(d Diagonals, ci CellInd) Diagonals {
	if ci.Flags.SwapDiag {
		return Diagonals{d[1], d[0]}
	}
	return d
}

func (s *RowSymmetry) Factor() int {
	return 2
}

func (s *RowSymmetry) makeCellInd(cf *CellFactory, _, columns uint32, flags Flags) CellInd {
	return CellInd{Index: s.pack.ColIndex(cf.rowInfo, columns), Flags: flags}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// FULL SYMMETRY (factor 8)
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// FullSymmetry canonicalizes under the complete square symmetry group:
// columns fold against their bit-reversed image, then (rows, columns) swap
// into sorted order, with three flag bits recording the applied transforms.
type FullSymmetry struct {
	size int
	pack pack.Packing
}

func NewFullSymmetry(size int, p pack.Packing) *FullSymmetry {
	return &FullSymmetry{size: size, pack: p}
}

func (s *FullSymmetry) WithRows(rows uint32) CellFactory {
	return withRowsFolded(s, s.pack, s.size, rows)
}

func (s *FullSymmetry) IsUniq(rows, columns uint32) bool {
	return rows <= bitutil.RevBits(rows, s.size, s.size) &&
		columns <= bitutil.RevBits(columns, s.size, s.size) &&
		rows <= columns
}

// Filter admits special-bit pruning only when the canonicalization did not
// reverse the diagonal the pruning would inspect; the center bit is immune
// to reversal and always prunable.
func (s *FullSymmetry) Filter(ci CellInd, other bool, bit uint32) bool {
	inCenter := bit == uint32(1)<<(s.size-1)
	return inCenter || !ci.Flags.RevDiag[b2i(other != s.Reflect(ci))]
}

func (s *FullSymmetry) Reflect(ci CellInd) bool {
	return ci.Flags.SwapDiag
}

func (s *FullSymmetry) Fix(d Diagonals, ci CellInd) Diagonals {
	dSize := s.size*2 - 1

	if ci.Flags.RevDiag[0] {
		d[0] = bitutil.RevBits(d[0], dSize, s.size)
	}

	if ci.Flags.RevDiag[1] {
		d[1] = bitutil.RevBits(d[1], dSize, s.size)
	}

	if ci.Flags.SwapDiag {
		return Diagonals{d[1], d[0]}
	}
	return d
}

func (s *FullSymmetry) Factor() int {
	return 8
}

func (s *FullSymmetry) makeCellInd(cf *CellFactory, rows, columns uint32, flags Flags) CellInd {
	rowInfo := cf.rowInfo

	if reversed := bitutil.RevBits(columns, s.size, s.size); reversed < columns {
		columns = reversed
		flags.RevDiag[0] = true
		flags.RevDiag[1] = true
		flags.SwapDiag = !flags.SwapDiag
	}

	if columns < rows {
		columns, rows = rows, columns
		flags.RevDiag[0] = !flags.RevDiag[0]
		rowInfo = s.pack.RowInfo(rows)
	}

	return CellInd{Index: s.pack.ColIndex(rowInfo, columns), Flags: flags}
}

//go:nosplit
//go:inline
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
