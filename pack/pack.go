// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ INDEX PACKING STRATEGIES
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Quarter-Board Index Layout
//
// Description:
//   Three policies mapping a (rows, columns) pair to a position in the quarter-board store's
//   flat index. Nothing keeps a full 2D layout; Iter keeps the layout but skips column values
//   whose population differs from the row set during iteration; Columns drops those cells from
//   the layout entirely via rank tables. All tables are built once at construction.
//
// Contract (all three):
//   - ForColumns yields strictly increasing, unique indices for a given row set, each equal
//     to ColIndex(rowInfo, columns), all within [rowInfo.PosInIndex, RowInfo(rows+1).PosInIndex).
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package pack

import (
	"math/bits"

	"main/bitutil"
)

// RowInfo caches what a symmetry cell-factory needs to know about a row set.
type RowInfo struct {
	PosInIndex  uint32
	PosInPacker uint32
}

// Packing is the index-layout policy consumed by the quarter-board store.
type Packing interface {
	LastIndex() uint32
	RowInfo(rows uint32) RowInfo
	ColIndex(ri RowInfo, columns uint32) uint32
	ForColumns(ri RowInfo, rows uint32, action func(index, columns uint32))
}

func checkSize(size int) {
	if size < 1 || size > 15 {
		panic("pack: size must be within 1..15")
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PACK NOTHING — PLAIN 2D LAYOUT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Nothing lays the index out as rows * 2^size + columns and visits every
// column value per row.
type Nothing struct {
	rcCnt uint32
}

func NewNothing(size int) *Nothing {
	checkSize(size)
	return &Nothing{rcCnt: uint32(1) << size}
}

func (p *Nothing) LastIndex() uint32 {
	return p.rcCnt * p.rcCnt
}

func (p *Nothing) RowInfo(rows uint32) RowInfo {
	return RowInfo{PosInIndex: rows * p.rcCnt}
}

func (p *Nothing) ColIndex(ri RowInfo, columns uint32) uint32 {
	return ri.PosInIndex + columns
}

func (p *Nothing) ForColumns(ri RowInfo, _ uint32, action func(index, columns uint32)) {
	for columns := uint32(0); columns != p.rcCnt; columns++ {
		action(ri.PosInIndex+columns, columns)
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PACK ITER — 2D LAYOUT, POPULATION-AWARE ITERATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Iter keeps the 2D layout of Nothing but iterates only column values whose
// popcount matches the row set, through a table grouped by population.
type Iter struct {
	rcCnt     uint32
	unpack    []uint16 // all size-bit words ordered by popcount, then value
	unpackInd []uint32 // unpack offsets per popcount, one extra sentinel
}

func NewIter(size int) *Iter {
	checkSize(size)
	rcCnt := uint32(1) << size

	unpack := make([]uint16, rcCnt)
	pos := 0
	for pop := 0; pop <= size; pop++ {
		for i := uint32(0); i != rcCnt; i++ {
			if bits.OnesCount32(i) == pop {
				unpack[pos] = uint16(i)
				pos++
			}
		}
	}

	unpackInd := make([]uint32, size+2)
	for i := 0; i <= size; i++ {
		unpackInd[i+1] = unpackInd[i] + bitutil.Combinations(size, i)
	}

	return &Iter{rcCnt: rcCnt, unpack: unpack, unpackInd: unpackInd}
}

func (p *Iter) LastIndex() uint32 {
	return p.rcCnt * p.rcCnt
}

func (p *Iter) RowInfo(rows uint32) RowInfo {
	return RowInfo{PosInIndex: rows * p.rcCnt}
}

func (p *Iter) ColIndex(ri RowInfo, columns uint32) uint32 {
	return ri.PosInIndex + columns
}

func (p *Iter) ForColumns(ri RowInfo, rows uint32, action func(index, columns uint32)) {
	pop := bits.OnesCount32(rows)
	begin, end := p.unpackInd[pop], p.unpackInd[pop+1]

	for _, columns := range p.unpack[begin:end] {
		action(ri.PosInIndex+uint32(columns), uint32(columns))
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PACK COLUMNS — COMPACT LAYOUT
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Columns skips every (rows, columns) pair with mismatched popcounts: each
// row set occupies C(size, popcount) slots, located via a prefix-sum table,
// and each valid column value maps to its rank within its popcount class.
type Columns struct {
	unpack *Iter
	rcCnt  uint32
	rowInd []uint32 // prefix sums of per-row slot counts, 2^size + 1 entries
	packer []uint16 // rank of each column value within its popcount class
}

func NewColumns(size int) *Columns {
	checkSize(size)
	rcCnt := uint32(1) << size

	packer := make([]uint16, rcCnt*uint32(size+1))
	for pop := 0; pop <= size; pop++ {
		rank := uint16(0)
		base := uint32(pop) * rcCnt
		for i := uint32(0); i != rcCnt; i++ {
			if bits.OnesCount32(i) == pop {
				packer[base+i] = rank
				rank++
			}
		}
	}

	rowInd := make([]uint32, rcCnt+1)
	for i := uint32(0); i != rcCnt; i++ {
		rowInd[i+1] = rowInd[i] + bitutil.Combinations(size, bits.OnesCount32(i))
	}

	return &Columns{unpack: NewIter(size), rcCnt: rcCnt, rowInd: rowInd, packer: packer}
}

func (p *Columns) LastIndex() uint32 {
	return p.rowInd[len(p.rowInd)-1]
}

func (p *Columns) RowInfo(rows uint32) RowInfo {
	return RowInfo{
		PosInIndex:  p.rowInd[rows],
		PosInPacker: uint32(bits.OnesCount32(rows)) * p.rcCnt,
	}
}

func (p *Columns) ColIndex(ri RowInfo, columns uint32) uint32 {
	return ri.PosInIndex + uint32(p.packer[ri.PosInPacker+columns])
}

func (p *Columns) ForColumns(ri RowInfo, rows uint32, action func(index, columns uint32)) {
	pop := bits.OnesCount32(rows)
	unpackPos := p.unpack.unpackInd[pop]
	end := p.rowInd[rows+1] - ri.PosInIndex

	for i := uint32(0); i != end; i++ {
		action(ri.PosInIndex+i, uint32(p.unpack.unpack[unpackPos+i]))
	}
}
