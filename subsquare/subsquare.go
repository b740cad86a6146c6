// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ QUARTER-BOARD PARTIAL-SOLUTION STORE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Indexed Diagonal-List Storage
//
// Description:
//   Generates and stores every partial solution (0..size queens, one per occupied row) of a
//   quarter-board, then serves them as contiguous diagonal-pair lists indexed by "cell" — a
//   packed (rows, columns) identity. Enumeration is a plain bitwise backtracker over Board;
//   storage is one flat array of diagonal pairs plus a non-decreasing offset index, so a
//   cell's list is a single slice expression.
//
// Special bit:
//   Each cell's list is kept partitioned by a designated diagonal bit, ordered as the four
//   blocks [00, 01, 11, 10] over (diag0&bit, diag1&bit). ForDiags exploits the partition to
//   prefix-truncate filtered traversals without per-element tests. SetSBit repartitions every
//   cell; it runs on exactly one thread between barriers.
//
// Threading model:
//   Constructed single-threaded; read-only during the counting phases except for SetSBit.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package subsquare

import (
	"main/board"
	"main/pack"
	"main/qsym"
)

// Subsquare owns the partial-solution store for one quarter-board size.
type Subsquare struct {
	size       int
	pack       pack.Packing
	symm       qsym.Symmetry
	index      []uint32
	diags      []qsym.Diagonals
	specialBit uint32
}

type piece struct {
	columns uint32
	diags   qsym.Diagonals
}

// New enumerates and indexes all partial solutions. The 32-bit index limits
// the quarter-board to size 12 (13 under the 8-fold store).
func New(size int, symm qsym.Symmetry, pk pack.Packing) *Subsquare {
	limit := 12
	if symm.Factor() > 4 {
		limit = 13
	}
	if size < 1 || size > limit {
		panic("subsquare: size exceeds the 32-bit index design")
	}

	q := &Subsquare{
		size:       size,
		pack:       pk,
		symm:       symm,
		specialBit: uint32(1) << (size - 1),
	}
	q.fill()
	return q
}

// WithRows prepares row info to be used in ForCells.
func (q *Subsquare) WithRows(rows uint32) qsym.CellFactory {
	return q.symm.WithRows(rows)
}

// ForCells iterates all cells for the factory's row set, skipping cells with
// no stored solutions. The emptiness probe is valid only below the 8-fold
// store, where a cell's list is exactly its own index range.
func (q *Subsquare) ForCells(cf *qsym.CellFactory, action func(qsym.Cell)) {
	factor := q.symm.Factor()
	q.pack.ForColumns(cf.RowInfo(), cf.Rows(), func(ind, columns uint32) {
		if factor > 2 || q.index[ind] != q.index[ind+1] {
			action(cf.MakeCell(ind, columns))
		}
	})
}

// ForDiags iterates all pairs (cartesian product) of diagonals for the given
// pair of cells. The first cell's canonicalization is undone before pairing
// so the second cell is compared on the original axis. With filter set, each
// cell's list is truncated to entries clear of the special bit whenever the
// symmetry policy allows it.
func (q *Subsquare) ForDiags(first, second qsym.CellInd, filter, other bool,
	action func(d1, d2 qsym.Diagonals)) {

	if q.symm.Factor() > 2 && q.index[first.Index] == q.index[first.Index+1] {
		return
	}

	q.eachDiag(first, filter, other, func(d1 qsym.Diagonals) {
		f1 := q.symm.Fix(d1, first)
		q.eachDiag(second, filter, !other, func(d2 qsym.Diagonals) {
			action(f1, q.symm.Fix(d2, second))
		})
	})
}

// SetSBit marks a bit so that filtered traversals will ignore any partial
// solution having a non-zero diagonal associated with this bit.
func (q *Subsquare) SetSBit(bitPos int) {
	q.specialBit = uint32(1) << bitPos
	q.partitionCells(0, q.pack.LastIndex())
}

// HandlesSpecialBit indicates that no additional check is needed for the
// special bit: under the 8-fold store the caller must retest after
// canonicalization.
func (q *Subsquare) HandlesSpecialBit() bool {
	return q.symm.Factor() <= 2
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// FILTERED TRAVERSAL
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// eachDiag walks one cell's list in one of three shapes: the whole list, the
// special-bit-clear prefix of diagonal 0, or the two special-bit-clear runs
// of diagonal 1 at both ends of the partition (the second run in reverse).
func (q *Subsquare) eachDiag(ci qsym.CellInd, filter, other bool, fn func(qsym.Diagonals)) {
	list := q.diags[q.index[ci.Index]:q.index[ci.Index+1]]
	sbit := q.specialBit

	switch {
	case !filter || !q.symm.Filter(ci, other, sbit):
		for _, d := range list {
			fn(d)
		}

	case other != q.symm.Reflect(ci):
		taken := 0
		for _, d := range list {
			if d[1]&sbit != 0 {
				break
			}
			fn(d)
			taken++
		}
		if taken < len(list) {
			for i := len(list) - 1; i >= 0 && list[i][1]&sbit == 0; i-- {
				fn(list[i])
			}
		}

	default:
		for _, d := range list {
			if d[0]&sbit != 0 {
				break
			}
			fn(d)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CONSTRUCTION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// fill produces all partial solutions for 0..size queens on the board.
func (q *Subsquare) fill() {
	unsorted := make([][]piece, uint32(1)<<q.size)
	q.placeQueens(board.New(q.size), 0, unsorted)

	total := 0
	for _, r := range unsorted {
		total += len(r)
	}

	q.diags = make([]qsym.Diagonals, 0, total)
	q.index = make([]uint32, q.pack.LastIndex()+1)

	for rows, r := range unsorted {
		q.reorder(uint32(rows), r)
		unsorted[rows] = nil
	}
}

// placeQueens recursively places queens to get all partial solutions; each
// row may also stay empty.
func (q *Subsquare) placeQueens(b board.Board, row int, sink [][]piece) {
	if row == q.size {
		q.addPiece(b, sink)
		return
	}

	columns := b.GetFreeColumns(row)
	for columns != 0 {
		firstBit := columns & -columns
		q.placeQueens(b.AddQueen(row, firstBit), row+1, sink)
		columns ^= firstBit
	}

	q.placeQueens(b, row+1, sink) // empty row
}

// addPiece records a single solution (if needed).
func (q *Subsquare) addPiece(b board.Board, sink [][]piece) {
	if q.symm.IsUniq(b.Rows(), b.Columns()) {
		sink[b.Rows()] = append(sink[b.Rows()], piece{
			columns: b.Columns(),
			diags:   qsym.Diagonals{b.Diags(0), b.Diags(1)},
		})
	}
}

// reorder moves one row's solutions to their permanent locations through a
// counting pass: seed the row's first slot with the running total, count per
// cell, prefix-sum into end offsets, then place backwards so every offset
// decays into its cell's start position.
func (q *Subsquare) reorder(rows uint32, rowData []piece) {
	ri := q.pack.RowInfo(rows)
	ri1 := q.pack.RowInfo(rows + 1)
	dstBegin, dstEnd := ri.PosInIndex, ri1.PosInIndex

	for i := dstBegin; i != dstEnd; i++ {
		q.index[i] = 0
	}
	q.index[dstBegin] = uint32(len(q.diags))

	q.diags = append(q.diags, make([]qsym.Diagonals, len(rowData))...)

	for _, p := range rowData {
		q.index[q.pack.ColIndex(ri, p.columns)]++
	}

	for i := dstBegin + 1; i != dstEnd; i++ {
		q.index[i] += q.index[i-1]
	}

	for _, p := range rowData {
		pos := q.pack.ColIndex(ri, p.columns)
		q.index[pos]--
		q.diags[q.index[pos]] = p.diags
	}

	q.index[dstEnd] = uint32(len(q.diags))
	q.partitionCells(dstBegin, dstEnd)
}

// partitionCells groups each cell's list into the [00, 01, 11, 10] blocks
// over (diag0&specialBit, diag1&specialBit).
func (q *Subsquare) partitionCells(begin, end uint32) {
	sbit := q.specialBit

	for it := begin; it != end; it++ {
		whole := q.diags[q.index[it]:q.index[it+1]]
		mid := partitionDiags(whole, func(d qsym.Diagonals) bool { return d[0]&sbit == 0 })
		partitionDiags(whole[:mid], func(d qsym.Diagonals) bool { return d[1]&sbit == 0 })
		partitionDiags(whole[mid:], func(d qsym.Diagonals) bool { return d[1]&sbit != 0 })
	}
}

// partitionDiags rearranges s so elements satisfying pred precede the rest,
// returning the boundary position.
func partitionDiags(s []qsym.Diagonals, pred func(qsym.Diagonals) bool) int {
	i := 0
	for i < len(s) && pred(s[i]) {
		i++
	}
	for j := i + 1; j < len(s); j++ {
		if pred(s[j]) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	return i
}
