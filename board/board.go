// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ BITSET CHESSBOARD
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Quarter-Board Attack Tracking
//
// Description:
//   Immutable chessboard view backed by four bitsets: free rows, free columns and the two
//   diagonal families. Diagonal sets are stored inverted (1 = free) and span the full
//   2*size-1 diagonal range, so the free-columns probe for a row reduces to three ANDs of
//   shifted words. AddQueen returns a new value; no in-place mutation anywhere.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package board

import "main/bitutil"

// Board tracks occupancy for a size x size quarter-board, size <= 16.
type Board struct {
	size    int
	rows    uint32
	columns uint32
	diags   [2]uint32
}

// New returns an empty board. Sizes outside 1..16 panic: the diagonal sets
// must fit 2*size-1 bits in a 32-bit word.
func New(size int) Board {
	if size < 1 || size > 16 {
		panic("board: size must be within 1..16")
	}
	all := bitutil.NLeastBits32(size)
	return Board{
		size:    size,
		rows:    all,
		columns: all,
		diags:   [2]uint32{^uint32(0), ^uint32(0)},
	}
}

// GetFreeColumns returns the columns where a queen on the given row attacks
// neither an occupied column nor either diagonal.
//
//go:nosplit
//go:inline
func (b Board) GetFreeColumns(row int) uint32 {
	return b.columns &
		(b.diags[0] >> (b.size - 1 - row)) &
		(b.diags[1] >> row)
}

// AddQueen flips exactly one bit in each of the four sets. singleBit must be
// a one-bit column mask taken from GetFreeColumns.
//
//go:nosplit
//go:inline
func (b Board) AddQueen(row int, singleBit uint32) Board {
	return Board{
		size:    b.size,
		rows:    b.rows ^ uint32(1)<<row,
		columns: b.columns ^ singleBit,
		diags: [2]uint32{
			b.diags[0] ^ singleBit<<(b.size-1-row),
			b.diags[1] ^ singleBit<<row,
		},
	}
}

// Rows returns the occupied rows (positive polarity).
//
//go:nosplit
//go:inline
func (b Board) Rows() uint32 {
	return b.rows ^ bitutil.NLeastBits32(b.size)
}

// Columns returns the occupied columns (positive polarity).
//
//go:nosplit
//go:inline
func (b Board) Columns() uint32 {
	return b.columns ^ bitutil.NLeastBits32(b.size)
}

// Diags returns the occupied diagonals of one family (positive polarity)
// over the natural 2*size-1 width.
//
//go:nosplit
//go:inline
func (b Board) Diags(index int) uint32 {
	return ^b.diags[index]
}
