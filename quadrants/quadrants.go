// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ MEET-IN-THE-MIDDLE COUNTING ENGINE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Four-Quadrant Combination
//
// Description:
//   Counts placements of N non-attacking queens (OEIS A000170) without direct backtracking.
//   The board splits into four quadrants; the quarter store holds every quadrant's partial
//   solutions. For each combination of east-side rows, the engine joins north and south
//   quarters of the east half-board into diagonal patterns, freezes them into a shared
//   sieve, then walks the west half-board's pairs and counts the compatible matches.
//
//   Most relatively symmetrical cases are computed once, for an up-to-8x reduction: odd
//   sizes pin queens to the middle row/column; even sizes pick unique row combinations for
//   one symmetry and filter redundant half-solutions by longest-diagonal occupation for the
//   other two.
//
// Threading model:
//   Every worker runs the same entry point. Work splits late — at column choice, via the
//   ticket protocol — so the workers share the L3-resident quarter store instead of
//   competing for it. Barriers separate the fill, merge, count and clear steps; between two
//   barriers shared data is either read-only for everyone or written by one accepted worker.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package quadrants

import (
	"main/bitutil"
	"main/colex"
	"main/freeze"
	"main/qsym"
	"main/scheduler"
	"main/sieve"
	"main/subsquare"
)

// Start is the starting-configuration contract the engine consumes: where
// the initial queens sit (odd sizes), which symmetry reductions apply, and
// how row combinations stream.
type Start interface {
	BitComb() colex.Gen
	StretchRows(bits uint32) uint32
	FreeRows() uint32
	Columns() uint32
	MatchDiags(offset int, first, second qsym.Diagonals) bool
	InternalSymmetry() bool
	DiagSymmetry() bool
	FilterDiag() bool
}

// SeedLooper is the optional outer loop of configurations that move their
// locked queens across (column, row) seeds.
type SeedLooper interface {
	ForCR(env *Context, quad *Engine) uint64
}

// Context collects the objects one worker needs for a counting pass.
type Context struct {
	Start   Start
	Worker  *scheduler.Worker
	Sink    *sieve.Sieve
	Freeze  *freeze.Freeze
	Divider scheduler.Divider
}

// Counter returns the sieve the counting phase reads: the merged one when
// threaded, the worker's own sink otherwise.
func (c *Context) Counter() *sieve.Sieve {
	if c.Worker.Threaded() {
		return c.Freeze.Obj()
	}
	return c.Sink
}

// Sync arrives at the phase barrier.
func (c *Context) Sync() {
	c.Worker.Sync()
}

// Engine drives the four-quadrant combination for one board size.
type Engine struct {
	size     int
	halfSize int
	halfCeil int
	lowHalf  uint32
	quarter  *subsquare.Subsquare
}

// New wires the engine to its quarter-board store. Sizes of 4 and below
// have no quadrant structure worth splitting.
func New(size int, quarter *subsquare.Subsquare) *Engine {
	if size <= 4 {
		panic("quadrants: board size must exceed 4")
	}
	return &Engine{
		size:     size,
		halfSize: size / 2,
		halfCeil: (size + 1) / 2,
		lowHalf:  bitutil.NLeastBits32(size / 2),
		quarter:  quarter,
	}
}

// Run counts across every row combination of env's starting configuration.
func (e *Engine) Run(env *Context) uint64 {
	return e.doWhole(env)
}

// SetSBit marks a bit west of the center so the quarter store will not
// produce partial results occupying that diagonal. One worker applies it.
func (e *Engine) SetSBit(env *Context, bitPos int) {
	if env.Worker.Accepted() {
		e.quarter.SetSBit(bitPos)
	}
}

// Shrink frees memory still held by containers that are no longer needed
// but cannot be deleted yet.
func (e *Engine) Shrink(env *Context) {
	env.Sync()

	if env.Worker.Accepted() {
		env.Freeze.Shrink()
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OUTER LOOP
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// doWhole: for each row combination, derive the east/west halves, then run
// the fill / merge / count / clear phase train.
func (e *Engine) doWhole(env *Context) uint64 {
	var counter uint64

	for g := env.Start.BitComb(); g.Valid(); g.Advance() {
		if env.Divider.Skip() {
			continue
		}

		eastRows := env.Start.StretchRows(g.Value())
		westRows := eastRows ^ env.Start.FreeRows()

		m := e.getRowsSymm(env, eastRows)
		if m == 0 {
			continue
		}

		env.Sync()
		e.fill(env, eastRows)
		env.Sync()
		env.Freeze.Merge(env.Worker)
		env.Sync()
		counter += uint64(m) * e.count(env, westRows)
		env.Sync()
		if env.Worker.Accepted() {
			env.Freeze.Clear()
		}
	}

	return counter
}

// getRowsSymm avoids double work when the board turned upside down was
// already counted: the mirror pair's smaller member counts for both.
func (e *Engine) getRowsSymm(env *Context, eastRows uint32) uint32 {
	revRows := bitutil.RevBits(eastRows, e.size, e.halfSize)

	if !env.Start.InternalSymmetry() || eastRows == revRows {
		return 1
	}

	if eastRows < revRows {
		return 2
	}

	return 0
}

// fill processes the east half-board and stores the joined patterns.
func (e *Engine) fill(env *Context, eastRows uint32) {
	e.doHalf(env, eastRows, false, func(d1, d2 qsym.Diagonals) {
		if env.Start.DiagSymmetry() && !e.bothDiagsEmpty(d1, d2) {
			return
		}

		pf, ps := e.joinQuarters(d1, d2, e.halfCeil, 0)
		env.Sink.AppendPattern(pf, ps)
	})
}

// count processes the west half-board and tallies matchings with the east.
func (e *Engine) count(env *Context, westRows uint32) uint64 {
	var total uint64
	counter := env.Counter()

	e.doHalf(env, westRows, true, func(d1, d2 qsym.Diagonals) {
		m := e.diagsSymmetryFactor(env, d1, d2)
		pf, ps := e.joinQuarters(d1, d2, 0, e.halfCeil)
		total += uint64(m) * counter.Count(pf, ps)
	})

	return total
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HALF-BOARD ENUMERATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// doHalf: for each column set of the half-board, pair the north quarter's
// cells with their complementary south cells, request the precomputed
// diagonal pairs, and drop incompatible ones.
func (e *Engine) doHalf(env *Context, rows uint32, west bool, action func(d1, d2 qsym.Diagonals)) {
	halfColumns := e.halfBits(env.Start.Columns(), west)
	north := e.quarter.WithRows(rows & e.lowHalf)
	south := e.quarter.WithRows(rows >> e.halfCeil)

	filterDiag := (env.Start.DiagSymmetry() && !west) || env.Start.FilterDiag()
	offset := 0
	if west {
		offset = e.halfCeil
	}

	e.quarter.ForCells(&north, func(cell qsym.Cell) {
		if cell.Columns&halfColumns != 0 || env.Worker.Rejected() {
			return
		}

		sColumns := (cell.Columns ^ ^halfColumns) & e.lowHalf
		ni := north.MakeCellIndOf(cell)
		si := south.MakeCellInd(sColumns)

		e.quarter.ForDiags(ni, si, filterDiag, west, func(d1, d2 qsym.Diagonals) {
			if !e.matchQuarters(d1, d2) {
				return
			}
			if !env.Start.MatchDiags(offset, d1, d2) {
				return
			}
			action(d1, d2)
		})
	})
}

// diagsSymmetryFactor uses longest-diagonal occupation to determine how
// many relatively symmetrical solutions this pair represents.
func (e *Engine) diagsSymmetryFactor(env *Context, d1, d2 qsym.Diagonals) uint32 {
	factor := uint32(1)

	if env.Start.DiagSymmetry() {
		if !e.isLongestHalfDiagEmpty(d1[1]) {
			factor *= 2
		}

		if !e.isLongestHalfDiagEmpty(d2[0]) {
			factor *= 2
		}
	}

	return factor
}

// bothDiagsEmpty filters redundant east half-solutions by longest-diagonal
// occupation; a store that prunes by special bit already handled it.
func (e *Engine) bothDiagsEmpty(d1, d2 qsym.Diagonals) bool {
	return e.quarter.HandlesSpecialBit() ||
		(e.isLongestHalfDiagEmpty(d2[1]) && e.isLongestHalfDiagEmpty(d1[0]))
}

//go:nosplit
//go:inline
func (e *Engine) isLongestHalfDiagEmpty(halfDiag uint32) bool {
	return halfDiag&(uint32(1)<<(e.halfSize-1)) == 0
}

// matchQuarters: true if north/south quarters do not compete for a diagonal.
//
//go:nosplit
//go:inline
func (e *Engine) matchQuarters(d1, d2 qsym.Diagonals) bool {
	fwdMeet := (d1[1] >> e.halfCeil) & d2[1]
	bkwdMeet := d1[0] & (d2[0] >> e.halfCeil)
	return fwdMeet == 0 && bkwdMeet == 0
}

//go:nosplit
//go:inline
func (e *Engine) joinQuarters(d1, d2 qsym.Diagonals, offsetL, offsetH int) (uint32, uint32) {
	return d1[0]<<offsetH | d2[0]>>offsetL,
		d1[1]>>offsetL | d2[1]<<offsetH
}

//go:nosplit
//go:inline
func (e *Engine) halfBits(bits uint32, west bool) uint32 {
	if west {
		return bits >> e.halfCeil
	}
	return bits & e.lowHalf
}
