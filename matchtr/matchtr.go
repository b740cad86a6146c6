// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ TRANSPOSED BIT-PARALLEL MATCHER
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Non-Conflicting Pair Counting
//
// Description:
//   Matches one bitset against a growing set of bitsets and counts the non-conflicting pairs
//   (logical AND of the pair is zero). Matching 0101 against {1010, 0010} gives 2; against
//   {0100, 0001} gives 0.
//
//   Patterns accumulate in raw 64-bit form until 64*groupSize of them are buffered; the full
//   buffer is then promoted into a Piece: every pattern is inverted, the 64 x groupSize block
//   is bit-transposed with a log-stage butterfly, and runs of chunkSize bit-columns are
//   pre-ANDed into subset tables. A count against a Piece is then one table lookup and one
//   AND per chunk, with a final popcount — 64*groupSize raw tests collapse into a handful of
//   word operations.
//
// Invariants:
//   - The raw buffer never reaches its capacity after promotion.
//   - Raw and promoted counts are additive; PassTo conserves the summed count.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package matchtr

import (
	"math/bits"

	"main/bitutil"
	"main/constants"
)

// maxGroupSize bounds the per-count accumulator so it lives on the stack.
const maxGroupSize = 16

// MatchTr is one matcher instance. Items passed to Count must fit the size
// given at construction.
type MatchTr struct {
	size        int
	chunkSize   int
	groupSize   int
	patMin      int
	patMax      int
	numChunks   int
	trChunkSize int
	chunkMask   uint64
	prefetchOn  bool

	patterns []uint64   // raw pattern buffer, below patMax entries
	pieces   [][]uint64 // promoted pieces, each numChunks*trChunkSize*groupSize words
}

// New creates a matcher for size-bit patterns under the given knobs.
func New(size int, cfg constants.Cfg) *MatchTr {
	if cfg.MatchGroupSize < 1 || cfg.MatchGroupSize > maxGroupSize {
		panic("matchtr: group size must be within 1..16")
	}
	if cfg.MatchChunkSize < 1 {
		panic("matchtr: chunk size must be positive")
	}

	m := &MatchTr{
		size:       size,
		chunkSize:  cfg.MatchChunkSize,
		groupSize:  cfg.MatchGroupSize,
		patMin:     cfg.MatchMinSize,
		patMax:     64 * cfg.MatchGroupSize,
		numChunks:  (size + cfg.MatchChunkSize - 1) / cfg.MatchChunkSize,
		chunkMask:  bitutil.NLeastBits64(cfg.MatchChunkSize),
		prefetchOn: cfg.Prefetch,
	}

	m.trChunkSize = 1
	if m.chunkSize > 1 {
		m.trChunkSize = 1 << m.chunkSize
	}

	if m.numChunks*m.chunkSize > 64 {
		panic("matchtr: chunked bit positions exceed the 64-row transpose")
	}

	m.patterns = make([]uint64, 0, m.patMax)
	return m
}

// AppendPattern buffers one raw pattern, promoting the buffer into a new
// Piece once it fills.
func (m *MatchTr) AppendPattern(pattern uint64) {
	m.patterns = append(m.patterns, pattern)

	if len(m.patterns) == m.patMax {
		m.processPatterns()
	}
}

// ClosePatterns should be called when the stream of patterns ends. It
// decides whether patterns still in raw form are worth transposing: below
// patMin the raw scan stays cheaper than a padded Piece.
func (m *MatchTr) ClosePatterns() {
	if len(m.patterns) >= m.patMin {
		for len(m.patterns) != m.patMax {
			m.patterns = append(m.patterns, ^uint64(0))
		}
		m.processPatterns()
	}
}

// Count returns the number of stored patterns compatible with item.
func (m *MatchTr) Count(item uint64) uint64 {
	total := m.countTr(item)

	for _, p := range m.patterns {
		if item&p == 0 {
			total++
		}
	}

	return total
}

// Clear drops all stored patterns.
func (m *MatchTr) Clear() {
	m.patterns = m.patterns[:0]
	m.pieces = m.pieces[:0]
}

// Shrink releases buffer capacity held by an empty matcher.
func (m *MatchTr) Shrink() {
	if len(m.patterns) == 0 {
		m.patterns = make([]uint64, 0, m.patMax)
	}
	if len(m.pieces) == 0 {
		m.pieces = nil
	}
}

// PassTo merges the patterns from this matcher into other, then clears this
// one. Pieces move wholesale; raw patterns re-enter other's buffer and may
// trigger promotion there.
func (m *MatchTr) PassTo(other *MatchTr) {
	other.pieces = append(other.pieces, m.pieces...)

	for _, p := range m.patterns {
		other.AppendPattern(p)
	}

	m.Clear()
}

// prefetchSink receives warming loads; the shared destination is deliberate.
var prefetchSink uint64

// Prefetch issues a warming read of the first Piece's chunk-0 row for this
// item, pulling the line toward the cache before Count needs it.
//
//go:norace
//go:nosplit
//go:inline
func (m *MatchTr) Prefetch(item uint64) {
	if m.prefetchOn && m.chunkSize > 1 && len(m.pieces) > 0 {
		prefetchSink = m.pieces[0][(item&m.chunkMask)*uint64(m.groupSize)]
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// PROMOTION — INVERT, TRANSPOSE, CHUNK-PRECOMPUTE
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func (m *MatchTr) processPatterns() {
	m.invertPatterns()
	m.transposePatterns()
	m.transformPatterns()
	m.patterns = m.patterns[:0]
}

func (m *MatchTr) invertPatterns() {
	for i := range m.patterns {
		m.patterns[i] = ^m.patterns[i]
	}
}

// transposePatterns runs the log-stage butterfly over the 64 x groupSize
// block: after the last stage, row i holds bit i of each original pattern.
func (m *MatchTr) transposePatterns() {
	mask := bitutil.NLeastBits64(32)

	for dist := 32; dist != 0; {
		for off := 0; off != 64; off += 2 * dist {
			for pos := 0; pos != dist; pos++ {
				for elem := 0; elem != m.groupSize; elem++ {
					m.cross((pos+off)*m.groupSize+elem,
						(pos+off+dist)*m.groupSize+elem, mask, dist)
				}
			}
		}
		dist /= 2
		mask ^= mask << dist
	}
}

//go:nosplit
//go:inline
func (m *MatchTr) cross(ia, ib int, mask uint64, dist int) {
	a, b := m.patterns[ia], m.patterns[ib]
	fixA := (b & mask) << dist
	fixB := (a & ^mask) >> dist
	m.patterns[ia] = a&mask | fixA
	m.patterns[ib] = b & ^mask | fixB
}

// transformPatterns folds the transposed block into one new Piece.
func (m *MatchTr) transformPatterns() {
	piece := make([]uint64, m.numChunks*m.trChunkSize*m.groupSize)

	for chunkNr := 0; chunkNr != m.numChunks; chunkNr++ {
		for groupNr := 0; groupNr != m.trChunkSize; groupNr++ {
			off := (chunkNr*m.trChunkSize + groupNr) * m.groupSize
			m.makeGroup(chunkNr, uint32(groupNr), piece[off:off+m.groupSize])
		}
	}

	m.pieces = append(m.pieces, piece)
}

// makeGroup fills one subset entry: the AND of the transposed rows selected
// by the set bits of groupNr (all-ones for the empty subset). With 1-bit
// chunks the single row is copied through untouched.
func (m *MatchTr) makeGroup(chunkNr int, groupNr uint32, dst []uint64) {
	if m.chunkSize == 1 {
		copy(dst, m.patterns[chunkNr*m.groupSize:])
		return
	}

	for i := range dst {
		dst[i] = ^uint64(0)
	}

	for ; groupNr != 0; groupNr &= groupNr - 1 {
		bitPos := bits.TrailingZeros32(groupNr)
		off := (chunkNr*m.chunkSize + bitPos) * m.groupSize
		conjTo(dst, m.patterns[off:off+m.groupSize])
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// COUNTING AGAINST PIECES
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func (m *MatchTr) countTr(item uint64) uint64 {
	var total uint64
	var accumArr [maxGroupSize]uint64
	accum := accumArr[:m.groupSize]

	for _, piece := range m.pieces {
		for i := range accum {
			accum[i] = ^uint64(0)
		}

		m.collectBits(accum, item, piece)

		for _, x := range accum {
			total += uint64(bits.OnesCount64(x))
		}
	}

	return total
}

//go:nosplit
//go:inline
func (m *MatchTr) collectBits(accum []uint64, item uint64, piece []uint64) {
	if m.chunkSize == 1 {
		for it := item; it != 0; it &= it - 1 {
			off := bits.TrailingZeros64(it) * m.groupSize
			conjTo(accum, piece[off:off+m.groupSize])
		}
		return
	}

	for c := 0; c != m.numChunks; c++ {
		off := (c*m.trChunkSize + int(item&m.chunkMask)) * m.groupSize
		conjTo(accum, piece[off:off+m.groupSize])
		item >>= m.chunkSize
	}
}

//go:nosplit
//go:inline
func conjTo(dst []uint64, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}
