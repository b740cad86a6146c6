// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ STARTING CONFIGURATIONS
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Locked-Queen Seeds & Symmetry Switches
//
// Description:
//   Four variants feed the quadrants engine. Empty covers even sizes: no locked queens, full
//   internal and diagonal symmetry. Odd sizes pin queens to the middle row/column and split
//   into three cases: Center (one queen dead center), TwoD (two queens in the middle
//   row/column, off the border), and OneD (one of them exactly at the south border). The
//   seeded variants enumerate their (column, row) placements and multiply by the 8 planar
//   symmetries externally.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package start

import (
	"main/bitutil"
	"main/colex"
	"main/qsym"
	"main/quadrants"
)

// Config is what the counter needs from a starting configuration: the
// engine contract plus the sieve geometry its patterns require.
type Config interface {
	quadrants.Start
	// SieveSpec returns the stitched pattern half-length and the number of
	// always-insignificant bits per half.
	SieveSpec() (halfLen, holeCount int)
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// EMPTY — EVEN SIZES, NO LOCKED QUEENS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Empty is the starting position for even sizes.
type Empty struct {
	size int
}

func NewEmpty(size int) *Empty {
	return &Empty{size: size}
}

func (s *Empty) SieveSpec() (int, int) {
	return s.size - 1, 1
}

func (s *Empty) BitComb() colex.Gen {
	return colex.New(s.size, s.size/2)
}

func (s *Empty) StretchRows(bits uint32) uint32 {
	return bits
}

func (s *Empty) FreeRows() uint32 {
	return bitutil.NLeastBits32(s.size)
}

func (s *Empty) Columns() uint32 {
	return 0
}

func (s *Empty) MatchDiags(int, qsym.Diagonals, qsym.Diagonals) bool {
	return true
}

func (s *Empty) InternalSymmetry() bool { return true }
func (s *Empty) DiagSymmetry() bool     { return true }
func (s *Empty) FilterDiag() bool       { return false }

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// CENTER — ODD SIZES, ONE QUEEN DEAD CENTER
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// Center is the starting position for odd sizes with one queen in the
// center square.
type Center struct {
	size      int
	halfSize  int
	centerBit uint32
}

func NewCenter(size int) *Center {
	return &Center{
		size:      size,
		halfSize:  size / 2,
		centerBit: uint32(1) << (size / 2),
	}
}

func (s *Center) SieveSpec() (int, int) {
	return s.size - 2, 1
}

func (s *Center) BitComb() colex.Gen {
	return colex.New(s.size-1, s.halfSize)
}

// StretchRows opens a gap for the locked center row.
func (s *Center) StretchRows(bits uint32) uint32 {
	mask := s.centerBit - 1
	return (bits&^mask)<<1 | bits&mask
}

func (s *Center) FreeRows() uint32 {
	return bitutil.NLeastBits32(s.size) & ^s.centerBit
}

func (s *Center) Columns() uint32 {
	return s.centerBit
}

// MatchDiags rejects quarter pairs occupying either diagonal through the
// center queen; the inspected family flips between east and west.
func (s *Center) MatchDiags(offset int, first, second qsym.Diagonals) bool {
	flip := 0
	if offset != 0 {
		flip = 1
	}
	middle := uint32(1) << (s.halfSize - 1)

	return first[0^flip]&middle == 0 && second[1^flip]&middle == 0
}

func (s *Center) InternalSymmetry() bool { return true }
func (s *Center) DiagSymmetry() bool     { return false }
func (s *Center) FilterDiag() bool       { return true }

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TWO-D — ODD SIZES, TWO QUEENS IN THE MIDDLE ROW/COLUMN
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// TwoD is the starting position for odd sizes where two queens sit in the
// middle row/column, neither at the border. The seed walks every (column,
// row) placement strictly above the diagonal.
type TwoD struct {
	size      int
	halfSize  int
	qOffset   int
	centerBit uint32
	row       int
	freeRows  uint32
	columns   uint32
	diags     [2]uint64
}

func NewTwoD(size int) *TwoD {
	if size <= 4 {
		panic("start: two-queen seeds need size above 4")
	}
	return &TwoD{
		size:      size,
		halfSize:  size / 2,
		qOffset:   (size + 1) / 2,
		centerBit: uint32(1) << (size / 2),
	}
}

func (s *TwoD) SieveSpec() (int, int) {
	return s.size - 2, 2
}

func (s *TwoD) BitComb() colex.Gen {
	return colex.New(s.size-2, s.halfSize)
}

// StretchRows opens gaps for both locked rows: the middle one and the
// current seed row.
func (s *TwoD) StretchRows(bits uint32) uint32 {
	lm := s.centerBit - 1
	mm := (uint32(1)<<(s.row-1) - 1) ^ lm
	hm := ^(lm | mm)
	return (bits&hm)<<2 | (bits&mm)<<1 | bits&lm
}

func (s *TwoD) FreeRows() uint32 {
	return s.freeRows
}

func (s *TwoD) Columns() uint32 {
	return s.columns
}

// MatchDiags rejects quarter pairs conflicting with the locked queens'
// diagonals, shifted per side.
func (s *TwoD) MatchDiags(offset int, first, second qsym.Diagonals) bool {
	return qMatch(offset+s.qOffset, first[0], s.diags[0]) &&
		qMatch(offset, second[0], s.diags[0]) &&
		qMatch(offset, first[1], s.diags[1]) &&
		qMatch(offset+s.qOffset, second[1], s.diags[1])
}

func (s *TwoD) InternalSymmetry() bool { return false }
func (s *TwoD) DiagSymmetry() bool     { return false }
func (s *TwoD) FilterDiag() bool       { return true }

// ForCR enumerates the locked-queen seeds; each counted placement stands
// for its 8 planar symmetries.
func (s *TwoD) ForCR(env *quadrants.Context, quad *quadrants.Engine) uint64 {
	var res uint64

	for col := s.halfSize + 1; col != s.size-2; col++ {
		quad.SetSBit(env, col-1)

		for row := col + 1; row != s.size-1; row++ {
			s.setColumnRow(col, row)
			env.Sink.SetHoles(s.mkHoles())
			res += 8 * quad.Run(env)
		}
	}

	return res
}

//go:nosplit
//go:inline
func qMatch(offset int, q uint32, d uint64) bool {
	return uint64(q)<<offset&d == 0
}

func (s *TwoD) setColumnRow(col, row int) {
	columns1 := uint32(1) << col
	s.columns = columns1 | s.centerBit
	s.row = row
	s.freeRows = s.StretchRows(bitutil.NLeastBits32(s.size - 2))

	cBit := uint64(columns1) << s.halfSize
	s.diags[0] = cBit | uint64(1)<<(3*s.halfSize-row)
	s.diags[1] = cBit | uint64(1)<<(s.halfSize+row)
}

func (s *TwoD) mkHoles() [2]uint64 {
	return [2]uint64{s.diags[0] >> s.qOffset, s.diags[1] >> s.qOffset}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ONE-D — ODD SIZES, ONE QUEEN AT THE BORDER OF THE MIDDLE ROW
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// OneD is the special case of TwoD where the second queen sits exactly at
// the south border.
type OneD struct {
	TwoD
}

func NewOneD(size int) *OneD {
	return &OneD{TwoD: *NewTwoD(size)}
}

func (s *OneD) SieveSpec() (int, int) {
	return s.size - 2, 1
}

func (s *OneD) FilterDiag() bool {
	return false
}

func (s *OneD) ForCR(env *quadrants.Context, quad *quadrants.Engine) uint64 {
	var res uint64

	for col := s.halfSize + 1; col != s.size-1; col++ {
		s.setColumnRow(col, s.size-1)
		env.Sink.SetHoles(s.mkHoles())
		res += 8 * quad.Run(env)
	}

	return res
}
