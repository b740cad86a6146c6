// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ CUT-BIT SIEVE
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Matcher Routing Array
//
// Description:
//   Optimizes the bitset matcher by (1) cutting a few bits out of each pattern to use them
//   for indexing instead of matching and (2) optionally compressing the always-insignificant
//   bits out of patterns and items so the matchers chew on fewer positions.
//
//   2^cut matchers sit in an array. Every incoming pattern lands in exactly one matcher,
//   selected by the complement of its cut bits; every incoming item visits only the matchers
//   whose index is a superset of its own cut bits — any pattern in an unvisited matcher
//   would have conflicted on the cut bits alone.
//
// Splitting policies:
//   With the compressed-bits path the cut positions are chosen as significant bits nearest
//   the two pattern centers, and both patterns and items drop every insignificant position.
//   Without it the bits pass through whole and the index comes from a fixed central slice of
//   the high word. The two policies agree on totals, not on per-matcher counts.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package sieve

import (
	"main/bitutil"
	"main/constants"
	"main/matchtr"
	"main/scheduler"
)

// Sieve routes half-board patterns and items across its matcher array.
type Sieve struct {
	halfLen  int
	cut      int
	cutMask  uint32
	cutSize  uint32
	bmi      bool
	halfMask uint64
	center   uint64
	center2  uint64
	cuts     uint64
	holes    uint64 // significant non-cut positions, the matcher keep-mask
	match    []*matchtr.MatchTr
}

type srcBits struct {
	bits  uint64
	index uint32
}

// New builds a sieve for stitched patterns of 2*halfLen bits, of which
// 2*holeCount are known to be always insignificant.
func New(cfg constants.Cfg, halfLen, holeCount int) *Sieve {
	if cfg.SieveCuts > halfLen/2 {
		panic("sieve: cut width exceeds half the pattern")
	}

	matchLen := halfLen * 2
	if cfg.BmiIntrin {
		matchLen -= holeCount*2 + cfg.SieveCuts
	}

	s := &Sieve{
		halfLen:  halfLen,
		cut:      cfg.SieveCuts,
		cutMask:  bitutil.NLeastBits32(cfg.SieveCuts),
		cutSize:  uint32(1) << cfg.SieveCuts,
		bmi:      cfg.BmiIntrin,
		halfMask: bitutil.NLeastBits64(halfLen),
	}
	s.center = uint64(1) << (halfLen / 2)
	s.center2 = s.center << halfLen
	s.cuts = s.mkCuts(^(s.center | s.center2))
	s.holes = ^(s.center | s.center2 | s.cuts)

	s.match = make([]*matchtr.MatchTr, s.cutSize)
	for i := range s.match {
		s.match[i] = matchtr.New(matchLen, cfg)
	}

	return s
}

// SetHoles specifies which input bits (per half) are always insignificant
// for the upcoming pattern stream, re-deriving the cut positions.
func (s *Sieve) SetHoles(h [2]uint64) {
	hcat := h[1]<<s.halfLen | h[0]
	s.cuts = s.mkCuts(^hcat)
	s.holes = ^(hcat | s.cuts)
}

// AppendPattern stitches a half-board diagonal pair and delivers it to the
// one matcher its cut bits select.
func (s *Sieve) AppendPattern(first, second uint32) {
	sb := s.stitch(first, second)
	s.match[s.cutMask & ^sb.index].AppendPattern(sb.bits)
}

// ClosePatterns should be called when the stream of patterns ends.
func (s *Sieve) ClosePatterns() {
	for _, m := range s.match {
		m.ClosePatterns()
	}
}

// Count sums the compatible patterns across every matcher whose index is a
// superset of the item's cut bits, warming the next matcher one step ahead.
func (s *Sieve) Count(first, second uint32) uint64 {
	var total uint64
	sb := s.stitch(first, second)

	for i := sb.index; i != s.cutMask; i = (i + 1) | sb.index {
		s.match[(i+1)|sb.index].Prefetch(sb.bits)
		total += s.match[i].Count(sb.bits)
	}

	total += s.match[s.cutMask].Count(sb.bits)
	return total
}

// Pull drains the matchers pointed to by ptrs into the local ones. This is
// the only thread-aware method of this type: the ticket protocol hands each
// matcher slot to exactly one worker, which also finalizes the slot's
// stream. The split masks travel with slot zero.
func (s *Sieve) Pull(ptrs []*Sieve, w *scheduler.Worker) {
	for i := uint32(0); i != s.cutSize; i++ {
		if w.Rejected() {
			continue
		}

		if i == 0 {
			s.holes = ptrs[0].holes
			s.cuts = ptrs[0].cuts
		}

		for _, p := range ptrs {
			p.match[i].PassTo(s.match[i])
		}

		s.match[i].ClosePatterns()
	}
}

// Clear drops every matcher's patterns.
func (s *Sieve) Clear() {
	for _, m := range s.match {
		m.Clear()
	}
}

// Shrink releases matcher buffer capacity.
func (s *Sieve) Shrink() {
	for _, m := range s.match {
		m.Shrink()
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// BIT SPLITTING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

//go:nosplit
//go:inline
func (s *Sieve) stitch(first, second uint32) srcBits {
	r := (uint64(second)&s.halfMask)<<s.halfLen | uint64(first)&s.halfMask
	return s.splitBits(r, second)
}

// splitBits divides the input bits into the matcher payload and the matcher
// index. The compressed path extracts significant bits against the keep
// mask and indexes by the chosen cut positions; the plain path passes the
// word through whole and indexes by a fixed central slice of the high half.
//
//go:nosplit
//go:inline
func (s *Sieve) splitBits(r uint64, second uint32) srcBits {
	if s.bmi {
		var idx uint32
		if s.cut != 0 {
			idx = uint32(bitutil.Extract(r, s.cuts))
		}
		return srcBits{bits: bitutil.Extract(r, s.holes), index: idx}
	}

	return srcBits{
		bits:  r,
		index: second >> (s.halfLen/2 - s.cut) & s.cutMask,
	}
}

// mkCuts picks cut positions among the significant bits nearest the two
// centers, alternating outward in both directions.
func (s *Sieve) mkCuts(bits uint64) uint64 {
	var res uint64
	cutCnt := s.cut
	bit := [4]uint64{s.center, s.center2, s.center >> 1, s.center2 >> 1}

	for toggle := 0; cutCnt != 0; toggle = (toggle + 1) % 4 {
		if bit[toggle]&bits != 0 {
			res |= bit[toggle]
			cutCnt--
		}

		if toggle < 2 {
			bit[toggle] <<= 1
		} else {
			bit[toggle] >>= 1
		}
	}

	return res
}
