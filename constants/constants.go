// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Counter Tunables & Per-Size Recommendations
//
// Purpose:
//   - Defines the Cfg knob set shared by the matcher and the sieve.
//   - Carries the recommended per-board-size values and the hardware gate
//     for the bit-extract fast path.
//
// Notes:
//   - All values resolve before the counting engine starts; nothing here is
//     touched from a hot loop.
// ─────────────────────────────────────────────────────────────────────────────

package constants

import (
	"github.com/sugawarayuuta/sonnet"
	"golang.org/x/sys/cpu"
)

// BoardSize is the board edge of the reference build.
const BoardSize = 18

// Cfg tunes performance from a single place.
type Cfg struct {
	SieveCuts      int  // matcher-array index width, in bits
	MatchChunkSize int  // precomputed-AND chunk width
	MatchGroupSize int  // 64-bit words per transposed group
	MatchMinSize   int  // raw-pattern threshold below which no promotion happens
	BmiIntrin      bool // compress insignificant bits out of patterns/items
	Prefetch       bool // warm the first piece ahead of each matcher probe
}

// Default returns the baseline knob set.
func Default() Cfg {
	return Cfg{
		SieveCuts:      0,
		MatchChunkSize: 5,
		MatchGroupSize: 8,
		MatchMinSize:   40,
		BmiIntrin:      false,
		Prefetch:       false,
	}
}

// ForSize returns the recommended knobs for one board size. Sizes below 16
// take the size-16 column; sizes above 22 keep the size-22 column.
//
//	size:        16   17   18   19   20   21   22
//	cuts          0    0    0    0    3    3    6
//	minSize      40   40   40   40   60   60   80
//	bmi           F    F    F    T    T    T    T
//	prefetch      T    T    T    T    T    F    T
func ForSize(size int) Cfg {
	cfg := Default()

	switch {
	case size >= 22:
		cfg.SieveCuts = 6
		cfg.MatchMinSize = 80
	case size >= 20:
		cfg.SieveCuts = 3
		cfg.MatchMinSize = 60
	}

	// The compressed-bits path pays off only once the pattern space grows,
	// and only when the hardware can chew through the extraction masks.
	cfg.BmiIntrin = size >= 19 && cpu.X86.HasBMI2
	cfg.Prefetch = size != 21

	return cfg
}

// tuning mirrors Cfg with optional fields so a file can override any subset.
type tuning struct {
	SieveCuts      *int  `json:"sieveCuts"`
	MatchChunkSize *int  `json:"matchChunkSize"`
	MatchGroupSize *int  `json:"matchGroupSize"`
	MatchMinSize   *int  `json:"matchMinSize"`
	BmiIntrin      *bool `json:"bmiIntrin"`
	Prefetch       *bool `json:"prefetch"`
}

// ApplyTuning overlays a JSON tuning document onto cfg. Absent fields keep
// their current values; unknown fields are ignored.
func ApplyTuning(cfg Cfg, data []byte) (Cfg, error) {
	var t tuning
	if err := sonnet.Unmarshal(data, &t); err != nil {
		return cfg, err
	}

	if t.SieveCuts != nil {
		cfg.SieveCuts = *t.SieveCuts
	}
	if t.MatchChunkSize != nil {
		cfg.MatchChunkSize = *t.MatchChunkSize
	}
	if t.MatchGroupSize != nil {
		cfg.MatchGroupSize = *t.MatchGroupSize
	}
	if t.MatchMinSize != nil {
		cfg.MatchMinSize = *t.MatchMinSize
	}
	if t.BmiIntrin != nil {
		cfg.BmiIntrin = *t.BmiIntrin
	}
	if t.Prefetch != nil {
		cfg.Prefetch = *t.Prefetch
	}

	return cfg, nil
}
