// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ SOLUTION COUNTER ASSEMBLY
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: Engine Wiring & Variant Dispatch
//
// Description:
//   Builds the quarter store, the engine, the per-variant freezes and the worker set for one
//   counting run, then sums the variants active for the board's parity: the empty start for
//   even sizes; center, middle-pair and border seeds for odd sizes.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package solcount

import (
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

// CountSolutions returns the number of placements of size non-attacking
// queens on a size x size board, using the recommended knobs for that size.
// The (part, parts) pair selects one slice of the outer iteration space;
// summing over every part recovers the full count.
func CountSolutions(size, threads, part, parts int) uint64 {
	return CountSolutionsCfg(constants.ForSize(size), size, threads, part, parts)
}

// CountSolutionsCfg is CountSolutions under explicit tuning knobs.
func CountSolutionsCfg(cfg constants.Cfg, size, threads, part, parts int) uint64 {
	if size < 5 {
		panic("solcount: the quadrant decomposition needs size 5 or above")
	}

	sch := scheduler.New(threads)
	div := scheduler.NewDivider(part, parts)

	quarterSize := size / 2
	pk := pack.NewIter(quarterSize)
	var symm qsym.Symmetry
	if size >= 22 {
		symm = qsym.NewRowSymmetry(quarterSize, pk)
	} else {
		symm = qsym.NewNoSymmetry(quarterSize, pk)
	}

	quarter := subsquare.New(quarterSize, symm, pk)
	quad := quadrants.New(size, quarter)

	makers := startMakers(size)
	freezes := make([]*freeze.Freeze, len(makers))
	for i, mk := range makers {
		halfLen, holeCount := mk().SieveSpec()
		freezes[i] = freeze.New(sieve.New(cfg, halfLen, holeCount), sch.Threaded())
	}

	return sch.Launch(func(w *scheduler.Worker) uint64 {
		var total uint64
		for i, mk := range makers {
			total += countStep(cfg, w, mk(), freezes[i], quad, div)
		}
		return total
	})
}

// startMakers lists the variants active for the board's parity. Workers
// build private instances: the seeded variants mutate per-seed state.
func startMakers(size int) []func() start.Config {
	if size&1 != 0 {
		return []func() start.Config{
			func() start.Config { return start.NewCenter(size) },
			func() start.Config { return start.NewTwoD(size) },
			func() start.Config { return start.NewOneD(size) },
		}
	}

	return []func() start.Config{
		func() start.Config { return start.NewEmpty(size) },
	}
}

// countStep runs one variant on one worker: build the private sink,
// register it with the variant's freeze, and hand control to the seed loop
// when the variant has one.
func countStep(cfg constants.Cfg, w *scheduler.Worker, st start.Config,
	frz *freeze.Freeze, quad *quadrants.Engine, div scheduler.Divider) uint64 {

	halfLen, holeCount := st.SieveSpec()
	env := &quadrants.Context{
		Start:   st,
		Worker:  w,
		Sink:    sieve.New(cfg, halfLen, holeCount),
		Freeze:  frz,
		Divider: div,
	}
	frz.Reg(env.Sink)

	var res uint64
	if looper, ok := st.(quadrants.SeedLooper); ok {
		res = looper.ForCR(env, quad)
	} else {
		res = quad.Run(env)
	}

	quad.Shrink(env)
	return res
}
