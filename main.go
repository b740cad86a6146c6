// ════════════════════════════════════════════════════════════════════════════════════════════════
// N-Queens Placement Counter - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: CLI Entry & Run Orchestration
//
// Description:
//   Parses the positional arguments, resolves the tuning knobs, runs the counter and prints
//   the result with wall-clock timing. Optional hooks: a CPU profile of the run and a SQLite
//   ledger row per completed run, both enabled through environment variables.
//
// Usage:
//   program [threads [parts [part]]]      (defaults: 4 threads, the whole iteration space)
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"

	"main/constants"
	"main/debug"
	"main/resultstore"
	"main/solcount"
	"main/utils"
)

func main() {
	threads, parts, part := 4, 1, 0

	if len(os.Args) >= 2 {
		threads = utils.Atoi(os.Args[1])
	}
	if len(os.Args) >= 3 {
		parts = utils.Atoi(os.Args[2])
	}
	if len(os.Args) >= 4 {
		part = utils.Atoi(os.Args[3])
	}

	cfg := loadCfg()

	if os.Getenv("NQUEENS_PROFILE") == "cpu" {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	startClock := time.Now()
	res := solcount.CountSolutionsCfg(cfg, constants.BoardSize, threads, part, parts)
	elapsed := time.Since(startClock).Seconds()

	utils.PrintLine("Result: " + utils.Utoa(res) + "\n")
	utils.PrintLine("Elapsed time: " + strconv.FormatFloat(elapsed, 'g', -1, 64) + " s\n")

	recordRun(resultstore.Run{
		BoardSize: constants.BoardSize,
		Threads:   threads,
		Part:      part,
		Parts:     parts,
		Count:     res,
		Elapsed:   elapsed,
	})
}

// loadCfg resolves the knobs for the reference board size, overlaid with
// the optional tuning file. A requested but unusable file is fatal.
func loadCfg() constants.Cfg {
	cfg := constants.ForSize(constants.BoardSize)

	path := os.Getenv("NQUEENS_TUNING")
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to read tuning file " + path + ": " + err.Error())
	}

	cfg, err = constants.ApplyTuning(cfg, data)
	if err != nil {
		panic("Failed to parse tuning file " + path + ": " + err.Error())
	}

	debug.DropMessage("TUNING", "applied overrides from "+path)
	return cfg
}

// recordRun appends the run to the ledger when one is configured. Ledger
// trouble is reported, never fatal: the count already reached stdout.
func recordRun(run resultstore.Run) {
	path := os.Getenv("NQUEENS_LEDGER")
	if path == "" {
		return
	}

	store, err := resultstore.Open(path)
	if err != nil {
		debug.DropError("LEDGER", err)
		return
	}
	defer store.Close()

	fp, err := store.Record(run)
	if err != nil {
		debug.DropError("LEDGER", err)
		return
	}

	debug.DropMessage("LEDGER", "recorded run "+fp[:12])
}
