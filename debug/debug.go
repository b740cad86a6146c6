// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path logging helper (zero-alloc)
//
// Purpose:
//   - Logs infrequent events without introducing heap pressure.
//   - Used only in cold paths: startup, applied tuning overrides, ledger activity.
//
// Notes:
//   - Avoids fmt.Sprintf to minimize footprint and latency.
//   - Never called from the counting phases.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "main/utils"

// DropError logs an error message with an alloc-free print strategy.
// Writes directly to stderr, bypassing any buffering.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs a diagnostic message with zero-allocation print strategy.
// Used for startup notes, configuration overrides, and ledger activity.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
