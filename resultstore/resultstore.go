// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ RUN LEDGER
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: N-Queens Placement Counter
// Component: SQLite Result Persistence
//
// Description:
//   Appends one row per completed counting run to a local SQLite database, each tagged with
//   a SHA3-256 fingerprint of the run parameters. Long computations split into (part, parts)
//   slices land as separate rows sharing the board size, so partial campaigns can be summed
//   and audited later. Entirely off the hot path: one insert after the count finishes.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package resultstore

import (
	"database/sql"
	"encoding/hex"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/sha3"

	"main/utils"
)

// Run is one completed counting run.
type Run struct {
	BoardSize int
	Threads   int
	Part      int
	Parts     int
	Count     uint64
	Elapsed   float64 // seconds
}

// Store wraps the ledger database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	fingerprint TEXT    NOT NULL,
	board_size  INTEGER NOT NULL,
	threads     INTEGER NOT NULL,
	part        INTEGER NOT NULL,
	parts       INTEGER NOT NULL,
	result      INTEGER NOT NULL,
	elapsed_s   REAL    NOT NULL,
	recorded_at INTEGER NOT NULL
)`

// Open creates or opens the ledger at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one run row and returns its fingerprint.
func (s *Store) Record(r Run) (string, error) {
	fp := Fingerprint(r)

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (fingerprint, board_size, threads, part, parts, result, elapsed_s, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		fp, r.BoardSize, r.Threads, r.Part, r.Parts,
		int64(r.Count), r.Elapsed, time.Now().Unix())

	return fp, err
}

// TotalFor sums recorded results for one board size across distinct parts
// of the given campaign width, along with the number of parts seen.
func (s *Store) TotalFor(boardSize, parts int) (uint64, int, error) {
	rows, err := s.db.Query(
		`SELECT part, result FROM runs
		 WHERE board_size = ? AND parts = ?
		 ORDER BY id`, boardSize, parts)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	latest := make(map[int]uint64) // later rows supersede reruns of a part
	for rows.Next() {
		var part int
		var result int64
		if err := rows.Scan(&part, &result); err != nil {
			return 0, 0, err
		}
		latest[part] = uint64(result)
	}
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}

	var total uint64
	for _, r := range latest {
		total += r
	}
	return total, len(latest), nil
}

// Fingerprint hashes the run identity (not its outcome): board size,
// thread count and slice coordinates.
func Fingerprint(r Run) string {
	key := "n=" + utils.Itoa(r.BoardSize) +
		";t=" + utils.Itoa(r.Threads) +
		";p=" + utils.Itoa(r.Part) +
		"/" + utils.Itoa(r.Parts)

	sum := sha3.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
