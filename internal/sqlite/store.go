package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/linkcheck/internal/check"
	"github.com/mesh-intelligence/linkcheck/pkg/types"
)

// Store writes run reports to a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the report database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening report database %s: %w", path, err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing report schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists one validation run and returns its generated run id.
// The write is transactional: the run appears with all of its frame and
// violation rows or not at all.
func (s *Store) SaveRun(cfg types.Config, summary *check.Summary) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning report transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, started_at, result_dir, partitions, chain_length,
		    link_kappa, frames_checked, frames_errored, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), cfg.ResultDir,
		cfg.Partitions, cfg.ChainLength, cfg.LinkKappa,
		len(summary.Reports), summary.Errored, boolInt(summary.Passed()),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	frameStmt, err := tx.Prepare(
		`INSERT INTO frames (run_id, frame_number, path, records, bilateral, violations)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing frame insert: %w", err)
	}
	defer frameStmt.Close()

	vioStmt, err := tx.Prepare(
		`INSERT INTO violations (run_id, frame_number, partition_idx, position_idx, gid0, gid1)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing violation insert: %w", err)
	}
	defer vioStmt.Close()

	for _, r := range summary.Reports {
		if _, err := frameStmt.Exec(runID, r.FrameNumber, r.Path, r.Records,
			r.Bilateral, len(r.Violations)); err != nil {
			return "", fmt.Errorf("inserting frame %d: %w", r.FrameNumber, err)
		}
		for _, v := range r.Violations {
			if _, err := vioStmt.Exec(runID, r.FrameNumber, v.Partition,
				v.Position, v.Gid0, v.Gid1); err != nil {
				return "", fmt.Errorf("inserting violation for frame %d: %w", r.FrameNumber, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing report transaction: %w", err)
	}
	return runID, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
