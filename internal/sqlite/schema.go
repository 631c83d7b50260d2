// Package sqlite persists link-check run reports to a SQLite database so
// violations can be queried after the fact instead of scraped from text
// output.
package sqlite

// Schema DDL. The store is append-only; one run row per invocation, one
// frame row per checked frame, one violation row per failed adjacency.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    result_dir TEXT NOT NULL,
    partitions INTEGER NOT NULL,
    chain_length INTEGER NOT NULL,
    link_kappa REAL NOT NULL,
    frames_checked INTEGER NOT NULL,
    frames_errored INTEGER NOT NULL,
    passed INTEGER NOT NULL
);`

	createFrames = `CREATE TABLE IF NOT EXISTS frames (
    run_id TEXT NOT NULL,
    frame_number INTEGER NOT NULL,
    path TEXT NOT NULL,
    records INTEGER NOT NULL,
    bilateral INTEGER NOT NULL,
    violations INTEGER NOT NULL,
    PRIMARY KEY (run_id, frame_number),
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`

	createViolations = `CREATE TABLE IF NOT EXISTS violations (
    run_id TEXT NOT NULL,
    frame_number INTEGER NOT NULL,
    partition_idx INTEGER NOT NULL,
    position_idx INTEGER NOT NULL,
    gid0 REAL NOT NULL,
    gid1 REAL NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id)
);`
)

var schemaDDL = []string{createRuns, createFrames, createViolations}
