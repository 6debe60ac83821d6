package manifest

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"docshard/internal/filter"
	"docshard/internal/shard"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale catalogs must be deleted and rebuilt.
const schemaVersion = 1

// ErrSchemaMismatch indicates the catalog was written by an incompatible
// docshard version.
var ErrSchemaMismatch = errors.New("manifest schema version mismatch")

// ErrNoRuns indicates the catalog holds no completed runs yet.
var ErrNoRuns = errors.New("manifest has no runs")

// StateDirName is the metadata directory created inside the output root.
const StateDirName = ".docshard"

// Store manages the shard catalog backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database inside outputDir.
func Open(outputDir string) (*Store, error) {
	stateDir := filepath.Join(outputDir, StateDirName)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	dbPath := filepath.Join(stateDir, "manifest.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the catalog database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: catalog has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// BeginRun inserts a new run row and returns its id.
func (s *Store) BeginRun(ctx context.Context, input string) (string, error) {
	id := uuid.NewString()
	started := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, input, started_at) VALUES (?, ?, ?)",
		id, input, started,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// RecordShard stores one closed shard file for the run.
func (s *Store) RecordShard(ctx context.Context, runID string, rec shard.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO shards (run_id, dir, file_index, path, docs, first_doc_id, last_doc_id)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.Dir, rec.FileIndex, rec.Path, rec.Docs,
		nullableID(rec.Docs, rec.FirstID), nullableID(rec.Docs, rec.LastID),
	)
	if err != nil {
		return fmt.Errorf("insert shard %s: %w", rec.Path, err)
	}
	return nil
}

// FinishRun stamps the run row with its completion time and final counters.
func (s *Store) FinishRun(ctx context.Context, runID string, stats filter.Stats) error {
	finished := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ?, docs_seen = ?, docs_accepted = ? WHERE id = ?",
		finished, stats.Seen, stats.Accepted, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: run %s not found", runID)
	}
	return nil
}

// Run describes one extraction run.
type Run struct {
	ID         string
	Input      string
	StartedAt  string
	FinishedAt string
	Seen       int
	Accepted   int
}

// Shard describes one catalogued shard file.
type Shard struct {
	Dir       string
	FileIndex int
	Path      string
	Docs      int
	FirstID   int
	LastID    int
}

// LatestRun returns the most recently started run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	var (
		run      Run
		finished sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input, started_at, finished_at, docs_seen, docs_accepted
         FROM runs ORDER BY started_at DESC LIMIT 1`,
	).Scan(&run.ID, &run.Input, &run.StartedAt, &finished, &run.Seen, &run.Accepted)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	if err != nil {
		return Run{}, fmt.Errorf("query latest run: %w", err)
	}
	run.FinishedAt = finished.String
	return run, nil
}

// Shards lists the shard files written by a run, in rotation order.
func (s *Store) Shards(ctx context.Context, runID string) ([]Shard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT dir, file_index, path, docs, first_doc_id, last_doc_id
         FROM shards WHERE run_id = ? ORDER BY dir, file_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("query shards: %w", err)
	}
	defer rows.Close()

	var shards []Shard
	for rows.Next() {
		var (
			sh          Shard
			first, last sql.NullInt64
		)
		if err := rows.Scan(&sh.Dir, &sh.FileIndex, &sh.Path, &sh.Docs, &first, &last); err != nil {
			return nil, fmt.Errorf("scan shard: %w", err)
		}
		sh.FirstID = int(first.Int64)
		sh.LastID = int(last.Int64)
		shards = append(shards, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shards: %w", err)
	}
	return shards, nil
}

// nullableID maps the id range of an empty shard to NULL.
func nullableID(docs, id int) any {
	if docs == 0 {
		return nil
	}
	return id
}
