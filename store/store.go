// Package store persists a run.Run to a local SQLite database: tables for
// segments with their history, the attempt log, and the comparisons map.
// This is local single-user history, not server-side persistence.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Store wraps a SQLite connection holding one Run's full state: segments,
// their history, the attempt log, and metadata, across process restarts.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and ensures
// its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS run_meta (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			game_name TEXT NOT NULL DEFAULT '',
			category_name TEXT NOT NULL DEFAULT '',
			attempt_count INTEGER NOT NULL DEFAULT 0,
			offset_ns INTEGER NOT NULL DEFAULT 0,
			run_id TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT '',
			region TEXT NOT NULL DEFAULT '',
			emulator_used INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS segments (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			pb_real_ns INTEGER,
			pb_game_ns INTEGER,
			best_real_ns INTEGER,
			best_game_ns INTEGER,
			icon_id TEXT NOT NULL DEFAULT '',
			icon_data BLOB
		)`,
		`CREATE TABLE IF NOT EXISTS segment_history (
			segment_position INTEGER NOT NULL,
			attempt_id INTEGER NOT NULL,
			real_ns INTEGER,
			game_ns INTEGER,
			PRIMARY KEY (segment_position, attempt_id)
		)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			attempt_index INTEGER PRIMARY KEY,
			real_ns INTEGER,
			game_ns INTEGER,
			started TEXT,
			ended TEXT,
			pause_ns INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS comparisons (
			segment_position INTEGER NOT NULL,
			name TEXT NOT NULL,
			real_ns INTEGER,
			game_ns INTEGER,
			PRIMARY KEY (segment_position, name)
		)`,
		`CREATE TABLE IF NOT EXISTS comparison_names (
			name TEXT PRIMARY KEY,
			display_order INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("store: migrate: %w", err)
		}
	}
	return nil
}

func nullableNs(d *timing.Duration) sql.NullInt64 {
	if d == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*d), Valid: true}
}

func durationFromNullable(n sql.NullInt64) *timing.Duration {
	if !n.Valid {
		return nil
	}
	d := timing.Duration(n.Int64)
	return &d
}

// Save persists r's full state, replacing whatever was previously stored.
// The whole save runs in one transaction so a crash mid-write never leaves
// a half-updated Run on disk.
func (s *Store) Save(r *run.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: save: begin: %w", err)
	}
	defer tx.Rollback()

	if err := s.saveMeta(tx, r); err != nil {
		return err
	}
	if err := s.saveSegments(tx, r); err != nil {
		return err
	}
	if err := s.saveAttempts(tx, r); err != nil {
		return err
	}
	if err := s.saveComparisonNames(tx, r); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) saveMeta(tx *sql.Tx, r *run.Run) error {
	_, err := tx.Exec(`
		INSERT INTO run_meta (id, game_name, category_name, attempt_count, offset_ns, run_id, platform, region, emulator_used)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			game_name=excluded.game_name, category_name=excluded.category_name,
			attempt_count=excluded.attempt_count, offset_ns=excluded.offset_ns,
			run_id=excluded.run_id, platform=excluded.platform, region=excluded.region,
			emulator_used=excluded.emulator_used
	`, r.GameName, r.CategoryName, r.AttemptCount, int64(r.Offset), r.RunID,
		r.Metadata.Platform, r.Metadata.Region, boolToInt(r.Metadata.EmulatorUsed))
	if err != nil {
		return fmt.Errorf("store: save meta: %w", err)
	}
	return nil
}

func (s *Store) saveSegments(tx *sql.Tx, r *run.Run) error {
	if _, err := tx.Exec(`DELETE FROM segments`); err != nil {
		return fmt.Errorf("store: clearing segments: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM segment_history`); err != nil {
		return fmt.Errorf("store: clearing segment_history: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM comparisons`); err != nil {
		return fmt.Errorf("store: clearing comparisons: %w", err)
	}
	for pos, seg := range r.Segments() {
		pb := seg.PersonalBestSplitTime()
		best := seg.BestSegmentTime()
		_, err := tx.Exec(`
			INSERT INTO segments (position, name, pb_real_ns, pb_game_ns, best_real_ns, best_game_ns, icon_id, icon_data)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, pos, seg.Name(), nullableNs(pb.Real), nullableNs(pb.Game), nullableNs(best.Real), nullableNs(best.Game),
			seg.Icon().ID, seg.Icon().Data)
		if err != nil {
			return fmt.Errorf("store: save segment %d: %w", pos, err)
		}

		seg.SegmentHistory().All(func(id int32, t timing.Time) {
			if err != nil {
				return
			}
			_, err = tx.Exec(`
				INSERT INTO segment_history (segment_position, attempt_id, real_ns, game_ns)
				VALUES (?, ?, ?, ?)
			`, pos, id, nullableNs(t.Real), nullableNs(t.Game))
		})
		if err != nil {
			return fmt.Errorf("store: save segment history for segment %d: %w", pos, err)
		}

		for _, name := range seg.Comparisons().Names() {
			t := seg.Comparison(name)
			_, err := tx.Exec(`
				INSERT INTO comparisons (segment_position, name, real_ns, game_ns)
				VALUES (?, ?, ?, ?)
			`, pos, name, nullableNs(t.Real), nullableNs(t.Game))
			if err != nil {
				return fmt.Errorf("store: save comparison %q for segment %d: %w", name, pos, err)
			}
		}
	}
	return nil
}

func (s *Store) saveAttempts(tx *sql.Tx, r *run.Run) error {
	if _, err := tx.Exec(`DELETE FROM attempts`); err != nil {
		return fmt.Errorf("store: clearing attempts: %w", err)
	}
	for _, a := range r.Attempts() {
		var started, ended sql.NullString
		if a.Started != nil {
			started = sql.NullString{String: a.Started.Format(timeLayout), Valid: true}
		}
		if a.Ended != nil {
			ended = sql.NullString{String: a.Ended.Format(timeLayout), Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO attempts (attempt_index, real_ns, game_ns, started, ended, pause_ns)
			VALUES (?, ?, ?, ?, ?, ?)
		`, a.Index, nullableNs(a.Time.Real), nullableNs(a.Time.Game), started, ended, nullableNs(a.PauseTime))
		if err != nil {
			return fmt.Errorf("store: save attempt %d: %w", a.Index, err)
		}
	}
	return nil
}

func (s *Store) saveComparisonNames(tx *sql.Tx, r *run.Run) error {
	if _, err := tx.Exec(`DELETE FROM comparison_names`); err != nil {
		return fmt.Errorf("store: clearing comparison_names: %w", err)
	}
	for i, name := range r.ComparisonNames() {
		if _, err := tx.Exec(`INSERT INTO comparison_names (name, display_order) VALUES (?, ?)`, name, i); err != nil {
			return fmt.Errorf("store: save comparison name %q: %w", name, err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"
