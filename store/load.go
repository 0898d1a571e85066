package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Load reads back the Run previously written by Save, or (nil, nil) if the
// database has never had one saved (a cold start with no rows yet).
func (s *Store) Load() (*run.Run, error) {
	r := run.New()
	found, err := s.loadMeta(r)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	segs, err := s.loadSegments()
	if err != nil {
		return nil, err
	}
	r.SetSegments(segs)

	attempts, err := s.loadAttempts()
	if err != nil {
		return nil, err
	}
	r.SetAttempts(attempts)

	if err := s.loadComparisonNames(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Store) loadMeta(r *run.Run) (bool, error) {
	row := s.db.QueryRow(`
		SELECT game_name, category_name, attempt_count, offset_ns, run_id, platform, region, emulator_used
		FROM run_meta WHERE id = 1
	`)
	var offsetNs int64
	var emulatorUsed int
	err := row.Scan(&r.GameName, &r.CategoryName, &r.AttemptCount, &offsetNs, &r.RunID,
		&r.Metadata.Platform, &r.Metadata.Region, &emulatorUsed)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load meta: %w", err)
	}
	r.Offset = timing.Duration(offsetNs)
	r.Metadata.EmulatorUsed = emulatorUsed != 0
	return true, nil
}

func (s *Store) loadSegments() ([]*run.Segment, error) {
	rows, err := s.db.Query(`
		SELECT position, name, pb_real_ns, pb_game_ns, best_real_ns, best_game_ns, icon_id, icon_data
		FROM segments ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("store: load segments: %w", err)
	}
	defer rows.Close()

	var segs []*run.Segment
	var positions []int
	for rows.Next() {
		var pos int
		var name, iconID string
		var pbReal, pbGame, bestReal, bestGame sql.NullInt64
		var iconData []byte
		if err := rows.Scan(&pos, &name, &pbReal, &pbGame, &bestReal, &bestGame, &iconID, &iconData); err != nil {
			return nil, fmt.Errorf("store: scan segment: %w", err)
		}
		seg := run.NewSegment(name)
		seg.SetPersonalBestSplitTime(timing.Time{Real: durationFromNullable(pbReal), Game: durationFromNullable(pbGame)})
		seg.SetBestSegmentTime(timing.Time{Real: durationFromNullable(bestReal), Game: durationFromNullable(bestGame)})
		seg.SetIcon(run.Icon{ID: iconID, Data: iconData})
		segs = append(segs, seg)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate segments: %w", err)
	}

	byPos := make(map[int]*run.Segment, len(segs))
	for i, p := range positions {
		byPos[p] = segs[i]
	}

	if err := loadSegmentHistory(s.db, byPos); err != nil {
		return nil, err
	}
	if err := loadComparisons(s.db, byPos); err != nil {
		return nil, err
	}
	return segs, nil
}

func loadSegmentHistory(db *sql.DB, byPos map[int]*run.Segment) error {
	rows, err := db.Query(`SELECT segment_position, attempt_id, real_ns, game_ns FROM segment_history`)
	if err != nil {
		return fmt.Errorf("store: load segment_history: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pos int
		var attemptID int32
		var realNs, gameNs sql.NullInt64
		if err := rows.Scan(&pos, &attemptID, &realNs, &gameNs); err != nil {
			return fmt.Errorf("store: scan segment_history: %w", err)
		}
		seg, ok := byPos[pos]
		if !ok {
			continue
		}
		seg.SegmentHistory().Insert(attemptID, timing.Time{Real: durationFromNullable(realNs), Game: durationFromNullable(gameNs)})
	}
	return rows.Err()
}

func loadComparisons(db *sql.DB, byPos map[int]*run.Segment) error {
	rows, err := db.Query(`SELECT segment_position, name, real_ns, game_ns FROM comparisons`)
	if err != nil {
		return fmt.Errorf("store: load comparisons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pos int
		var name string
		var realNs, gameNs sql.NullInt64
		if err := rows.Scan(&pos, &name, &realNs, &gameNs); err != nil {
			return fmt.Errorf("store: scan comparisons: %w", err)
		}
		seg, ok := byPos[pos]
		if !ok {
			continue
		}
		seg.SetComparison(name, timing.Time{Real: durationFromNullable(realNs), Game: durationFromNullable(gameNs)})
	}
	return rows.Err()
}

func (s *Store) loadAttempts() ([]run.Attempt, error) {
	rows, err := s.db.Query(`SELECT attempt_index, real_ns, game_ns, started, ended, pause_ns FROM attempts ORDER BY attempt_index`)
	if err != nil {
		return nil, fmt.Errorf("store: load attempts: %w", err)
	}
	defer rows.Close()

	var attempts []run.Attempt
	for rows.Next() {
		var a run.Attempt
		var realNs, gameNs, pauseNs sql.NullInt64
		var started, ended sql.NullString
		if err := rows.Scan(&a.Index, &realNs, &gameNs, &started, &ended, &pauseNs); err != nil {
			return nil, fmt.Errorf("store: scan attempt: %w", err)
		}
		a.Time = timing.Time{Real: durationFromNullable(realNs), Game: durationFromNullable(gameNs)}
		a.PauseTime = durationFromNullable(pauseNs)
		if started.Valid {
			if t, err := time.Parse(timeLayout, started.String); err == nil {
				a.Started = &t
			}
		}
		if ended.Valid {
			if t, err := time.Parse(timeLayout, ended.String); err == nil {
				a.Ended = &t
			}
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (s *Store) loadComparisonNames(r *run.Run) error {
	rows, err := s.db.Query(`SELECT name FROM comparison_names ORDER BY display_order`)
	if err != nil {
		return fmt.Errorf("store: load comparison_names: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("store: scan comparison_names: %w", err)
		}
		if err := r.AddComparisonName(name); err != nil {
			return fmt.Errorf("store: restoring comparison name %q: %w", name, err)
		}
	}
	return rows.Err()
}
