// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round is one player's completed round on a course.
type Round struct {
	ID        int64
	MatchID   string // Shared by all players of a match
	Course    string
	Player    string
	Strokes   [course.HoleCount]int
	Total     int
	Par       int
	CreatedAt time.Time
}

// ToPar returns the total relative to the course par.
func (r Round) ToPar() int {
	return r.Total - r.Par
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL,
			course TEXT NOT NULL,
			player TEXT NOT NULL,
			strokes TEXT NOT NULL,
			total INTEGER NOT NULL,
			par INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_course ON rounds(course);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(course, total ASC);
		CREATE INDEX IF NOT EXISTS idx_rounds_match ON rounds(match_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertRound records a single round and returns its ID.
func insertRound(x execer, r Round) (int64, error) {
	result, err := x.Exec(
		`INSERT INTO rounds (match_id, course, player, strokes, total, par)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Course, r.Player, encodeStrokes(r.Strokes), r.Total, r.Par,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round of %s: %w", r.Player, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatch records the rounds of every player of a match atomically.
func (s *Store) SaveMatch(rounds []Round) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	for _, r := range rounds {
		if _, err := insertRound(tx, r); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return nil
}

const roundColumns = `id, match_id, course, player, strokes, total, par, created_at`

// BestRounds retrieves the best N rounds on the given course.
// Results are ordered by total ascending, older rounds first on ties.
func (s *Store) BestRounds(courseName string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE course = ?
		 ORDER BY total ASC, id ASC
		 LIMIT ?`,
		courseName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// MatchRounds retrieves the rounds saved for one match in insertion order.
func (s *Store) MatchRounds(matchID string) ([]Round, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE match_id = ?
		 ORDER BY id ASC`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return scanRounds(rows)
}

// BestTotal returns the lowest total on the given course.
// Returns 0 if no rounds exist.
func (s *Store) BestTotal(courseName string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(total) FROM rounds WHERE course = ?",
		courseName,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best total: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return int(total.Int64), nil
}

// ClearRounds deletes all rounds for the given course.
func (s *Store) ClearRounds(courseName string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE course = ?", courseName)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// CourseStats contains aggregated statistics for a course.
type CourseStats struct {
	Course     string
	Rounds     int
	Matches    int
	BestTotal  int
	AvgTotal   float64
	LastPlayed time.Time
}

// GetCourseStats retrieves aggregated statistics for a specific course.
func (s *Store) GetCourseStats(courseName string) (*CourseStats, error) {
	stats := &CourseStats{Course: courseName}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT match_id), COALESCE(MIN(total), 0), COALESCE(AVG(total), 0), MAX(created_at)
		 FROM rounds WHERE course = ?`,
		courseName,
	).Scan(&stats.Rounds, &stats.Matches, &stats.BestTotal, &stats.AvgTotal, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get course stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// GetAllCourseStats retrieves statistics for all courses that have been played.
func (s *Store) GetAllCourseStats() (map[string]*CourseStats, error) {
	rows, err := s.db.Query(
		`SELECT course, COUNT(*), COUNT(DISTINCT match_id), MIN(total), AVG(total), MAX(created_at)
		 FROM rounds
		 GROUP BY course`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all course stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CourseStats)
	for rows.Next() {
		var cs CourseStats
		var lastPlayed any
		if err := rows.Scan(&cs.Course, &cs.Rounds, &cs.Matches, &cs.BestTotal, &cs.AvgTotal, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTimestamp(lastPlayed)
		stats[cs.Course] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

func scanRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var strokes string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.MatchID, &r.Course, &r.Player, &strokes, &r.Total, &r.Par, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		var err error
		if r.Strokes, err = decodeStrokes(strokes); err != nil {
			return nil, fmt.Errorf("storage: round %d: %w", r.ID, err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// parseTimestamp handles both time.Time and string datetimes.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Strokes are stored as a comma separated list, one entry per hole.
func encodeStrokes(strokes [course.HoleCount]int) string {
	parts := make([]string, len(strokes))
	for i, s := range strokes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

var errBadStrokes = errors.New("malformed strokes")

func decodeStrokes(s string) ([course.HoleCount]int, error) {
	var out [course.HoleCount]int
	parts := strings.Split(s, ",")
	if len(parts) != course.HoleCount {
		return out, fmt.Errorf("%w: %d holes", errBadStrokes, len(parts))
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, fmt.Errorf("%w: %v", errBadStrokes, err)
		}
		out[i] = n
	}
	return out, nil
}

// SaveResult implements match.ResultSaver.
// Every player of the match gets one round row.
func (s *Store) SaveResult(res match.Result) error {
	rounds := make([]Round, len(res.Players))
	for i, p := range res.Players {
		rounds[i] = Round{
			MatchID: res.MatchID,
			Course:  res.Course,
			Player:  p.Name,
			Strokes: p.Strokes,
			Total:   p.Total(),
			Par:     res.Par,
		}
	}
	return s.SaveMatch(rounds)
}

// Ensure Store implements ResultSaver
var _ match.ResultSaver = (*Store)(nil)
