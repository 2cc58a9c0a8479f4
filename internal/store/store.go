// Package store keeps a SQLite history of finished matches.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/peterkuimelis/colossus/internal/game"
	"github.com/peterkuimelis/colossus/internal/store/migrations"
)

// ErrNotFound is returned when a match id is unknown.
var ErrNotFound = errors.New("match not found")

// Match is one finished game and its combat log.
type Match struct {
	ID        string    `json:"id"`
	Deck0     string    `json:"deck0"`
	Deck1     string    `json:"deck1"`
	Winner    int       `json:"winner"` // -1 for a draw or an unfinished game
	Result    string    `json:"result"`
	Rounds    int       `json:"rounds"`
	Turns     int       `json:"turns"`
	Health    [2]int    `json:"health"`
	Gold      [2]int    `json:"gold"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	Log       []string  `json:"log,omitempty"`
}

// NewMatchID returns a fresh random match id.
func NewMatchID() string {
	return uuid.NewString()
}

// MatchFromSnapshot records the outcome shown by snap.
func MatchFromSnapshot(id string, snap game.Snapshot, deck0, deck1 string, seed int64) Match {
	winner := -1
	if snap.Over {
		winner = snap.Winner
	}
	return Match{
		ID:     id,
		Deck0:  deck0,
		Deck1:  deck1,
		Winner: winner,
		Result: snap.Result,
		Rounds: snap.Round,
		Turns:  snap.Turn,
		Health: [2]int{snap.Players[0].Health, snap.Players[1].Health},
		Gold:   [2]int{snap.Players[0].Gold, snap.Players[1].Gold},
		Seed:   seed,
		Log:    snap.CombatLog,
	}
}

// Store persists match history in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite store at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveMatch inserts m and its log. A zero CreatedAt is set to now.
func (s *Store) SaveMatch(ctx context.Context, m Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("match id is required")
	}
	created := m.CreatedAt.UTC()
	if created.IsZero() {
		created = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save match: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO matches (
		   id, deck0, deck1, winner, result, rounds, turns,
		   health0, health1, gold0, gold1, seed, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Deck0, m.Deck1, m.Winner, m.Result, m.Rounds, m.Turns,
		m.Health[0], m.Health[1], m.Gold[0], m.Gold[1], m.Seed, created.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert match %s: %w", m.ID, err)
	}
	for i, line := range m.Log {
		if _, err := tx.ExecContext(ctx, `INSERT INTO match_log (match_id, seq, line) VALUES (?, ?, ?)`, m.ID, i, line); err != nil {
			return fmt.Errorf("insert match log %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit match %s: %w", m.ID, err)
	}
	return nil
}

const matchColumns = `id, deck0, deck1, winner, result, rounds, turns, health0, health1, gold0, gold1, seed, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (Match, error) {
	var m Match
	var created int64
	err := row.Scan(&m.ID, &m.Deck0, &m.Deck1, &m.Winner, &m.Result, &m.Rounds, &m.Turns,
		&m.Health[0], &m.Health[1], &m.Gold[0], &m.Gold[1], &m.Seed, &created)
	if err != nil {
		return Match{}, err
	}
	m.CreatedAt = time.UnixMilli(created).UTC()
	return m, nil
}

// GetMatch returns the match with id, including its full log.
func (s *Store) GetMatch(ctx context.Context, id string) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	m, err := scanMatch(s.db.QueryRowContext(ctx, `SELECT `+matchColumns+` FROM matches WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, ErrNotFound
	}
	if err != nil {
		return Match{}, fmt.Errorf("get match %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT line FROM match_log WHERE match_id = ? ORDER BY seq`, id)
	if err != nil {
		return Match{}, fmt.Errorf("get match log %s: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return Match{}, fmt.Errorf("scan match log %s: %w", id, err)
		}
		m.Log = append(m.Log, line)
	}
	if err := rows.Err(); err != nil {
		return Match{}, fmt.Errorf("read match log %s: %w", id, err)
	}
	return m, nil
}

// ListMatches returns up to limit matches, newest first, without logs.
func (s *Store) ListMatches(ctx context.Context, limit int) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}
