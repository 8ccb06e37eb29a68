package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/rubiks"
)

// timeFormat keeps a fixed width so created_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Scramble is one recorded shuffle. Only the generated moves are stored;
// the cube is re-derived by replaying them.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	Seed       uint64
	MoveCount  int
	Moves      string
}

// ParsedMoves decodes the stored notation.
func (s *Scramble) ParsedMoves() ([]rubiks.Move, error) {
	return rubiks.ParseMoves(s.Moves)
}

// Replay applies the stored moves to a fresh cube.
func (s *Scramble) Replay() (*rubiks.Cube, error) {
	moves, err := s.ParsedMoves()
	if err != nil {
		return nil, fmt.Errorf("scramble %s: %w", s.ScrambleID, err)
	}
	c := rubiks.NewCube()
	if err := c.Apply(moves...); err != nil {
		return nil, fmt.Errorf("scramble %s: %w", s.ScrambleID, err)
	}
	return c, nil
}

// ScrambleRepository provides access to the scramble log.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create records a shuffle and returns its ID.
func (r *ScrambleRepository) Create(seed uint64, moves []rubiks.Move) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	// The seed is stored as text because SQLite integers are signed.
	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, seed, move_count, moves)
		VALUES (?, ?, ?, ?, ?)
	`, id, createdAt.Format(timeFormat), strconv.FormatUint(seed, 10), len(moves), rubiks.FormatMoves(moves))

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. It returns nil when no scramble matches.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, created_at, seed, move_count, moves
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID)

	s, err := scanScramble(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}
	return s, nil
}

// List returns the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, seed, move_count, moves
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// Count returns the number of recorded scrambles.
func (r *ScrambleRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScramble(row scanner) (*Scramble, error) {
	var s Scramble
	var createdAtStr, seedStr string

	if err := row.Scan(&s.ScrambleID, &createdAtStr, &seedStr, &s.MoveCount, &s.Moves); err != nil {
		return nil, err
	}

	var err error
	s.CreatedAt, err = time.Parse(timeFormat, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAtStr, err)
	}
	s.Seed, err = strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad seed %q: %w", seedStr, err)
	}

	return &s, nil
}
