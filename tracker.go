package rubiks

import (
	"sync"
	"time"
)

// MoveEvent is a move applied through a Tracker.
type MoveEvent struct {
	Move Move
	Time time.Time
}

// TrackerOption configures a Tracker.
type TrackerOption func(*trackerConfig)

type trackerConfig struct {
	moveHistory bool
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via History().
// Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) TrackerOption {
	return func(c *trackerConfig) {
		c.moveHistory = enabled
	}
}

// Tracker wraps a Cube for use from several goroutines. Writers hold an
// exclusive lock for one move; readers work on snapshots.
type Tracker struct {
	mu       sync.RWMutex
	cube     *Cube
	history  []MoveEvent
	keep     bool
	solved   bool
	onMove   []func(MoveEvent)
	onSolved []func()
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker(opts ...TrackerOption) *Tracker {
	cfg := &trackerConfig{moveHistory: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cube:   NewCube(),
		keep:   cfg.moveHistory,
		solved: true,
	}
}

// OnMove registers a callback fired after every applied move. Callbacks run
// on the applying goroutine without the lock held.
func (t *Tracker) OnMove(fn func(MoveEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMove = append(t.onMove, fn)
}

// OnSolved registers a callback fired when a move leaves the cube solved
// after it was not.
func (t *Tracker) OnSolved(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSolved = append(t.onSolved, fn)
}

// Reset returns the cube to solved and clears the history.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cube.Reset()
	t.history = nil
	t.solved = true
}

// ApplyMove applies a move and fires callbacks.
func (t *Tracker) ApplyMove(m Move) error {
	t.mu.Lock()
	if err := t.cube.ApplyMove(m); err != nil {
		t.mu.Unlock()
		return err
	}
	ev := MoveEvent{Move: m, Time: time.Now()}
	if t.keep {
		t.history = append(t.history, ev)
	}
	wasSolved := t.solved
	t.solved = t.cube.IsComplete()
	justSolved := t.solved && !wasSolved
	onMove := t.onMove
	onSolved := t.onSolved
	t.mu.Unlock()

	for _, fn := range onMove {
		fn(ev)
	}
	if justSolved {
		for _, fn := range onSolved {
			fn()
		}
	}
	return nil
}

// ApplyMoves applies moves in order, stopping at the first error.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Shuffle applies n random moves as a single locked operation and records
// them in the history.
func (t *Tracker) Shuffle(n int, opts ...ShuffleOption) ([]Move, error) {
	t.mu.Lock()
	moves, err := t.cube.Shuffle(n, opts...)
	now := time.Now()
	events := make([]MoveEvent, len(moves))
	for i, m := range moves {
		events[i] = MoveEvent{Move: m, Time: now}
	}
	if t.keep {
		t.history = append(t.history, events...)
	}
	t.solved = t.cube.IsComplete()
	onMove := t.onMove
	t.mu.Unlock()

	for _, ev := range events {
		for _, fn := range onMove {
			fn(ev)
		}
	}
	return moves, err
}

// Undo reverts the most recent move by applying its inverse. It returns
// false when there is no history to undo.
func (t *Tracker) Undo() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	// The move came out of history so it is always valid.
	_ = t.cube.ApplyMove(last.Move.Inverse())
	t.solved = t.cube.IsComplete()
	return true
}

// Snapshot returns a copy of the cube.
func (t *Tracker) Snapshot() *Cube {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Clone()
}

// History returns a copy of the recorded moves.
func (t *Tracker) History() []MoveEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]MoveEvent, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.IsComplete()
}

// Progress returns the cube's progress.
func (t *Tracker) Progress() Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.Progress()
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cube.String()
}
