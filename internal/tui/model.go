// Package tui implements the interactive play screen.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/rubiks"
	"github.com/SeamusWaldron/rubiks/internal/render"
)

// RecordFunc is called after each shuffle with the seed it used.
type RecordFunc func(seed uint64, moves []rubiks.Move) error

// Options configures the play model.
type Options struct {
	Seed          uint64
	ShuffleLength int
	Color         bool
	Record        RecordFunc
}

// Model is the bubbletea model for the play screen.
type Model struct {
	tracker  *rubiks.Tracker
	renderer *render.Renderer
	rng      *rand.Rand
	opts     Options

	lastSeed   uint64
	shuffledAt time.Time
	solvedIn   time.Duration
	justSolved bool
	message    string
	err        error
	quitting   bool
	now        func() time.Time
}

// New creates a play model around a solved cube.
func New(opts Options) *Model {
	if opts.ShuffleLength <= 0 {
		opts.ShuffleLength = 25
	}
	m := &Model{
		tracker:  rubiks.NewTracker(),
		renderer: render.New(opts.Color),
		rng:      rubiks.NewSource(opts.Seed),
		opts:     opts,
		now:      time.Now,
	}
	m.tracker.OnSolved(m.handleSolved)
	return m
}

// keyMoves maps keys to moves. Shifted letters turn counter-clockwise.
var keyMoves = map[string]rubiks.Move{
	"l": rubiks.L, "L": rubiks.LPrime,
	"u": rubiks.U, "U": rubiks.UPrime,
	"f": rubiks.F, "F": rubiks.FPrime,
	"d": rubiks.D, "D": rubiks.DPrime,
	"r": rubiks.R, "R": rubiks.RPrime,
	"b": rubiks.B, "B": rubiks.BPrime,
}

// Tracker returns the tracker driven by the model.
func (m *Model) Tracker() *rubiks.Tracker {
	return m.tracker
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = nil
	m.message = ""
	m.justSolved = false

	k := key.String()
	if mv, ok := keyMoves[k]; ok {
		m.err = m.tracker.ApplyMove(mv)
		return m, nil
	}

	switch k {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z":
		if !m.tracker.Undo() {
			m.message = "Nothing to undo"
		}
		if m.tracker.IsSolved() {
			m.shuffledAt = time.Time{}
		}

	case "s":
		m.shuffle()

	case "x":
		m.tracker.Reset()
		m.shuffledAt = time.Time{}
		m.message = "Reset"
	}

	return m, nil
}

func (m *Model) shuffle() {
	seed := m.rng.Uint64()
	m.tracker.Reset()
	moves, err := m.tracker.Shuffle(m.opts.ShuffleLength, rubiks.WithSeed(seed))
	if err != nil {
		m.err = err
		return
	}
	m.lastSeed = seed
	m.shuffledAt = m.now()
	m.solvedIn = 0
	m.message = fmt.Sprintf("Shuffled %d moves (seed %d)", len(moves), seed)

	if m.opts.Record != nil {
		if err := m.opts.Record(seed, moves); err != nil {
			m.err = fmt.Errorf("failed to record scramble: %w", err)
		}
	}
}

func (m *Model) handleSolved() {
	m.justSolved = true
	if !m.shuffledAt.IsZero() {
		m.solvedIn = m.now().Sub(m.shuffledAt)
		m.shuffledAt = time.Time{}
	}
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Rubik's Cube"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.tracker.Snapshot()))
	b.WriteString("\n")

	p := m.tracker.Progress()
	if p.Solved() {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		if m.justSolved && m.solvedIn > 0 {
			b.WriteString(fmt.Sprintf(" in %s", m.solvedIn.Round(time.Millisecond)))
		}
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Faces: %d/6  Facelets: %d/54  (%.0f%%)",
			p.CompleteFaces, p.MatchingFacelets, p.Percent())))
	}
	b.WriteString("\n")

	var moves []rubiks.Move
	for _, ev := range m.tracker.History() {
		moves = append(moves, ev.Move)
	}
	b.WriteString(fmt.Sprintf("Moves: %d\n", len(moves)))
	if len(moves) > 0 {
		b.WriteString(moveStyle.Render(render.Moves(moves, 20)))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString(statusStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("l u f d r b=turn  shift=counter  z=undo  s=shuffle  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
