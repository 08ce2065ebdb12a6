// Package carousel implements the timed, interruptible slide carousel.
//
// Machine is the pure state machine: every transition, including the
// entrance and hide grace windows, is driven by Tick. Player wraps a
// Machine with a single clock and serializes all inputs to it.
package carousel

import (
	"errors"
	"math"
	"time"

	"github.com/genricoloni/promocast/internal/domain"
)

// ErrEmptyPlaylist is returned when a session is started without items
var ErrEmptyPlaylist = errors.New("cannot start: empty resolved set")

const (
	defaultTickInterval    = 100 * time.Millisecond
	defaultEntranceDelay   = 300 * time.Millisecond
	defaultTransitionDelay = 500 * time.Millisecond

	minDurationSeconds = 1
)

// Timing holds the clock period and the two grace windows
type Timing struct {
	Tick       time.Duration
	Entrance   time.Duration
	Transition time.Duration
}

// DefaultTiming returns a 100ms tick, 300ms entrance and 500ms hide window
func DefaultTiming() Timing {
	return Timing{
		Tick:       defaultTickInterval,
		Entrance:   defaultEntranceDelay,
		Transition: defaultTransitionDelay,
	}
}

// Machine is the carousel state machine. It is not safe for concurrent use.
type Machine struct {
	timing   Timing
	items    []domain.ResolvedItem
	store    domain.Store
	duration time.Duration

	phase   domain.Phase
	index   int
	target  int           // pending index while transitioning
	elapsed time.Duration // time shown in the current slide
	grace   time.Duration // remaining entrance or hide window
}

// NewMachine creates an idle machine
func NewMachine(timing Timing) *Machine {
	return &Machine{timing: timing}
}

// Start opens a session on a copy of items. An empty list is rejected and
// leaves the machine untouched.
func (m *Machine) Start(items []domain.ResolvedItem, store domain.Store, durationSeconds int) error {
	if len(items) == 0 {
		return ErrEmptyPlaylist
	}
	m.items = append([]domain.ResolvedItem(nil), items...)
	m.store = store
	m.duration = secondsToDuration(durationSeconds)
	m.index = 0
	m.target = 0
	m.elapsed = 0
	m.phase = domain.PhaseEntering
	m.grace = m.timing.Entrance
	if m.grace <= 0 {
		m.phase = domain.PhaseShowing
	}
	return nil
}

// Tick feeds elapsed clock time to the machine. It reports false when
// there is no live session to consume it.
func (m *Machine) Tick(delta time.Duration) bool {
	if delta <= 0 {
		return false
	}
	switch m.phase {
	case domain.PhaseEntering:
		m.grace -= delta
		if m.grace <= 0 {
			m.phase = domain.PhaseShowing
			m.grace = 0
		}
		return true

	case domain.PhaseShowing:
		m.elapsed += delta
		if m.elapsed >= m.duration {
			m.beginTransition(m.step(m.index, 1))
		}
		return true

	case domain.PhaseTransitioning:
		m.grace -= delta
		if m.grace <= 0 {
			m.commit()
		}
		return true
	}
	return false
}

// TickFraction advances the current slide by a fraction of its duration.
// It only acts while showing.
func (m *Machine) TickFraction(fraction float64) bool {
	if m.phase != domain.PhaseShowing || fraction <= 0 {
		return false
	}
	return m.Tick(time.Duration(math.Round(fraction * float64(m.duration))))
}

// Advance moves one slide forward (+1) or backward (-1) with wraparound.
// While a transition is pending the step applies to its target.
func (m *Machine) Advance(direction int) bool {
	if !m.active() || direction == 0 {
		return false
	}
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	from := m.index
	if m.phase == domain.PhaseTransitioning {
		from = m.target
	}
	m.beginTransition(m.step(from, direction))
	return true
}

// JumpTo selects a slide explicitly. Out of range indexes are ignored.
func (m *Machine) JumpTo(index int) bool {
	if !m.active() || index < 0 || index >= len(m.items) {
		return false
	}
	m.beginTransition(index)
	return true
}

// Exit ends the session from any state
func (m *Machine) Exit() bool {
	if m.phase == domain.PhaseExited {
		return false
	}
	m.phase = domain.PhaseExited
	m.grace = 0
	return true
}

// SetDuration changes the slide duration keeping the current fraction
func (m *Machine) SetDuration(durationSeconds int) {
	d := secondsToDuration(durationSeconds)
	if d == m.duration {
		return
	}
	if m.duration > 0 {
		m.elapsed = time.Duration(float64(m.elapsed) * float64(d) / float64(m.duration))
	}
	m.duration = d
}

// SetItems swaps the playlist of a live session. An empty list exits.
func (m *Machine) SetItems(items []domain.ResolvedItem) {
	if !m.active() {
		return
	}
	if len(items) == 0 {
		m.Exit()
		return
	}
	m.items = append([]domain.ResolvedItem(nil), items...)
	if m.index >= len(m.items) {
		m.index = 0
		m.elapsed = 0
	}
	if m.target >= len(m.items) {
		m.target = 0
	}
}

// Phase returns the current state
func (m *Machine) Phase() domain.Phase { return m.phase }

// Index returns the current slide
func (m *Machine) Index() int { return m.index }

// Len returns the playlist length
func (m *Machine) Len() int { return len(m.items) }

// Duration returns the per-slide duration
func (m *Machine) Duration() time.Duration { return m.duration }

// Progress returns the elapsed fraction of the current slide, in [0,1]
func (m *Machine) Progress() float64 {
	if m.phase != domain.PhaseShowing || m.duration <= 0 {
		return 0
	}
	p := float64(m.elapsed) / float64(m.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Visible reports whether slide content is on screen
func (m *Machine) Visible() bool {
	return m.phase == domain.PhaseShowing
}

// Frame snapshots the state for renderers
func (m *Machine) Frame() domain.Frame {
	f := domain.Frame{
		Phase:    m.phase,
		Index:    m.index,
		Count:    len(m.items),
		Visible:  m.Visible(),
		Progress: m.Progress(),
		Store:    m.store,
	}
	if len(m.items) > 0 {
		f.Item = m.items[m.index]
	}
	return f
}

func (m *Machine) active() bool {
	switch m.phase {
	case domain.PhaseEntering, domain.PhaseShowing, domain.PhaseTransitioning:
		return true
	}
	return false
}

func (m *Machine) step(from, direction int) int {
	n := len(m.items)
	return (from + direction + n) % n
}

// beginTransition hides the slide and schedules the swap to next.
// A zero hide window swaps immediately.
func (m *Machine) beginTransition(next int) {
	m.target = next
	m.elapsed = 0
	m.phase = domain.PhaseTransitioning
	m.grace = m.timing.Transition
	if m.grace <= 0 {
		m.commit()
	}
}

func (m *Machine) commit() {
	m.index = m.target
	m.elapsed = 0
	m.grace = 0
	m.phase = domain.PhaseShowing
}

func secondsToDuration(seconds int) time.Duration {
	if seconds < minDurationSeconds {
		seconds = minDurationSeconds
	}
	return time.Duration(seconds) * time.Second
}
