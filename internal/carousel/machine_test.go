package carousel

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/genricoloni/promocast/internal/domain"
)

const tick = 100 * time.Millisecond

var testStore = domain.Store{ID: "s1", Name: "Sucursal Central", Address: "Av. Libertador 1234"}

// instantTiming disables both grace windows so swaps happen inside the call
var instantTiming = Timing{Tick: tick}

func products(n int) []domain.ResolvedItem {
	items := make([]domain.ResolvedItem, n)
	for i := range items {
		items[i] = domain.ProductItem(domain.Product{
			ID:    string(rune('a' + i)),
			Name:  "Product " + string(rune('A'+i)),
			Price: float64(100 * (i + 1)),
		})
	}
	return items
}

func startedMachine(t *testing.T, timing Timing, n, seconds int) *Machine {
	t.Helper()
	m := NewMachine(timing)
	if err := m.Start(products(n), testStore, seconds); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	return m
}

func ticks(m *Machine, n int) {
	for i := 0; i < n; i++ {
		m.Tick(tick)
	}
}

func TestMachine_StartRejectsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.ResolvedItem
	}{
		{name: "Nil Items", items: nil},
		{name: "Empty Items", items: []domain.ResolvedItem{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(DefaultTiming())
			err := m.Start(tt.items, testStore, 5)
			if !errors.Is(err, ErrEmptyPlaylist) {
				t.Fatalf("expected ErrEmptyPlaylist, got %v", err)
			}
			if m.Phase() != domain.PhaseIdle {
				t.Errorf("expected idle, got %s", m.Phase())
			}
			if m.Tick(tick) {
				t.Error("idle machine should not consume ticks")
			}
		})
	}
}

func TestMachine_EntranceGrace(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 3, 5)

	if m.Phase() != domain.PhaseEntering {
		t.Fatalf("expected entering, got %s", m.Phase())
	}
	if m.Visible() {
		t.Error("content should not be visible while entering")
	}

	ticks(m, 2)
	if m.Phase() != domain.PhaseEntering {
		t.Fatalf("expected entering after 200ms, got %s", m.Phase())
	}

	ticks(m, 1)
	if m.Phase() != domain.PhaseShowing {
		t.Fatalf("expected showing after 300ms, got %s", m.Phase())
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress 0 at first show, got %f", m.Progress())
	}
	if m.Index() != 0 {
		t.Errorf("expected index 0, got %d", m.Index())
	}
}

func TestMachine_DurationFloor(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{name: "Zero Clamped", seconds: 0, want: time.Second},
		{name: "Negative Clamped", seconds: -4, want: time.Second},
		{name: "One Kept", seconds: 1, want: time.Second},
		{name: "Ten Kept", seconds: 10, want: 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := startedMachine(t, instantTiming, 2, tt.seconds)
			if m.Duration() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, m.Duration())
			}
		})
	}
}

// Three products at 5s: fifty 100ms ticks advance exactly once.
func TestMachine_AutoAdvanceAfterFullDuration(t *testing.T) {
	m := startedMachine(t, instantTiming, 3, 5)

	resets := 0
	last := m.Progress()
	for i := 0; i < 50; i++ {
		m.Tick(tick)
		if m.Progress() < last {
			resets++
		}
		last = m.Progress()
	}

	if m.Index() != 1 {
		t.Errorf("expected index 1, got %d", m.Index())
	}
	if m.Progress() > 1e-9 {
		t.Errorf("expected progress near 0, got %f", m.Progress())
	}
	if resets != 1 {
		t.Errorf("expected exactly one progress reset, got %d", resets)
	}
}

func TestMachine_AutoAdvanceWithHideWindow(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 3, 5)
	ticks(m, 3) // entrance

	ticks(m, 49)
	if m.Phase() != domain.PhaseShowing || m.Index() != 0 {
		t.Fatalf("expected still showing slide 0, got %s/%d", m.Phase(), m.Index())
	}
	if math.Abs(m.Progress()-0.98) > 1e-9 {
		t.Errorf("expected progress 0.98, got %f", m.Progress())
	}

	ticks(m, 1)
	if m.Phase() != domain.PhaseTransitioning {
		t.Fatalf("expected transitioning, got %s", m.Phase())
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress reset on advance, got %f", m.Progress())
	}
	if m.Index() != 0 {
		t.Errorf("index should not change before the hide window ends, got %d", m.Index())
	}

	ticks(m, 4)
	if m.Phase() != domain.PhaseTransitioning {
		t.Fatalf("expected still transitioning after 400ms, got %s", m.Phase())
	}

	ticks(m, 1)
	if m.Phase() != domain.PhaseShowing || m.Index() != 1 {
		t.Fatalf("expected showing slide 1, got %s/%d", m.Phase(), m.Index())
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress 0 on new slide, got %f", m.Progress())
	}
}

// A one-item playlist loops onto itself and keeps its progress bar.
func TestMachine_SingleItemLoopsOfOne(t *testing.T) {
	m := startedMachine(t, instantTiming, 1, 5)

	ticks(m, 49)
	if m.Progress() < 0.97 {
		t.Fatalf("single item clock should run, progress %f", m.Progress())
	}

	ticks(m, 1)
	if m.Index() != 0 {
		t.Errorf("expected index 0, got %d", m.Index())
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress reset to 0, got %f", m.Progress())
	}
	if m.Phase() != domain.PhaseShowing {
		t.Errorf("expected showing, got %s", m.Phase())
	}
}

func TestMachine_AdvanceWraparound(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		start     int
		direction int
		want      int
	}{
		{name: "Forward Middle", n: 4, start: 1, direction: 1, want: 2},
		{name: "Forward Wraps", n: 4, start: 3, direction: 1, want: 0},
		{name: "Backward Wraps", n: 4, start: 0, direction: -1, want: 3},
		{name: "Backward Middle", n: 4, start: 2, direction: -1, want: 1},
		{name: "Single Forward", n: 1, start: 0, direction: 1, want: 0},
		{name: "Single Backward", n: 1, start: 0, direction: -1, want: 0},
		{name: "Large Step Normalized", n: 5, start: 0, direction: 7, want: 1},
		{name: "Large Negative Step Normalized", n: 5, start: 0, direction: -9, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := startedMachine(t, instantTiming, tt.n, 5)
			if tt.start > 0 && !m.JumpTo(tt.start) {
				t.Fatalf("jump to %d rejected", tt.start)
			}
			if !m.Advance(tt.direction) {
				t.Fatal("advance rejected")
			}
			if m.Index() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, m.Index())
			}
		})
	}
}

func TestMachine_AdvanceZeroIsNoop(t *testing.T) {
	m := startedMachine(t, instantTiming, 3, 5)
	ticks(m, 10)
	if m.Advance(0) {
		t.Error("zero direction should be rejected")
	}
	if math.Abs(m.Progress()-0.2) > 1e-9 {
		t.Errorf("progress should be untouched, got %f", m.Progress())
	}
}

func TestMachine_JumpToMidSlide(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 4, 5)
	ticks(m, 3)  // entrance
	ticks(m, 30) // 3s of 5s

	if math.Abs(m.Progress()-0.6) > 1e-9 {
		t.Fatalf("expected progress 0.6, got %f", m.Progress())
	}

	if !m.JumpTo(2) {
		t.Fatal("jump rejected")
	}
	if m.Visible() {
		t.Error("content should be hidden during the hide window")
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress 0 during hide, got %f", m.Progress())
	}

	ticks(m, 5)
	if m.Index() != 2 {
		t.Errorf("expected index 2, got %d", m.Index())
	}
	if m.Progress() != 0 {
		t.Errorf("expected progress exactly 0, got %f", m.Progress())
	}
	if !m.Visible() {
		t.Error("content should be visible again")
	}
}

func TestMachine_JumpToOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{name: "Negative", index: -1},
		{name: "Equal To Length", index: 4},
		{name: "Far Beyond", index: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := startedMachine(t, instantTiming, 4, 5)
			ticks(m, 12)
			before := m.Frame()

			if m.JumpTo(tt.index) {
				t.Fatal("out of range jump should be rejected")
			}
			after := m.Frame()
			if after.Index != before.Index || after.Progress != before.Progress || after.Phase != before.Phase {
				t.Errorf("state changed: %+v -> %+v", before, after)
			}
		})
	}
}

func TestMachine_RapidNavigationSupersedes(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 5, 5)
	ticks(m, 3)

	m.Advance(1)
	ticks(m, 3) // mid hide window
	m.Advance(1)
	ticks(m, 3) // the first window would have ended here

	if m.Index() != 0 {
		t.Fatalf("superseded swap fired early, index %d", m.Index())
	}

	ticks(m, 2)
	if m.Index() != 2 {
		t.Errorf("expected two steps forward to land on 2, got %d", m.Index())
	}

	m.JumpTo(4)
	m.Advance(-1)
	ticks(m, 5)
	if m.Index() != 3 {
		t.Errorf("expected jump then back to land on 3, got %d", m.Index())
	}
}

func TestMachine_ExitStopsEverything(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 3, 5)
	ticks(m, 10)

	if !m.Exit() {
		t.Fatal("exit rejected")
	}
	if m.Exit() {
		t.Error("second exit should be a no-op")
	}

	frame := m.Frame()
	if m.Tick(tick) {
		t.Error("exited machine should not consume ticks")
	}
	if m.Advance(1) || m.JumpTo(1) {
		t.Error("navigation after exit should be rejected")
	}
	if got := m.Frame(); got.Index != frame.Index || got.Progress != frame.Progress {
		t.Errorf("state changed after exit: %+v -> %+v", frame, got)
	}
	if m.Phase() != domain.PhaseExited {
		t.Errorf("expected exited, got %s", m.Phase())
	}
}

func TestMachine_ExitFromIdle(t *testing.T) {
	m := NewMachine(DefaultTiming())
	if !m.Exit() {
		t.Error("exit should be valid from any state")
	}
}

func TestMachine_TickFraction(t *testing.T) {
	m := startedMachine(t, instantTiming, 3, 5)

	for i := 0; i < 49; i++ {
		m.TickFraction(0.02)
	}
	if math.Abs(m.Progress()-0.98) > 1e-9 {
		t.Fatalf("expected 0.98, got %f", m.Progress())
	}
	m.TickFraction(0.02)
	if m.Index() != 1 || m.Progress() != 0 {
		t.Errorf("expected advance to 1 with progress 0, got %d/%f", m.Index(), m.Progress())
	}

	m2 := startedMachine(t, DefaultTiming(), 2, 5)
	if m2.TickFraction(0.5) {
		t.Error("fraction ticks are only valid while showing")
	}
}

func TestMachine_SetDurationKeepsFraction(t *testing.T) {
	m := startedMachine(t, instantTiming, 3, 4)
	ticks(m, 20) // 2s of 4s

	m.SetDuration(10)
	if math.Abs(m.Progress()-0.5) > 1e-9 {
		t.Errorf("expected progress 0.5 kept, got %f", m.Progress())
	}

	ticks(m, 50)
	if m.Index() != 1 {
		t.Errorf("expected advance after remaining 5s, got index %d", m.Index())
	}
}

func TestMachine_SetItems(t *testing.T) {
	t.Run("Index Still Valid", func(t *testing.T) {
		m := startedMachine(t, instantTiming, 4, 5)
		m.JumpTo(1)
		ticks(m, 10)
		m.SetItems(products(2))
		if m.Index() != 1 || m.Len() != 2 {
			t.Errorf("expected index 1 of 2, got %d of %d", m.Index(), m.Len())
		}
		if math.Abs(m.Progress()-0.2) > 1e-9 {
			t.Errorf("expected progress kept, got %f", m.Progress())
		}
	})

	t.Run("Index Out Of Range Resets", func(t *testing.T) {
		m := startedMachine(t, instantTiming, 4, 5)
		m.JumpTo(3)
		ticks(m, 10)
		m.SetItems(products(2))
		if m.Index() != 0 || m.Progress() != 0 {
			t.Errorf("expected reset to 0, got %d/%f", m.Index(), m.Progress())
		}
	})

	t.Run("Empty Exits", func(t *testing.T) {
		m := startedMachine(t, instantTiming, 4, 5)
		m.SetItems(nil)
		if m.Phase() != domain.PhaseExited {
			t.Errorf("expected exited, got %s", m.Phase())
		}
	})
}

func TestMachine_SnapshotIsDetached(t *testing.T) {
	items := products(2)
	m := NewMachine(instantTiming)
	if err := m.Start(items, testStore, 5); err != nil {
		t.Fatal(err)
	}
	items[0] = domain.AnnouncementItem(domain.Announcement{ID: "x", Title: "Replaced"})

	if got := m.Frame().Item; got.Kind != domain.KindProduct || got.Product.Name != "Product A" {
		t.Errorf("session should hold its own snapshot, got %+v", got)
	}
}

func TestMachine_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 1; n <= 7; n++ {
		m := startedMachine(t, instantTiming, n, 3)

		// Random navigation never leaves the playlist bounds.
		for i := 0; i < 500; i++ {
			switch rng.Intn(4) {
			case 0:
				m.Advance(1)
			case 1:
				m.Advance(-1)
			case 2:
				m.JumpTo(rng.Intn(n+4) - 2)
			case 3:
				m.Tick(tick)
			}
			if m.Index() < 0 || m.Index() >= n {
				t.Fatalf("n=%d: index %d out of range", n, m.Index())
			}
			if p := m.Progress(); p < 0 || p > 1 {
				t.Fatalf("n=%d: progress %f out of range", n, p)
			}
		}

		// Forward then backward is the identity.
		for start := 0; start < n; start++ {
			m.JumpTo(start)
			m.Advance(1)
			m.Advance(-1)
			if m.Index() != start {
				t.Errorf("n=%d: +1/-1 from %d landed on %d", n, start, m.Index())
			}
		}

		// n forward steps close the loop.
		start := m.Index()
		for i := 0; i < n; i++ {
			m.Advance(1)
		}
		if m.Index() != start {
			t.Errorf("n=%d: full loop from %d landed on %d", n, start, m.Index())
		}
	}
}

func TestMachine_ProgressMonotonicWithinSlide(t *testing.T) {
	m := startedMachine(t, DefaultTiming(), 3, 2)
	ticks(m, 3)

	last := m.Progress()
	index := m.Index()
	for i := 0; i < 60; i++ {
		m.Tick(tick)
		if m.Phase() != domain.PhaseShowing {
			continue
		}
		if m.Index() != index {
			if m.Progress() != 0 {
				t.Fatalf("new slide should start at 0, got %f", m.Progress())
			}
			index = m.Index()
			last = 0
			continue
		}
		if m.Progress() < last {
			t.Fatalf("progress decreased within slide: %f -> %f", last, m.Progress())
		}
		last = m.Progress()
	}
}
