package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

func newTestRenderer() *Renderer {
	return NewRenderer(zap.NewNop(), nil, 5, tea.WithInput(nil), tea.WithOutput(io.Discard))
}

func TestRenderer_KeepsLatestFrame(t *testing.T) {
	r := newTestRenderer()

	for i := 0; i < 3; i++ {
		r.Render(domain.Frame{Phase: domain.PhaseShowing, Index: i, Count: 3})
	}

	if got := len(r.frames); got != 1 {
		t.Fatalf("expected a single pending frame, got %d", got)
	}
	if f := <-r.frames; f.Index != 2 {
		t.Errorf("expected the latest frame, got index %d", f.Index)
	}
}

func TestRenderer_RunEndsOnExitFrame(t *testing.T) {
	r := newTestRenderer()

	done := make(chan error, 1)
	go func() { done <- r.Run(context.Background()) }()

	r.Render(domain.Frame{Phase: domain.PhaseExited})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("program did not quit after the exit frame")
	}
}

func TestRenderer_RunEndsWithContext(t *testing.T) {
	r := newTestRenderer()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("program did not quit when the context ended")
	}
}
