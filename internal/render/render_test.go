package render

import (
	"testing"

	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHub_FanOutAndDetach(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockRenderer(ctrl)
	second := mocks.NewMockRenderer(ctrl)

	f1 := domain.Frame{Index: 0, Phase: domain.PhaseShowing}
	f2 := domain.Frame{Index: 1, Phase: domain.PhaseShowing}

	gomock.InOrder(
		first.EXPECT().Render(f1),
		first.EXPECT().Render(f2),
	)
	second.EXPECT().Render(f1).Times(1)

	h := NewHub(first)
	detach := h.Attach(second)
	if h.Len() != 2 {
		t.Fatalf("expected 2 renderers, got %d", h.Len())
	}

	h.Render(f1)
	detach()
	detach()
	h.Render(f2)

	if h.Len() != 1 {
		t.Errorf("expected 1 renderer after detach, got %d", h.Len())
	}
}

func TestHub_Empty(t *testing.T) {
	h := NewHub()
	h.Render(domain.Frame{})
}

func TestLogRenderer_LogsSlideChangesOnly(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogRenderer(zap.New(core))

	item := domain.ProductItem(domain.Product{ID: "p1", Name: "Pan"})
	frames := []domain.Frame{
		{Phase: domain.PhaseEntering, Index: 0, Count: 2, Item: item},
		{Phase: domain.PhaseShowing, Index: 0, Count: 2, Item: item, Visible: true, Progress: 0.02},
		{Phase: domain.PhaseShowing, Index: 0, Count: 2, Item: item, Visible: true, Progress: 0.04},
		{Phase: domain.PhaseTransitioning, Index: 0, Count: 2, Item: item},
		{Phase: domain.PhaseShowing, Index: 1, Count: 2, Item: item, Visible: true},
		{Phase: domain.PhaseShowing, Index: 1, Count: 2, Item: item, Visible: true, Progress: 0.5},
		{Phase: domain.PhaseExited, Index: 1, Count: 2, Item: item},
	}
	for _, f := range frames {
		l.Render(f)
	}

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 info entries, got %d", len(entries))
	}
	if entries[0].Message != "Showing slide" || entries[1].Message != "Showing slide" {
		t.Errorf("unexpected messages: %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[2].Message != "Presentation closed" {
		t.Errorf("expected close entry, got %q", entries[2].Message)
	}
	if got := entries[1].ContextMap()["slide"]; got != int64(2) {
		t.Errorf("expected slide 2, got %v", got)
	}
}
