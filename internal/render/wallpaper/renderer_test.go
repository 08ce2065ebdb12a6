package wallpaper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/domain/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	r          *Renderer
	fetcher    *mocks.MockFetcher
	compositor *mocks.MockCompositor
	executor   *mocks.MockExecutor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		fetcher:    mocks.NewMockFetcher(ctrl),
		compositor: mocks.NewMockCompositor(ctrl),
		executor:   mocks.NewMockExecutor(ctrl),
	}
	f.r = NewRenderer(zap.NewNop(), f.fetcher, f.compositor, f.executor)
	f.r.debounce = 20 * time.Millisecond
	return f
}

func showing(index int, item domain.ResolvedItem) domain.Frame {
	return domain.Frame{Phase: domain.PhaseShowing, Visible: true, Index: index, Count: 3, Item: item}
}

// waitFor blocks until done is closed or fails the test
func waitFor(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestRenderer_PaintsAndRestores(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	item := domain.ProductItem(domain.Product{ID: "p1", Name: "Pan", ImageURL: "https://example.com/pan.jpg"})

	painted := make(chan struct{})
	gomock.InOrder(
		f.executor.EXPECT().GetCurrentWallpaper(gomock.Any()).Return("/home/ana/beach.jpg", nil),
		f.fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/pan.jpg").Return([]byte("art"), nil),
		f.compositor.EXPECT().Generate(gomock.Any(), gomock.Any(), []byte("art")).Return("/tmp/promocast/a.jpg", nil),
		f.executor.EXPECT().SetWallpaper(gomock.Any(), "/tmp/promocast/a.jpg").
			DoAndReturn(func(context.Context, string) error {
				close(painted)
				return nil
			}),
		f.executor.EXPECT().SetWallpaper(gomock.Any(), "/home/ana/beach.jpg").Return(nil),
	)

	if err := f.r.Start(ctx); err != nil {
		t.Fatal(err)
	}
	f.r.Render(showing(0, item))
	waitFor(t, painted, "first paint")

	if err := f.r.Stop(ctx); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	if err := f.r.Stop(ctx); err != nil {
		t.Fatalf("second stop should be a no-op: %v", err)
	}
}

func TestRenderer_DebounceKeepsLatest(t *testing.T) {
	f := newFixture(t)
	f.r.debounce = 100 * time.Millisecond

	announcement := func(id string) domain.ResolvedItem {
		return domain.AnnouncementItem(domain.Announcement{ID: id, Title: id})
	}

	painted := make(chan struct{})
	f.executor.EXPECT().GetCurrentWallpaper(gomock.Any()).Return("", fmt.Errorf("unsupported"))
	f.compositor.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, frame domain.Frame, _ []byte) (string, error) {
			if frame.Item.ID() != "a3" {
				t.Errorf("expected only the last slide to be composed, got %s", frame.Item.ID())
			}
			return "/tmp/promocast/b.jpg", nil
		}).Times(1)
	f.executor.EXPECT().SetWallpaper(gomock.Any(), "/tmp/promocast/b.jpg").
		DoAndReturn(func(context.Context, string) error {
			close(painted)
			return nil
		})

	if err := f.r.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	f.r.Render(showing(0, announcement("a1")))
	f.r.Render(showing(1, announcement("a2")))
	f.r.Render(showing(2, announcement("a3")))

	waitFor(t, painted, "debounced paint")
	// no original captured, so nothing is restored
	if err := f.r.Stop(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestRenderer_FiltersFrames(t *testing.T) {
	f := newFixture(t)
	item := domain.AnnouncementItem(domain.Announcement{ID: "a1", Title: "Horario"})

	frames := []domain.Frame{
		{Phase: domain.PhaseEntering, Item: item},
		{Phase: domain.PhaseTransitioning, Item: item},
		{Phase: domain.PhaseShowing, Visible: true, Index: 0, Item: item},
		{Phase: domain.PhaseShowing, Visible: true, Index: 0, Item: item, Progress: 0.5},
	}
	for _, fr := range frames {
		f.r.Render(fr)
	}

	if got := len(f.r.frames); got != 1 {
		t.Fatalf("expected a single queued frame, got %d", got)
	}
	<-f.r.frames

	// after an exit the same slide counts as new again
	f.r.Render(domain.Frame{Phase: domain.PhaseExited})
	f.r.Render(frames[2])
	if got := len(f.r.frames); got != 1 {
		t.Errorf("expected slide to be queued after exit, got %d", got)
	}
}

func TestRenderer_ArtworkFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name: "Fetch Fails - Flat Background",
			setup: func(f *fixture) {
				f.fetcher.EXPECT().Fetch(gomock.Any(), "https://picsum.photos/seed/p7/1200").
					Return(nil, fmt.Errorf("network error"))
				f.compositor.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Nil()).Return("/tmp/x.jpg", nil)
			},
		},
		{
			name: "Artwork Undecodable - Retry Without It",
			setup: func(f *fixture) {
				f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("garbage"), nil)
				gomock.InOrder(
					f.compositor.EXPECT().Generate(gomock.Any(), gomock.Any(), []byte("garbage")).
						Return("", fmt.Errorf("failed to decode image")),
					f.compositor.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Nil()).Return("/tmp/x.jpg", nil),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			f.executor.EXPECT().SetWallpaper(gomock.Any(), "/tmp/x.jpg").Return(nil)

			f.r.paint(context.Background(), showing(0, domain.ProductItem(domain.Product{ID: "p7", Name: "Arroz"})))
		})
	}
}

func TestArtworkURL(t *testing.T) {
	tests := []struct {
		name string
		item domain.ResolvedItem
		want string
	}{
		{"Own Image", domain.ProductItem(domain.Product{ID: "p1", ImageURL: "/img/p1.png"}), "/img/p1.png"},
		{"Placeholder", domain.ProductItem(domain.Product{ID: "p2"}), "https://picsum.photos/seed/p2/1200"},
		{"Announcement", domain.AnnouncementItem(domain.Announcement{ID: "a1"}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artworkURL(tt.item); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
