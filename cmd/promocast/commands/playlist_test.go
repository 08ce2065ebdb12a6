package commands

import (
	"errors"
	"strings"
	"testing"

	"github.com/genricoloni/promocast/internal/domain"
)

var testCatalog = domain.Catalog{
	Stores: []domain.Store{{ID: "s1", Name: "Centro"}, {ID: "s2", Name: "Norte"}},
	Products: []domain.Product{
		{ID: "p1", Name: "Pan Francés", Category: "Panadería"},
		{ID: "p2", Name: "Leche", Category: "Lácteos"},
		{ID: "p3", Name: "Queso", Category: "Lácteos"},
	},
	Announcements: []domain.Announcement{{ID: "a1", Title: "Horario"}},
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		in            string
		want          domain.ContentReference
		expectedError string
	}{
		{in: "product:p1", want: domain.ContentReference{Kind: domain.KindProduct, ID: "p1"}},
		{in: "announcement: a1 ", want: domain.ContentReference{Kind: domain.KindAnnouncement, ID: "a1"}},
		{in: "p1", expectedError: "expected kind:id"},
		{in: "product:", expectedError: "expected kind:id"},
		{in: "video:v1", expectedError: "unknown content kind"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseReference(tt.in)
			if tt.expectedError != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("expected error containing %q, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestBuildPlaylist(t *testing.T) {
	ids := func(refs []domain.ContentReference) string {
		var out []string
		for _, r := range refs {
			out = append(out, r.ID)
		}
		return strings.Join(out, ",")
	}

	tests := []struct {
		name   string
		items  []string
		all    bool
		search string
		want   string
	}{
		{name: "Default Plays Everything", want: "p1,p2,p3,a1"},
		{name: "Search Filters Products Only", search: "lácteos", want: "p2,p3,a1"},
		{name: "Search Matches Name", search: "pan", want: "p1,a1"},
		{name: "Explicit Items Keep Order And Repeats", items: []string{"product:p3", "announcement:a1", "product:p3"}, want: "p3,a1,p3"},
		{name: "Explicit Items Plus All", items: []string{"announcement:a1"}, all: true, search: "queso", want: "a1,p3,a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := buildPlaylist(testCatalog, tt.items, tt.all, tt.search)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ids(refs); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestBuildPlaylist_Errors(t *testing.T) {
	if _, err := buildPlaylist(domain.Catalog{}, nil, false, ""); !errors.Is(err, errNothingSelected) {
		t.Errorf("empty catalog: expected errNothingSelected, got %v", err)
	}
	if _, err := buildPlaylist(testCatalog, []string{"nope"}, false, ""); err == nil {
		t.Error("expected error for a malformed item")
	}
}

func TestPickStore(t *testing.T) {
	if id, _ := pickStore(testCatalog, ""); id != "s1" {
		t.Errorf("expected first store, got %s", id)
	}
	if id, _ := pickStore(testCatalog, "s2"); id != "s2" {
		t.Errorf("expected requested store, got %s", id)
	}
	if _, err := pickStore(domain.Catalog{}, ""); err == nil {
		t.Error("expected error without stores")
	}
}

func TestPickDuration(t *testing.T) {
	tests := []struct {
		flag, saved, configured, want int
	}{
		{10, 7, 5, 10},
		{0, 7, 5, 7},
		{0, 0, 5, 5},
	}
	for _, tt := range tests {
		if got := pickDuration(tt.flag, tt.saved, tt.configured); got != tt.want {
			t.Errorf("pickDuration(%d, %d, %d) = %d, want %d", tt.flag, tt.saved, tt.configured, got, tt.want)
		}
	}
}
