package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/genricoloni/promocast/internal/domain"
)

// errNothingSelected is returned when a play request matches no content
var errNothingSelected = errors.New("nothing to play")

// parseReference reads a "kind:id" item flag
func parseReference(s string) (domain.ContentReference, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || strings.TrimSpace(id) == "" {
		return domain.ContentReference{}, fmt.Errorf("invalid item %q, expected kind:id", s)
	}
	k, err := domain.ParseContentKind(strings.TrimSpace(kind))
	if err != nil {
		return domain.ContentReference{}, err
	}
	return domain.ContentReference{Kind: k, ID: strings.TrimSpace(id)}, nil
}

// buildPlaylist turns the play flags into references. Explicit items keep
// their order and may repeat. With all set, or when no item is given, every
// product matching search is queued, followed by every announcement.
func buildPlaylist(c domain.Catalog, items []string, all bool, search string) ([]domain.ContentReference, error) {
	var refs []domain.ContentReference
	for _, item := range items {
		ref, err := parseReference(item)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	if all || len(items) == 0 {
		for _, p := range c.Products {
			if matchesSearch(p, search) {
				refs = append(refs, domain.ContentReference{Kind: domain.KindProduct, ID: p.ID})
			}
		}
		for _, a := range c.Announcements {
			refs = append(refs, domain.ContentReference{Kind: domain.KindAnnouncement, ID: a.ID})
		}
	}

	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: add products or announcements first", errNothingSelected)
	}
	return refs, nil
}

// matchesSearch compares name and category case-insensitively
func matchesSearch(p domain.Product, search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

// pickStore returns the requested store id or the first store
func pickStore(c domain.Catalog, storeID string) (string, error) {
	if storeID != "" {
		return storeID, nil
	}
	if len(c.Stores) == 0 {
		return "", errors.New("no store configured, add one with 'promocast store add'")
	}
	return c.Stores[0].ID, nil
}

// pickDuration prefers the flag, then the saved default, then the config
func pickDuration(flag, saved, configured int) int {
	switch {
	case flag > 0:
		return flag
	case saved > 0:
		return saved
	default:
		return configured
	}
}
