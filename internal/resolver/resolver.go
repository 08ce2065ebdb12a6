// Package resolver expands playlist references into catalog snapshots.
package resolver

import "github.com/genricoloni/promocast/internal/domain"

// Resolve maps refs to resolved items in input order, duplicates included.
// References with no matching record are dropped. The returned items copy
// the catalog records, so later catalog edits do not reach them.
func Resolve(refs []domain.ContentReference, products map[string]domain.Product, announcements map[string]domain.Announcement) []domain.ResolvedItem {
	items := make([]domain.ResolvedItem, 0, len(refs))
	for _, ref := range refs {
		switch ref.Kind {
		case domain.KindProduct:
			if p, ok := products[ref.ID]; ok {
				items = append(items, domain.ProductItem(p))
			}
		case domain.KindAnnouncement:
			if a, ok := announcements[ref.ID]; ok {
				items = append(items, domain.AnnouncementItem(a))
			}
		}
	}
	return items
}

// ResolveCatalog resolves refs against a catalog snapshot
func ResolveCatalog(refs []domain.ContentReference, c domain.Catalog) []domain.ResolvedItem {
	return Resolve(refs, c.ProductsByID(), c.AnnouncementsByID())
}
