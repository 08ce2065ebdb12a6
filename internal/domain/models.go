package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultThemeColor is used when a product does not carry its own color
const DefaultThemeColor = "#4f46e5"

// UnitType is the sale unit of a product price
type UnitType string

const (
	UnitPiece UnitType = "unidad"
	UnitKilo  UnitType = "kg"
	UnitGram  UnitType = "g"
	UnitLitre UnitType = "litro"
	UnitPack  UnitType = "pack"
)

// PromotionType qualifies a promoted product
type PromotionType string

const (
	// PromotionDay is an offer valid for the current day
	PromotionDay PromotionType = "dia"
	// PromotionWeek is an offer valid for the current week
	PromotionWeek PromotionType = "semana"
	// PromotionGeneral is an offer without a fixed window
	PromotionGeneral PromotionType = "general"
)

// Label returns the on-screen badge for the promotion
func (p PromotionType) Label() string {
	switch p {
	case PromotionDay:
		return "¡OFERTA DEL DÍA!"
	case PromotionWeek:
		return "¡OFERTA SEMANAL!"
	default:
		return "¡OFERTA ESPECIAL!"
	}
}

// Store is a physical branch where the signage runs
type Store struct {
	ID        string
	Name      string
	Address   string
	LogoColor string
}

// Product is a catalog entry shown as a product slide
type Product struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	Unit          UnitType
	ImageURL      string
	Category      string
	IsPromotion   bool
	PromotionType PromotionType
	Slogan        string
	PrimaryColor  string
}

// ThemeColor returns the product color or the default theme
func (p Product) ThemeColor() string {
	if p.PrimaryColor != "" {
		return p.PrimaryColor
	}
	return DefaultThemeColor
}

// DefaultDescription is shown for products without a description
const DefaultDescription = "Calidad y frescura garantizada. Aprovecha esta oportunidad única disponible ahora en nuestra sucursal."

// DisplayDescription returns the description or the default copy
func (p Product) DisplayDescription() string {
	if strings.TrimSpace(p.Description) != "" {
		return p.Description
	}
	return DefaultDescription
}

// PromotionLabel returns the badge text, empty for regular products
func (p Product) PromotionLabel() string {
	if !p.IsPromotion {
		return ""
	}
	return p.PromotionType.Label()
}

// MarqueeTag is the short tag repeated on the ticker line
func (p Product) MarqueeTag() string {
	if !p.IsPromotion {
		return "EL MEJOR PRECIO"
	}
	if p.PromotionType == "" {
		return "OFERTA"
	}
	return strings.ToUpper(string(p.PromotionType))
}

// FormatPrice renders a price with thousands separators and at most
// three decimals, trailing zeros dropped
func FormatPrice(v float64) string {
	s := strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// Announcement is a free-form text slide
type Announcement struct {
	ID              string
	Title           string
	Message         string
	FontSize        string
	FontFamily      string
	BackgroundColor string
	TextColor       string
	TextAlign       string
	HasAnimation    bool
}

// ContentKind discriminates playlist entries and resolved items
type ContentKind string

const (
	KindProduct      ContentKind = "product"
	KindAnnouncement ContentKind = "announcement"
)

// ParseContentKind validates a textual kind
func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindProduct, KindAnnouncement:
		return ContentKind(s), nil
	}
	return "", fmt.Errorf("unknown content kind: %q", s)
}

// ContentReference points at a catalog record by kind and id.
// Playlists may contain the same reference more than once.
type ContentReference struct {
	Kind ContentKind
	ID   string
}

// ResolvedItem is a tagged variant: exactly one of Product or Announcement
// is set, as named by Kind.
type ResolvedItem struct {
	Kind         ContentKind
	Product      *Product
	Announcement *Announcement
}

// ProductItem wraps a product snapshot
func ProductItem(p Product) ResolvedItem {
	return ResolvedItem{Kind: KindProduct, Product: &p}
}

// AnnouncementItem wraps an announcement snapshot
func AnnouncementItem(a Announcement) ResolvedItem {
	return ResolvedItem{Kind: KindAnnouncement, Announcement: &a}
}

// ID returns the id of the wrapped record
func (r ResolvedItem) ID() string {
	switch r.Kind {
	case KindProduct:
		return r.Product.ID
	case KindAnnouncement:
		return r.Announcement.ID
	}
	return ""
}

// Title returns the headline of the wrapped record
func (r ResolvedItem) Title() string {
	switch r.Kind {
	case KindProduct:
		return r.Product.Name
	case KindAnnouncement:
		return r.Announcement.Title
	}
	return ""
}

// ThemeColor returns the accent color used for the slide
func (r ResolvedItem) ThemeColor() string {
	switch r.Kind {
	case KindProduct:
		return r.Product.ThemeColor()
	case KindAnnouncement:
		if r.Announcement.BackgroundColor != "" {
			return r.Announcement.BackgroundColor
		}
	}
	return DefaultThemeColor
}

// Catalog is a point-in-time copy of the application data
type Catalog struct {
	Stores          []Store
	Products        []Product
	Announcements   []Announcement
	DefaultDuration int
}

// ProductsByID indexes the products by id
func (c Catalog) ProductsByID() map[string]Product {
	m := make(map[string]Product, len(c.Products))
	for _, p := range c.Products {
		m[p.ID] = p
	}
	return m
}

// AnnouncementsByID indexes the announcements by id
func (c Catalog) AnnouncementsByID() map[string]Announcement {
	m := make(map[string]Announcement, len(c.Announcements))
	for _, a := range c.Announcements {
		m[a.ID] = a
	}
	return m
}

// FindStore looks up a store by id
func (c Catalog) FindStore(id string) (Store, bool) {
	for _, s := range c.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

// Phase is the carousel state
type Phase int

const (
	// PhaseIdle means no session exists
	PhaseIdle Phase = iota
	// PhaseEntering means content is mounted but not yet visible
	PhaseEntering
	// PhaseShowing means content is visible and progress advances
	PhaseShowing
	// PhaseTransitioning means the current slide is hidden and the index is about to change
	PhaseTransitioning
	// PhaseExited means the session was torn down
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEntering:
		return "entering"
	case PhaseShowing:
		return "showing"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseExited:
		return "exited"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Frame is what a renderer observes after every state change
type Frame struct {
	Phase    Phase
	Index    int
	Count    int
	Item     ResolvedItem
	Visible  bool
	Progress float64
	Store    Store
}

// ScreenResolution holds the display dimensions
type ScreenResolution struct {
	Width  int
	Height int
}
