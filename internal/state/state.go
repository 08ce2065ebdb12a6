// Package state owns the application data: stores, products,
// announcements and the default slide duration. Persistence subscribes
// to it rather than being the system of record.
package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/genricoloni/promocast/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when an id matches no record
	ErrNotFound = errors.New("not found")
	// ErrInvalid is returned when a record fails validation
	ErrInvalid = errors.New("invalid record")
)

const (
	seedStoreName    = "Sucursal Central"
	seedStoreAddress = "Av. Libertador 1234"
	seedStoreColor   = "bg-blue-600"
	seedDuration     = 5
)

// Listener receives a snapshot after every mutation
type Listener func(domain.Catalog) error

// State is the in-memory application state
type State struct {
	logger *zap.Logger

	mu        sync.RWMutex
	notifyMu  sync.Mutex // keeps snapshots reaching listeners in mutation order
	catalog   domain.Catalog
	listeners []Listener
	newID     func() string
}

// New creates an empty state
func New(logger *zap.Logger) *State {
	return &State{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Load replaces the whole state without notifying listeners. An empty
// catalog is seeded with a default store and duration.
func (s *State) Load(c domain.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = copyCatalog(c)
	if len(s.catalog.Stores) == 0 {
		s.catalog.Stores = []domain.Store{{
			ID:        s.newID(),
			Name:      seedStoreName,
			Address:   seedStoreAddress,
			LogoColor: seedStoreColor,
		}}
		s.logger.Info("Seeded default store", zap.String("name", seedStoreName))
	}
	if s.catalog.DefaultDuration <= 0 {
		s.catalog.DefaultDuration = seedDuration
	}
}

// Subscribe registers a listener for future mutations
func (s *State) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy that later edits do not affect
func (s *State) Snapshot() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCatalog(s.catalog)
}

// AddStore creates a store with a fresh id
func (s *State) AddStore(st domain.Store) (domain.Store, error) {
	if err := validateStore(st); err != nil {
		return domain.Store{}, err
	}
	st.ID = s.newID()
	err := s.mutate(func(c *domain.Catalog) error {
		c.Stores = append(c.Stores, st)
		return nil
	})
	return st, err
}

// UpdateStore replaces the store with the same id
func (s *State) UpdateStore(st domain.Store) error {
	if err := validateStore(st); err != nil {
		return err
	}
	return s.mutate(func(c *domain.Catalog) error {
		for i := range c.Stores {
			if c.Stores[i].ID == st.ID {
				c.Stores[i] = st
				return nil
			}
		}
		return fmt.Errorf("store %s: %w", st.ID, ErrNotFound)
	})
}

// DeleteStore removes a store
func (s *State) DeleteStore(id string) error {
	return s.mutate(func(c *domain.Catalog) error {
		var ok bool
		c.Stores, ok = remove(c.Stores, func(st domain.Store) bool { return st.ID == id })
		if !ok {
			return fmt.Errorf("store %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// AddProduct creates a product with a fresh id
func (s *State) AddProduct(p domain.Product) (domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	p.ID = s.newID()
	err := s.mutate(func(c *domain.Catalog) error {
		c.Products = append(c.Products, p)
		return nil
	})
	return p, err
}

// UpdateProduct replaces the product with the same id
func (s *State) UpdateProduct(p domain.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	return s.mutate(func(c *domain.Catalog) error {
		for i := range c.Products {
			if c.Products[i].ID == p.ID {
				c.Products[i] = p
				return nil
			}
		}
		return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
	})
}

// DeleteProduct removes a product. Playlists that still reference it
// simply skip it on the next launch.
func (s *State) DeleteProduct(id string) error {
	return s.mutate(func(c *domain.Catalog) error {
		var ok bool
		c.Products, ok = remove(c.Products, func(p domain.Product) bool { return p.ID == id })
		if !ok {
			return fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// AddAnnouncement creates an announcement with a fresh id
func (s *State) AddAnnouncement(a domain.Announcement) (domain.Announcement, error) {
	if err := validateAnnouncement(a); err != nil {
		return domain.Announcement{}, err
	}
	a.ID = s.newID()
	err := s.mutate(func(c *domain.Catalog) error {
		c.Announcements = append(c.Announcements, a)
		return nil
	})
	return a, err
}

// UpdateAnnouncement replaces the announcement with the same id
func (s *State) UpdateAnnouncement(a domain.Announcement) error {
	if err := validateAnnouncement(a); err != nil {
		return err
	}
	return s.mutate(func(c *domain.Catalog) error {
		for i := range c.Announcements {
			if c.Announcements[i].ID == a.ID {
				c.Announcements[i] = a
				return nil
			}
		}
		return fmt.Errorf("announcement %s: %w", a.ID, ErrNotFound)
	})
}

// DeleteAnnouncement removes an announcement
func (s *State) DeleteAnnouncement(id string) error {
	return s.mutate(func(c *domain.Catalog) error {
		var ok bool
		c.Announcements, ok = remove(c.Announcements, func(a domain.Announcement) bool { return a.ID == id })
		if !ok {
			return fmt.Errorf("announcement %s: %w", id, ErrNotFound)
		}
		return nil
	})
}

// SetDefaultDuration stores the launch duration, floored at one second
func (s *State) SetDefaultDuration(seconds int) error {
	if seconds < 1 {
		seconds = 1
	}
	return s.mutate(func(c *domain.Catalog) error {
		c.DefaultDuration = seconds
		return nil
	})
}

// mutate applies fn and, on success, hands the new snapshot to every
// listener. Listener failures are combined into the returned error; the
// in-memory change is kept.
func (s *State) mutate(fn func(c *domain.Catalog) error) error {
	s.mu.Lock()
	if err := fn(&s.catalog); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := copyCatalog(s.catalog)
	listeners := append([]Listener(nil), s.listeners...)
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	var err error
	for _, l := range listeners {
		err = multierr.Append(err, l(snapshot))
	}
	if err != nil {
		s.logger.Error("State listener failed", zap.Error(err))
	}
	return err
}

func validateStore(st domain.Store) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("store name is required: %w", ErrInvalid)
	}
	return nil
}

func validateProduct(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required: %w", ErrInvalid)
	}
	if p.Price < 0 {
		return fmt.Errorf("product price must not be negative: %w", ErrInvalid)
	}
	return nil
}

func validateAnnouncement(a domain.Announcement) error {
	if strings.TrimSpace(a.Title) == "" && strings.TrimSpace(a.Message) == "" {
		return fmt.Errorf("announcement needs a title or a message: %w", ErrInvalid)
	}
	return nil
}

func remove[T any](s []T, match func(T) bool) ([]T, bool) {
	for i, v := range s {
		if match(v) {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}

func copyCatalog(c domain.Catalog) domain.Catalog {
	return domain.Catalog{
		Stores:          append([]domain.Store(nil), c.Stores...),
		Products:        append([]domain.Product(nil), c.Products...),
		Announcements:   append([]domain.Announcement(nil), c.Announcements...),
		DefaultDuration: c.DefaultDuration,
	}
}
