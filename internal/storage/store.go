// Package storage persists the application state in a local SQLite file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
	CREATE TABLE IF NOT EXISTS stores (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		logoColor TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL,
		unit TEXT NOT NULL DEFAULT 'unidad',
		imageUrl TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		isPromotion INTEGER NOT NULL DEFAULT 0,
		promotionType TEXT NOT NULL DEFAULT '',
		slogan TEXT NOT NULL DEFAULT '',
		primaryColor TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS announcements (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		fontSize TEXT NOT NULL DEFAULT '',
		fontFamily TEXT NOT NULL DEFAULT '',
		backgroundColor TEXT NOT NULL DEFAULT '',
		textColor TEXT NOT NULL DEFAULT '',
		textAlign TEXT NOT NULL DEFAULT '',
		hasAnimation INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

const defaultDurationKey = "defaultDuration"

// Store reads and writes catalog snapshots
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens or creates the database at path and applies the schema.
// Use ":memory:" for a throwaway database.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// single writer; also keeps an in-memory database on one connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Database opened", zap.String("path", path))
	return s, nil
}

// Migrate creates missing tables
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the full catalog in saved order
func (s *Store) Load() (domain.Catalog, error) {
	var c domain.Catalog
	var err error

	if c.Stores, err = s.loadStores(); err != nil {
		return domain.Catalog{}, err
	}
	if c.Products, err = s.loadProducts(); err != nil {
		return domain.Catalog{}, err
	}
	if c.Announcements, err = s.loadAnnouncements(); err != nil {
		return domain.Catalog{}, err
	}

	var value string
	err = s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, defaultDurationKey).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return domain.Catalog{}, fmt.Errorf("query settings: %w", err)
	default:
		if c.DefaultDuration, err = strconv.Atoi(value); err != nil {
			return domain.Catalog{}, fmt.Errorf("parse %s: %w", defaultDurationKey, err)
		}
	}

	return c, nil
}

// Save replaces the stored catalog with c in a single transaction
func (s *Store) Save(c domain.Catalog) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, tx.Rollback())
		}
	}()

	for _, table := range []string{"stores", "products", "announcements"} {
		if _, err = tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, st := range c.Stores {
		if _, err = tx.Exec(`
			INSERT INTO stores (id, position, name, address, logoColor)
			VALUES (?, ?, ?, ?, ?)`,
			st.ID, i, st.Name, st.Address, st.LogoColor); err != nil {
			return fmt.Errorf("insert store %s: %w", st.ID, err)
		}
	}

	for i, p := range c.Products {
		if _, err = tx.Exec(`
			INSERT INTO products (id, position, name, description, price, unit, imageUrl,
				category, isPromotion, promotionType, slogan, primaryColor)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, p.Description, p.Price, string(p.Unit), p.ImageURL,
			p.Category, p.IsPromotion, string(p.PromotionType), p.Slogan, p.PrimaryColor); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}

	for i, a := range c.Announcements {
		if _, err = tx.Exec(`
			INSERT INTO announcements (id, position, title, message, fontSize, fontFamily,
				backgroundColor, textColor, textAlign, hasAnimation)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, i, a.Title, a.Message, a.FontSize, a.FontFamily,
			a.BackgroundColor, a.TextColor, a.TextAlign, a.HasAnimation); err != nil {
			return fmt.Errorf("insert announcement %s: %w", a.ID, err)
		}
	}

	if _, err = tx.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		defaultDurationKey, strconv.Itoa(c.DefaultDuration)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("Catalog saved",
		zap.Int("stores", len(c.Stores)),
		zap.Int("products", len(c.Products)),
		zap.Int("announcements", len(c.Announcements)))
	return nil
}

func (s *Store) loadStores() ([]domain.Store, error) {
	rows, err := s.db.Query(`
		SELECT id, name, address, logoColor
		FROM stores
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var st domain.Store
		if err := rows.Scan(&st.ID, &st.Name, &st.Address, &st.LogoColor); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		stores = append(stores, st)
	}
	return stores, rows.Err()
}

func (s *Store) loadProducts() ([]domain.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, name, description, price, unit, imageUrl, category,
			isPromotion, promotionType, slogan, primaryColor
		FROM products
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var unit, promo string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &unit, &p.ImageURL,
			&p.Category, &p.IsPromotion, &promo, &p.Slogan, &p.PrimaryColor); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Unit = domain.UnitType(unit)
		p.PromotionType = domain.PromotionType(promo)
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) loadAnnouncements() ([]domain.Announcement, error) {
	rows, err := s.db.Query(`
		SELECT id, title, message, fontSize, fontFamily, backgroundColor,
			textColor, textAlign, hasAnimation
		FROM announcements
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query announcements: %w", err)
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.FontSize, &a.FontFamily,
			&a.BackgroundColor, &a.TextColor, &a.TextAlign, &a.HasAnimation); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
