package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"product-catalog-api/internal/models"
)

// productsTableDDL bootstraps the single products table. The flat
// key-value layout needs no migrations; creating the table at open is
// the whole setup.
const productsTableDDL = `
	CREATE TABLE IF NOT EXISTS products (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		price       REAL NOT NULL,
		available   INTEGER NOT NULL
	)`

// SQLiteStore is a RecordStore backed by a SQLite database file.
type SQLiteStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSQLiteStore opens the database at path, creating the file and the
// products table when missing.
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if _, err := db.Exec(productsTableDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create products table: %w", err)
	}

	logger.WithField("db_path", path).Info("SQLite record store ready")

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Put implements RecordStore.Put
func (s *SQLiteStore) Put(ctx context.Context, product *models.Product) error {
	if product == nil || product.ProductID == "" {
		return NewStoreError("Put", "products", "", ErrInvalidID)
	}

	query := `
		INSERT OR REPLACE INTO products (id, name, description, price, available)
		VALUES (?, ?, ?, ?, ?)`

	s.logQuery("put", product.ProductID)

	_, err := s.db.ExecContext(ctx, query,
		product.ProductID,
		product.Name,
		product.Description,
		product.Price,
		product.Available,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to put product")
		return NewStoreError("Put", "products", product.ProductID, err)
	}

	return nil
}

// Get implements RecordStore.Get
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Product, error) {
	if id == "" {
		return nil, NewStoreError("Get", "products", id, ErrInvalidID)
	}

	query := `
		SELECT id, name, description, price, available
		FROM products
		WHERE id = ?`

	s.logQuery("get", id)

	row := s.db.QueryRowContext(ctx, query, id)

	product := &models.Product{}
	err := row.Scan(
		&product.ProductID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Available,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, NewStoreError("Get", "products", id, ErrNotFound)
		}
		s.logger.WithError(err).Error("Failed to get product")
		return nil, NewStoreError("Get", "products", id, err)
	}

	return product, nil
}

// Delete implements RecordStore.Delete
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewStoreError("Delete", "products", id, ErrInvalidID)
	}

	query := "DELETE FROM products WHERE id = ?"

	s.logQuery("delete", id)

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		s.logger.WithError(err).Error("Failed to delete product")
		return NewStoreError("Delete", "products", id, err)
	}

	return nil
}

// ScanAll implements RecordStore.ScanAll
func (s *SQLiteStore) ScanAll(ctx context.Context) ([]models.Product, error) {
	query := `
		SELECT id, name, description, price, available
		FROM products`

	s.logQuery("scan_all", "")

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.WithError(err).Error("Failed to scan products")
		return nil, NewStoreError("ScanAll", "products", "", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ProductID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Available,
		)
		if err != nil {
			return nil, NewStoreError("ScanAll", "products", "", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, NewStoreError("ScanAll", "products", "", err)
	}

	return products, nil
}

// Close implements RecordStore.Close
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// logQuery logs a store operation at debug level
func (s *SQLiteStore) logQuery(operation, id string) {
	s.logger.WithFields(logrus.Fields{
		"operation": operation,
		"table":     "products",
		"id":        id,
	}).Debug("Executing store operation")
}
