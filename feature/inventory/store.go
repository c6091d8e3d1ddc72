package inventory

import (
	"context"
	"errors"
	"fmt"

	"inventory-manager/core/apperr"
	"inventory-manager/core/database"
	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Store persists products in the inventory table.
// It implements reconcile.Store and reconcile.Transactor.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the inventory table if needed and checks its columns.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate inventory table: %w", err)
	}

	missing, err := database.MissingColumns(s.db, models.Product{}.TableName(), models.Columns)
	if err != nil {
		return fmt.Errorf("failed to inspect inventory table: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("inventory table is missing columns: %v", missing)
	}
	return nil
}

// Lookup returns the product stored under name, or nil when there is none.
func (s *Store) Lookup(ctx context.Context, name string) (reconcile.Record, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("product_name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Insert stores candidate as a new product.
func (s *Store) Insert(ctx context.Context, candidate reconcile.Record) (reconcile.Record, error) {
	p, err := asProduct(candidate)
	if err != nil {
		return nil, err
	}

	row := *p
	row.ID = 0
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update overwrites every business field of existing with candidate's values.
// A map is used so zero price or quantity are written too.
func (s *Store) Update(ctx context.Context, existing, candidate reconcile.Record) (reconcile.Record, error) {
	cur, err := asProduct(existing)
	if err != nil {
		return nil, err
	}
	next, err := asProduct(candidate)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", cur.ID).
		Updates(map[string]any{
			"product_name":     next.Name,
			"product_price":    next.PriceCents,
			"product_quantity": next.Quantity,
			"date_updated":     next.DateUpdated,
		}).Error
	if err != nil {
		return nil, err
	}

	row := *next
	row.ID = cur.ID
	return &row, nil
}

// WithinTx runs fn with a store bound to a single transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(reconcile.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// FindByID returns the product with the given id.
func (s *Store) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NewLookup("id", fmt.Sprintf("no product with id %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load product %d: %w", id, err)
	}
	return &p, nil
}

// IDs returns every stored product id in ascending order.
func (s *Store) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	return ids, nil
}

// List returns every stored product ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Count returns the number of stored products.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func asProduct(r reconcile.Record) (*models.Product, error) {
	switch p := r.(type) {
	case *models.Product:
		if p == nil {
			return nil, fmt.Errorf("nil product")
		}
		return p, nil
	case models.Product:
		return &p, nil
	default:
		return nil, fmt.Errorf("unexpected record type %T", r)
	}
}
