package models

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

// CatalogRepository issues the read queries for one product line. The type
// parameter selects the table; all three lines share the same access
// pattern. Persistence failures propagate to the caller unchanged.
type CatalogRepository[T CatalogEntry] struct {
	db *gorm.DB
}

func NewCatalogRepository[T CatalogEntry](db *gorm.DB) *CatalogRepository[T] {
	return &CatalogRepository[T]{
		db: db,
	}
}

// List returns one page ordered by descending id together with the
// unfiltered row count. The count runs as its own query so pagination
// metadata stays correct when the last page comes back short.
func (r *CatalogRepository[T]) List(skip, limit int) ([]T, int64, error) {
	var total int64
	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	if err := r.db.
		Preload("Category").
		Order("id DESC").
		Offset(skip).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	slog.Debug("catalog page loaded", "returned", len(items), "total", total)
	return items, total, nil
}

// GetByID loads a single row with its category populated. A missing row is
// reported as a nil entry, not an error; the caller decides whether absence
// is a failure.
func (r *CatalogRepository[T]) GetByID(id uint) (*T, error) {
	var item T
	if err := r.db.
		Preload("Category").
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}
