package models

import (
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdersRepository owns the order write path and order lookups.
type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		db: db,
	}
}

// Create persists the order header and its line snapshots as a single
// transaction and returns the reloaded aggregate. The total is computed
// here from the lines; whatever the caller put in order.TotalAmount is
// overwritten. An empty line list is allowed and yields a zero total.
func (r *OrdersRepository) Create(order *Order, items []OrderedProduct) (*Order, error) {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.PriceAtTimeOfOrder.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	order.TotalAmount = total

	var created Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if len(items) > 0 {
			for i := range items {
				items[i].OrderID = order.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return tx.Preload("OrderedItems").First(&created, order.ID).Error
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order created",
		"id", created.ID,
		"total", created.TotalAmount,
		"lines", len(created.OrderedItems),
	)
	return &created, nil
}

// GetByID loads an order with its lines. A missing order is reported as a
// nil result, not an error.
func (r *OrdersRepository) GetByID(id uint) (*Order, error) {
	var order Order
	if err := r.db.
		Preload("OrderedItems").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
