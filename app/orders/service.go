package orders

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ilumastore/go-store-backend/app/apperrors"
	"github.com/ilumastore/go-store-backend/models"
)

// CreateOrderRequest is the checkout payload. total_amount is never
// client-supplied; the repository derives it from the lines.
type CreateOrderRequest struct {
	CustomerName string      `json:"customer_name" binding:"required"`
	PhoneNumber  string      `json:"phone_number" binding:"required"`
	IsDelivery   bool        `json:"is_delivery"`
	Address      string      `json:"address"`
	OrderedItems []LineInput `json:"ordered_items" binding:"omitempty,dive"`
}

// LineInput is one order line. The price is decoded into decimal straight
// from the JSON literal so no float rounding sneaks into the total.
type LineInput struct {
	ProductName        string          `json:"product_name" binding:"required"`
	Quantity           int             `json:"quantity" binding:"gt=0"`
	PriceAtTimeOfOrder decimal.Decimal `json:"price_at_time_of_order"`
}

type OrderLine struct {
	ProductName        string  `json:"product_name"`
	Quantity           int     `json:"quantity"`
	PriceAtTimeOfOrder float64 `json:"price_at_time_of_order"`
}

type OrderResponse struct {
	ID           uint        `json:"id"`
	CustomerName string      `json:"customer_name"`
	PhoneNumber  string      `json:"phone_number"`
	IsDelivery   bool        `json:"is_delivery"`
	Address      string      `json:"address"`
	TotalAmount  float64     `json:"total_amount"`
	CreatedAt    time.Time   `json:"created_at"`
	OrderedItems []OrderLine `json:"ordered_items"`
}

// OrderStore is the repository surface the service depends on.
type OrderStore interface {
	Create(order *models.Order, items []models.OrderedProduct) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
}

type Service struct {
	repo OrderStore
}

func NewService(repo OrderStore) *Service {
	return &Service{
		repo: repo,
	}
}

// Create persists a new order and returns the committed aggregate.
func (s *Service) Create(req CreateOrderRequest) (OrderResponse, error) {
	order := &models.Order{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		IsDelivery:   req.IsDelivery,
		Address:      req.Address,
	}

	items := make([]models.OrderedProduct, len(req.OrderedItems))
	for i, line := range req.OrderedItems {
		items[i] = models.OrderedProduct{
			ProductName:        line.ProductName,
			Quantity:           line.Quantity,
			PriceAtTimeOfOrder: line.PriceAtTimeOfOrder,
		}
	}

	created, err := s.repo.Create(order, items)
	if err != nil {
		slog.Error("failed to create order", "customer", req.CustomerName, "err", err)
		return OrderResponse{}, apperrors.Internal("failed to create order", err)
	}
	return mapOrder(created), nil
}

// GetSingle returns one order by id, or a not-found domain error.
func (s *Service) GetSingle(id uint) (OrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		slog.Error("failed to load order", "id", id, "err", err)
		return OrderResponse{}, apperrors.Internal("failed to retrieve order", err)
	}
	if order == nil {
		slog.Warn("order not found", "id", id)
		return OrderResponse{}, apperrors.NotFound("order with id %d not found", id)
	}
	return mapOrder(order), nil
}

func mapOrder(order *models.Order) OrderResponse {
	lines := make([]OrderLine, len(order.OrderedItems))
	for i, item := range order.OrderedItems {
		lines[i] = OrderLine{
			ProductName:        item.ProductName,
			Quantity:           item.Quantity,
			PriceAtTimeOfOrder: item.PriceAtTimeOfOrder.InexactFloat64(),
		}
	}
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		PhoneNumber:  order.PhoneNumber,
		IsDelivery:   order.IsDelivery,
		Address:      order.Address,
		TotalAmount:  order.TotalAmount.InexactFloat64(),
		CreatedAt:    order.CreatedAt,
		OrderedItems: lines,
	}
}
