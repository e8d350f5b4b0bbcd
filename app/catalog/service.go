package catalog

import (
	"log/slog"

	"github.com/ilumastore/go-store-backend/app/apperrors"
	"github.com/ilumastore/go-store-backend/models"
)

type Category struct {
	ID           uint   `json:"id"`
	CategoryName string `json:"category_name"`
}

// Product is the response record for one catalog item. Prices cross the
// JSON boundary as floats; storage and arithmetic stay decimal.
type Product struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	IsNew        bool      `json:"is_new"`
	IsHit        bool      `json:"is_hit"`
	Color        string    `json:"color"`
	Ref          string    `json:"ref"`
	Type         string    `json:"type"`
	DeviceID     string    `json:"device_id"`
	Category     *Category `json:"category"`
}

type CollectionResponse struct {
	Items []Product `json:"items"`
	Skip  int       `json:"skip"`
	Limit int       `json:"limit"`
	Total int64     `json:"total"`
}

type ItemResponse struct {
	Item Product `json:"item"`
}

// ProductProvider is the repository surface the service depends on.
type ProductProvider[T models.CatalogEntry] interface {
	List(skip, limit int) ([]T, int64, error)
	GetByID(id uint) (*T, error)
}

// Service adapts repository rows for one product line into response
// records. It is the single place that decides whether an absence is
// client-visible as not-found versus an infrastructure failure.
type Service[T models.CatalogEntry] struct {
	line string
	repo ProductProvider[T]
}

func NewService[T models.CatalogEntry](line string, repo ProductProvider[T]) *Service[T] {
	return &Service[T]{
		line: line,
		repo: repo,
	}
}

// GetCollection returns one page of the line's items wrapped with
// pagination metadata.
func (s *Service[T]) GetCollection(skip, limit int) (CollectionResponse, error) {
	rows, total, err := s.repo.List(skip, limit)
	if err != nil {
		slog.Error("failed to list products", "line", s.line, "err", err)
		return CollectionResponse{}, apperrors.Internal("failed to retrieve "+s.line+" products", err)
	}

	items := make([]Product, len(rows))
	for i, row := range rows {
		items[i] = mapProduct(row)
	}

	return CollectionResponse{
		Items: items,
		Skip:  skip,
		Limit: limit,
		Total: total,
	}, nil
}

// GetSingle returns one item by id, or a not-found domain error.
func (s *Service[T]) GetSingle(id uint) (ItemResponse, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		slog.Error("failed to load product", "line", s.line, "id", id, "err", err)
		return ItemResponse{}, apperrors.Internal("failed to retrieve "+s.line+" product", err)
	}
	if row == nil {
		slog.Warn("product not found", "line", s.line, "id", id)
		return ItemResponse{}, apperrors.NotFound("%s product with id %d not found", s.line, id)
	}
	return ItemResponse{Item: mapProduct(*row)}, nil
}

func mapProduct(row models.CatalogEntry) Product {
	attrs := row.Attrs()
	p := Product{
		ID:           row.EntryID(),
		Name:         attrs.Name,
		Description:  attrs.Description,
		Image:        attrs.Image,
		Price:        attrs.Price.InexactFloat64(),
		Availability: attrs.Availability,
		IsNew:        attrs.IsNew,
		IsHit:        attrs.IsHit,
		Color:        attrs.Color,
		Ref:          attrs.Ref,
		Type:         attrs.Type,
		DeviceID:     attrs.DeviceID,
	}
	if ref := row.CategoryRef(); ref != nil {
		p.Category = &Category{
			ID:           ref.ID,
			CategoryName: ref.CategoryName,
		}
	}
	return p
}
