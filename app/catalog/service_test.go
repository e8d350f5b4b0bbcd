package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilumastore/go-store-backend/app/apperrors"
	"github.com/ilumastore/go-store-backend/models"
)

// --- Mock Repository ---

type MockDeviceRepo struct {
	Items     []models.Device
	Total     int64
	ListErr   error
	GetErr    error
	ByID      map[uint]*models.Device
	LastSkip  int
	LastLimit int
}

func (m *MockDeviceRepo) List(skip, limit int) ([]models.Device, int64, error) {
	m.LastSkip = skip
	m.LastLimit = limit
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	return m.Items, m.Total, nil
}

func (m *MockDeviceRepo) GetByID(id uint) (*models.Device, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ByID[id], nil
}

func catID(id uint) *uint { return &id }

// --- Tests ---

func TestServiceGetCollection(t *testing.T) {
	device := models.Device{
		ID: 7,
		ProductAttrs: models.ProductAttrs{
			Name:         "Iluma i Prime",
			Description:  "Flagship device",
			Image:        "/img/iluma-i-prime.png",
			Price:        decimal.RequireFromString("199.90"),
			Availability: true,
			IsNew:        true,
			IsHit:        false,
			Color:        "graphite",
			Ref:          "DEV-007",
			Type:         "devices",
			DeviceID:     "iluma-i",
		},
		CategoryID: catID(3),
		Category:   &models.DevicesCategory{ID: 3, CategoryName: "Iluma i"},
	}

	t.Run("maps rows and wraps pagination metadata", func(t *testing.T) {
		repo := &MockDeviceRepo{Items: []models.Device{device}, Total: 42}
		svc := NewService[models.Device]("devices", repo)

		res, err := svc.GetCollection(10, 5)

		require.NoError(t, err)
		assert.Equal(t, 10, res.Skip)
		assert.Equal(t, 5, res.Limit)
		assert.Equal(t, int64(42), res.Total)
		assert.Equal(t, 10, repo.LastSkip)
		assert.Equal(t, 5, repo.LastLimit)

		require.Len(t, res.Items, 1)
		item := res.Items[0]
		assert.Equal(t, uint(7), item.ID)
		assert.Equal(t, "Iluma i Prime", item.Name)
		assert.Equal(t, "Flagship device", item.Description)
		assert.Equal(t, "/img/iluma-i-prime.png", item.Image)
		assert.InDelta(t, 199.90, item.Price, 0.001)
		assert.True(t, item.Availability)
		assert.True(t, item.IsNew)
		assert.False(t, item.IsHit)
		assert.Equal(t, "graphite", item.Color)
		assert.Equal(t, "DEV-007", item.Ref)
		assert.Equal(t, "iluma-i", item.DeviceID)
		require.NotNil(t, item.Category)
		assert.Equal(t, uint(3), item.Category.ID)
		assert.Equal(t, "Iluma i", item.Category.CategoryName)
	})

	t.Run("row without a category maps to a nil category", func(t *testing.T) {
		bare := device
		bare.CategoryID = nil
		bare.Category = nil
		svc := NewService[models.Device]("devices", &MockDeviceRepo{Items: []models.Device{bare}, Total: 1})

		res, err := svc.GetCollection(0, 10)

		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Nil(t, res.Items[0].Category)
	})

	t.Run("repository failure becomes an internal domain error", func(t *testing.T) {
		cause := errors.New("connection refused")
		svc := NewService[models.Device]("devices", &MockDeviceRepo{ListErr: cause})

		_, err := svc.GetCollection(0, 10)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
		assert.ErrorIs(t, err, cause)
	})
}

func TestServiceGetSingle(t *testing.T) {
	device := models.Device{
		ID:           5,
		ProductAttrs: models.ProductAttrs{Name: "Iluma One", Price: decimal.RequireFromString("79.00")},
		Category:     &models.DevicesCategory{ID: 1, CategoryName: "Starter"},
	}

	t.Run("existing id maps the item", func(t *testing.T) {
		svc := NewService[models.Device]("devices", &MockDeviceRepo{ByID: map[uint]*models.Device{5: &device}})

		res, err := svc.GetSingle(5)

		require.NoError(t, err)
		assert.Equal(t, uint(5), res.Item.ID)
		assert.Equal(t, "Iluma One", res.Item.Name)
		require.NotNil(t, res.Item.Category)
		assert.Equal(t, "Starter", res.Item.Category.CategoryName)
	})

	t.Run("absence becomes a not-found domain error", func(t *testing.T) {
		svc := NewService[models.Device]("devices", &MockDeviceRepo{ByID: map[uint]*models.Device{}})

		_, err := svc.GetSingle(999)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "999")
	})

	t.Run("repository failure stays an internal error, not a not-found", func(t *testing.T) {
		cause := errors.New("timeout")
		svc := NewService[models.Device]("devices", &MockDeviceRepo{GetErr: cause})

		_, err := svc.GetSingle(5)

		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
		assert.ErrorIs(t, err, cause)
	})
}
