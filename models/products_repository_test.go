package models

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A unique name per test keeps the shared-cache memory databases from
	// leaking state between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&DevicesCategory{}, &Device{}))
	return db
}

func seedDevices(t *testing.T, db *gorm.DB, n int) DevicesCategory {
	t.Helper()

	category := DevicesCategory{CategoryName: "Iluma One"}
	require.NoError(t, db.Create(&category).Error)

	for i := 1; i <= n; i++ {
		device := Device{
			ProductAttrs: ProductAttrs{
				Name:         fmt.Sprintf("Device %d", i),
				Price:        decimal.NewFromInt(int64(100 * i)),
				Availability: true,
				Ref:          fmt.Sprintf("DEV-%03d", i),
			},
			CategoryID: &category.ID,
		}
		require.NoError(t, db.Create(&device).Error)
	}
	return category
}

func TestCatalogRepositoryList(t *testing.T) {
	db := setupCatalogDB(t)
	seedDevices(t, db, 5)
	repo := NewCatalogRepository[Device](db)

	t.Run("first page is ordered by descending id", func(t *testing.T) {
		items, total, err := repo.List(0, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, items, 2)
		assert.Equal(t, uint(5), items[0].ID)
		assert.Equal(t, uint(4), items[1].ID)
	})

	t.Run("category is loaded with the page", func(t *testing.T) {
		items, _, err := repo.List(0, 1)

		require.NoError(t, err)
		require.Len(t, items, 1)
		require.NotNil(t, items[0].Category)
		assert.Equal(t, "Iluma One", items[0].Category.CategoryName)
	})

	t.Run("short last page keeps the full total", func(t *testing.T) {
		items, total, err := repo.List(4, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, items, 1)
		assert.Equal(t, uint(1), items[0].ID)
	})

	t.Run("skip beyond the table yields an empty page", func(t *testing.T) {
		items, total, err := repo.List(10, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		assert.Empty(t, items)
	})
}

func TestCatalogRepositoryGetByID(t *testing.T) {
	db := setupCatalogDB(t)
	seedDevices(t, db, 3)
	repo := NewCatalogRepository[Device](db)

	t.Run("existing id returns the row with its category", func(t *testing.T) {
		item, err := repo.GetByID(2)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Device 2", item.Name)
		require.NotNil(t, item.Category)
		assert.Equal(t, "Iluma One", item.Category.CategoryName)
	})

	t.Run("missing id is a nil row, not an error", func(t *testing.T) {
		item, err := repo.GetByID(999)

		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("row without a category loads with a nil category", func(t *testing.T) {
		orphan := Device{ProductAttrs: ProductAttrs{Name: "Uncategorized", Price: decimal.NewFromInt(10)}}
		require.NoError(t, db.Create(&orphan).Error)

		item, err := repo.GetByID(orphan.ID)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Nil(t, item.Category)
	})
}
