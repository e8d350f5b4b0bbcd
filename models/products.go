package models

import (
	"github.com/shopspring/decimal"
)

// ProductAttrs is the column set shared by all three product lines.
type ProductAttrs struct {
	Name         string          `gorm:"size:256;not null" json:"name"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Availability bool            `json:"availability"`
	IsNew        bool            `json:"is_new"`
	IsHit        bool            `json:"is_hit"`
	Color        string          `json:"color"`
	Ref          string          `gorm:"size:64" json:"ref"`
	Type         string          `gorm:"size:64" json:"type"`
	DeviceID     string          `gorm:"size:64" json:"device_id"`
}

// CategoryInfo is the category projection shared read paths hand out.
type CategoryInfo struct {
	ID           uint
	CategoryName string
}

// CatalogEntry is implemented by every product-line entity so the shared
// repository and service code can treat the three lines uniformly.
type CatalogEntry interface {
	EntryID() uint
	Attrs() ProductAttrs
	CategoryRef() *CategoryInfo
}

// Device is a sellable device. The category is nullable; a device may be
// left uncategorized in the admin panel.
type Device struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ProductAttrs
	CategoryID *uint            `json:"category_id"`
	Category   *DevicesCategory `gorm:"foreignKey:CategoryID" json:"category"`
}

func (d *Device) TableName() string {
	return "devices"
}

func (d Device) EntryID() uint       { return d.ID }
func (d Device) Attrs() ProductAttrs { return d.ProductAttrs }

func (d Device) CategoryRef() *CategoryInfo {
	if d.Category == nil {
		return nil
	}
	return &CategoryInfo{ID: d.Category.ID, CategoryName: d.Category.CategoryName}
}

// Iqos is a sellable iqos product.
type Iqos struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ProductAttrs
	CategoryID *uint         `json:"category_id"`
	Category   *IqosCategory `gorm:"foreignKey:CategoryID" json:"category"`
}

func (i *Iqos) TableName() string {
	return "iqos"
}

func (i Iqos) EntryID() uint       { return i.ID }
func (i Iqos) Attrs() ProductAttrs { return i.ProductAttrs }

func (i Iqos) CategoryRef() *CategoryInfo {
	if i.Category == nil {
		return nil
	}
	return &CategoryInfo{ID: i.Category.ID, CategoryName: i.Category.CategoryName}
}

// Terea is a sellable terea product.
type Terea struct {
	ID uint `gorm:"primaryKey" json:"id"`
	ProductAttrs
	CategoryID *uint          `json:"category_id"`
	Category   *TereaCategory `gorm:"foreignKey:CategoryID" json:"category"`
}

func (t *Terea) TableName() string {
	return "terea"
}

func (t Terea) EntryID() uint       { return t.ID }
func (t Terea) Attrs() ProductAttrs { return t.ProductAttrs }

func (t Terea) CategoryRef() *CategoryInfo {
	if t.Category == nil {
		return nil
	}
	return &CategoryInfo{ID: t.Category.ID, CategoryName: t.Category.CategoryName}
}
