package models

// Each product line keeps its own category table. The admin panel manages
// the three tables independently, so they are separate entities rather than
// one table with a discriminator.

type DevicesCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryName string `gorm:"size:256;not null" json:"category_name"`
}

func (c *DevicesCategory) TableName() string {
	return "devices_categories"
}

type IqosCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryName string `gorm:"size:256;not null" json:"category_name"`
}

func (c *IqosCategory) TableName() string {
	return "iqos_categories"
}

type TereaCategory struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CategoryName string `gorm:"size:256;not null" json:"category_name"`
}

func (c *TereaCategory) TableName() string {
	return "terea_categories"
}
