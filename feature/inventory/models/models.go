package models

import (
	"time"
)

// Product is a single inventory line, keyed by its name.
type Product struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:product_name;index" validate:"required,notblank"`
	PriceCents  int64     `gorm:"column:product_price" validate:"gte=0"`
	Quantity    int       `gorm:"column:product_quantity" validate:"gte=0"`
	DateUpdated time.Time `gorm:"column:date_updated;type:date" validate:"required"`
}

// TableName overrides the table name used by gorm.
func (Product) TableName() string {
	return "inventory"
}

// Key returns the business key used for reconciliation.
func (p Product) Key() string {
	return p.Name
}

// Version returns the date the record was last updated.
func (p Product) Version() time.Time {
	return p.DateUpdated
}

// Columns lists the columns the inventory table must carry.
var Columns = []string{"id", "product_name", "product_price", "product_quantity", "date_updated"}
