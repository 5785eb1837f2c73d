package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents an item listed in one or more categories.
// Price is free text in the store; PriceValue reads it as a number.
type Item struct {
	ID          uint       `gorm:"primaryKey"`
	Name        string     `gorm:"size:80;not null"`
	Description *string    `gorm:"size:250"`
	Price       *string    `gorm:"type:varchar(8)"`
	Created     time.Time  `gorm:"column:created;autoCreateTime"`
	Categories  []Category `gorm:"many2many:item_category;"`
}

func (i *Item) TableName() string {
	return "item"
}

// PriceValue parses the stored price. ok is false when the price is unset
// or is not a number.
func (i *Item) PriceValue() (decimal.Decimal, bool) {
	if i.Price == nil {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(*i.Price)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
