package models

import "time"

// Join table names shared by both sides of each many-to-many relationship.
const (
	ItemCategoryTable = "item_category"
	UserCategoryTable = "user_category"
)

// Category represents a catalog category.
// It groups items and the users associated with it through join tables.
type Category struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:250;not null"`
	Description *string   `gorm:"size:250"`
	Created     time.Time `gorm:"column:created;autoCreateTime"`
	Items       []Item    `gorm:"many2many:item_category;"`
	Users       []User    `gorm:"many2many:user_category;"`
}

func (c *Category) TableName() string {
	return "category"
}
