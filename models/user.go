package models

import "time"

// User represents a catalog user. Admin is stored in the profile column:
// false for ordinary users, true for administrators.
type User struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"size:250;not null"`
	Email      string     `gorm:"size:250;not null"`
	Picture    *string    `gorm:"size:250"`
	Admin      bool       `gorm:"column:profile;not null"`
	Created    time.Time  `gorm:"column:created;autoCreateTime"`
	Categories []Category `gorm:"many2many:user_category;"`
}

func (u *User) TableName() string {
	return "user"
}
