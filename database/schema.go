package database

import (
	"context"
	"fmt"

	"github.com/catalog-app/catalog/models"
	"gorm.io/gorm"
)

// Tables lists every table the catalog schema owns.
var Tables = []string{
	"category",
	"item",
	"user",
	models.ItemCategoryTable,
	models.UserCategoryTable,
}

// EnsureSchema creates any missing catalog table. Existing tables are left
// as they are, so calling it on a populated store is a no-op.
// The join tables are created from the many2many declarations on the models.
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&models.Category{}, &models.Item{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return nil
}

// HasSchema reports whether every catalog table exists.
func HasSchema(ctx context.Context, db *gorm.DB) bool {
	migrator := db.WithContext(ctx).Migrator()
	for _, table := range Tables {
		if !migrator.HasTable(table) {
			return false
		}
	}
	return true
}
