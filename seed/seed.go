// Package seed populates a catalog store with a fixed set of sample rows.
//
// Rows are written in three committed stages: categories and items, then
// users, then the association rows. A failure in a later stage leaves the
// earlier stages in place. Seeding is not idempotent; every run appends a
// new copy of the sample data.
package seed

import (
	"context"
	"fmt"

	"github.com/catalog-app/catalog/models"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Result holds the rows written by a single run.
type Result struct {
	Categories []models.Category
	Items      []models.Item
	Users      []models.User
	ItemLinks  int
	UserLinks  int
}

type Seeder struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewSeeder(db *gorm.DB, log zerolog.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: log.With().Str("component", "seed").Logger(),
	}
}

// Run writes the sample data. The schema must already exist.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	db := s.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&models.Category{}).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}
	if existing > 0 {
		s.log.Warn().Int64("categories", existing).Msg("store already populated, appending duplicate sample rows")
	}

	res := &Result{
		Categories: Categories(),
		Items:      Items(),
		Users:      Users(),
	}

	s.log.Info().Int("categories", len(res.Categories)).Int("items", len(res.Items)).Msg("adding sample categories and items")
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&res.Categories).Error; err != nil {
			return fmt.Errorf("failed to store categories: %w", err)
		}
		if err := tx.Create(&res.Items).Error; err != nil {
			return fmt.Errorf("failed to store items: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info().Msg("categories and items stored")

	s.log.Info().Int("users", len(res.Users)).Msg("adding sample users")
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&res.Users).Error; err != nil {
			return fmt.Errorf("failed to store users: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	s.log.Info().Msg("users stored")

	if err := db.Transaction(func(tx *gorm.DB) error {
		return s.link(tx, res)
	}); err != nil {
		return nil, err
	}
	s.log.Info().Int("item_links", res.ItemLinks).Int("user_links", res.UserLinks).Msg("associations stored")

	return res, nil
}

func (s *Seeder) link(tx *gorm.DB, res *Result) error {
	categories := make(map[string]*models.Category, len(res.Categories))
	for i := range res.Categories {
		categories[res.Categories[i].Name] = &res.Categories[i]
	}
	items := make(map[string]*models.Item, len(res.Items))
	for i := range res.Items {
		items[res.Items[i].Name] = &res.Items[i]
	}
	users := make(map[string]*models.User, len(res.Users))
	for i := range res.Users {
		users[res.Users[i].Name] = &res.Users[i]
	}

	for _, l := range Links {
		category, ok := categories[l.Category]
		if !ok {
			return fmt.Errorf("unknown category %q", l.Category)
		}
		user, ok := users[l.User]
		if !ok {
			return fmt.Errorf("unknown user %q", l.User)
		}
		if err := tx.Model(category).Association("Users").Append(user); err != nil {
			return fmt.Errorf("failed to link %s to %s: %w", l.User, l.Category, err)
		}
		res.UserLinks++

		for _, name := range l.Items {
			item, ok := items[name]
			if !ok {
				return fmt.Errorf("unknown item %q", name)
			}
			if err := tx.Model(category).Association("Items").Append(item); err != nil {
				return fmt.Errorf("failed to link %s to %s: %w", name, l.Category, err)
			}
			res.ItemLinks++
		}
	}
	return nil
}
