package models

import (
	"errors"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrItemNotFound is returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

type ItemFilters struct {
	CategoryName string
}

// TableCounts holds the number of rows in each catalog table.
type TableCounts struct {
	Categories   int64
	Items        int64
	Users        int64
	ItemCategory int64
	UserCategory int64
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		db: db,
	}
}

func (r *CatalogRepository) GetAllCategories() ([]Category, error) {
	var categories []Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) GetCategoryByID(id uint) (*Category, error) {
	var category Category
	if err := r.db.
		Preload("Items", orderByID).
		Preload("Users", orderByID).
		First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// GetCategoryByName returns the first category with the given name.
// Names are not unique, so the lowest id wins.
func (r *CatalogRepository) GetCategoryByName(name string) (*Category, error) {
	var category Category
	if err := r.db.
		Preload("Items", orderByID).
		Preload("Users", orderByID).
		Where("name = ?", name).
		Order("id").
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepository) GetFilteredItems(offset, limit int, filters ItemFilters) ([]Item, int64, error) {
	var items []Item
	var total int64

	query := r.db.Model(&Item{})

	// Filter
	if filters.CategoryName != "" {
		query = query.Where(
			"item.id IN (?)",
			r.db.Table(ItemCategoryTable).
				Select("item_category.item_id").
				Joins("JOIN category ON category.id = item_category.category_id").
				Where("category.name = ?", filters.CategoryName),
		)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.Order("item.id").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *CatalogRepository) GetItemByID(id uint) (*Item, error) {
	var item Item
	if err := r.db.
		Preload("Categories", orderByID).
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err // Other DB error
	}
	return &item, nil
}

func (r *CatalogRepository) GetAllUsers() ([]User, error) {
	var users []User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Counts reports the row count of every catalog table, join tables included.
func (r *CatalogRepository) Counts() (TableCounts, error) {
	var counts TableCounts
	steps := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{r.db.Model(&Category{}), &counts.Categories},
		{r.db.Model(&Item{}), &counts.Items},
		{r.db.Model(&User{}), &counts.Users},
		{r.db.Table(ItemCategoryTable), &counts.ItemCategory},
		{r.db.Table(UserCategoryTable), &counts.UserCategory},
	}
	for _, s := range steps {
		if err := s.query.Count(s.dest).Error; err != nil {
			return TableCounts{}, err
		}
	}
	return counts, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
