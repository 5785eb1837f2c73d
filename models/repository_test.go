package models_test

import (
	"context"
	"testing"

	"github.com/catalog-app/catalog/database/databasetest"
	"github.com/catalog-app/catalog/models"
	"github.com/catalog-app/catalog/seed"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRepo(t *testing.T) *models.CatalogRepository {
	t.Helper()
	db := databasetest.New(t)
	_, err := seed.NewSeeder(db, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)
	return models.NewCatalogRepository(db)
}

func itemNames(items []models.Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func TestGetCategoryByName(t *testing.T) {
	repo := newSeededRepo(t)

	category, err := repo.GetCategoryByName("Cat1")
	require.NoError(t, err)

	assert.Equal(t, "Cat1", category.Name)
	assert.Equal(t, []string{"Item1", "Item4"}, itemNames(category.Items))
	require.Len(t, category.Users, 1)
	assert.Equal(t, "user1", category.Users[0].Name)
	assert.True(t, category.Users[0].Admin)

	_, err = repo.GetCategoryByName("Cat9")
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestGetCategoryByID(t *testing.T) {
	repo := newSeededRepo(t)

	category, err := repo.GetCategoryByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Cat2", category.Name)
	assert.Equal(t, []string{"Item2", "Item5"}, itemNames(category.Items))

	_, err = repo.GetCategoryByID(99)
	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
}

func TestGetAllCategoriesAndUsers(t *testing.T) {
	repo := newSeededRepo(t)

	categories, err := repo.GetAllCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Cat1", categories[0].Name)
	assert.Equal(t, "Cat3", categories[2].Name)

	users, err := repo.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "user2@email.com", users[1].Email)
}

func TestGetFilteredItems(t *testing.T) {
	repo := newSeededRepo(t)

	testCases := []struct {
		name          string
		offset        int
		limit         int
		filters       models.ItemFilters
		expectedTotal int64
		expectedNames []string
	}{
		{
			name:          "All items",
			limit:         10,
			expectedTotal: 6,
			expectedNames: []string{"Item1", "Item2", "Item3", "Item4", "Item5", "Item6"},
		},
		{
			name:          "Paginated",
			offset:        2,
			limit:         3,
			expectedTotal: 6,
			expectedNames: []string{"Item3", "Item4", "Item5"},
		},
		{
			name:          "Filtered by category",
			limit:         10,
			filters:       models.ItemFilters{CategoryName: "Cat3"},
			expectedTotal: 2,
			expectedNames: []string{"Item3", "Item6"},
		},
		{
			name:          "Unknown category",
			limit:         10,
			filters:       models.ItemFilters{CategoryName: "nope"},
			expectedTotal: 0,
			expectedNames: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, total, err := repo.GetFilteredItems(tc.offset, tc.limit, tc.filters)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedTotal, total)
			assert.Equal(t, tc.expectedNames, itemNames(items))
		})
	}
}

func TestGetItemByID(t *testing.T) {
	repo := newSeededRepo(t)

	item, err := repo.GetItemByID(5)
	require.NoError(t, err)
	assert.Equal(t, "Item5", item.Name)
	assert.Equal(t, "555", *item.Price)
	require.Len(t, item.Categories, 1)
	assert.Equal(t, "Cat2", item.Categories[0].Name)

	_, err = repo.GetItemByID(42)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestCountsOnEmptyStore(t *testing.T) {
	repo := models.NewCatalogRepository(databasetest.New(t))

	counts, err := repo.Counts()
	require.NoError(t, err)
	assert.Equal(t, models.TableCounts{}, counts)
}

func TestItemPriceKeepsStoredText(t *testing.T) {
	db := databasetest.New(t)
	require.NoError(t, db.Exec(`INSERT INTO item (name, price) VALUES (?, ?), (?, ?), (?, ?)`,
		"A", "1.50", "B", "free", "C", nil).Error)
	repo := models.NewCatalogRepository(db)

	items, total, err := repo.GetFilteredItems(0, 10, models.ItemFilters{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 3)

	assert.Equal(t, "1.50", *items[0].Price)
	assert.Equal(t, "free", *items[1].Price)
	assert.Nil(t, items[2].Price)

	item, err := repo.GetItemByID(items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "1.50", *item.Price)
	d, ok := item.PriceValue()
	assert.True(t, ok)
	assert.Equal(t, "1.5", d.String())

	_, ok = items[1].PriceValue()
	assert.False(t, ok)
}
