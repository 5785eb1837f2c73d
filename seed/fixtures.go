package seed

import (
	"fmt"

	"github.com/catalog-app/catalog/models"
	"github.com/shopspring/decimal"
)

// Link ties one category to the user and items it is associated with.
type Link struct {
	Category string
	User     string
	Items    []string
}

// Links is the fixed association layout: every category gets one user and
// two items.
var Links = []Link{
	{Category: "Cat1", User: "user1", Items: []string{"Item1", "Item4"}},
	{Category: "Cat2", User: "user2", Items: []string{"Item2", "Item5"}},
	{Category: "Cat3", User: "user3", Items: []string{"Item3", "Item6"}},
}

func describe(name string) *string {
	d := name + " description"
	return &d
}

// Categories returns fresh, unsaved sample categories.
func Categories() []models.Category {
	categories := make([]models.Category, 0, 3)
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("Cat%d", i)
		categories = append(categories, models.Category{
			Name:        name,
			Description: describe(name),
		})
	}
	return categories
}

// Items returns fresh, unsaved sample items priced 111, 222 … 666.
func Items() []models.Item {
	items := make([]models.Item, 0, 6)
	for i := 1; i <= 6; i++ {
		name := fmt.Sprintf("Item%d", i)
		price := decimal.NewFromInt(int64(111 * i)).String()
		items = append(items, models.Item{
			Name:        name,
			Description: describe(name),
			Price:       &price,
		})
	}
	return items
}

// Users returns fresh, unsaved sample users. user1 is the only administrator.
func Users() []models.User {
	users := make([]models.User, 0, 3)
	for i := 1; i <= 3; i++ {
		name := fmt.Sprintf("user%d", i)
		picture := name + " some picture path"
		users = append(users, models.User{
			Name:    name,
			Email:   name + "@email.com",
			Picture: &picture,
			Admin:   i == 1,
		})
	}
	return users
}
