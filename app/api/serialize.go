package api

import "github.com/catalog-app/catalog/models"

func NewCategory(c models.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Created:     c.Created,
	}
}

func NewItem(i models.Item) Item {
	var value *float64
	if d, ok := i.PriceValue(); ok {
		f := d.InexactFloat64()
		value = &f
	}
	return Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		PriceValue:  value,
		Created:     i.Created,
	}
}

func NewUser(u models.User) User {
	return User{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Picture: u.Picture,
		Profile: u.Admin,
		Created: u.Created,
	}
}

func NewItems(items []models.Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = NewItem(item)
	}
	return out
}

func NewUsers(users []models.User) []User {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = NewUser(u)
	}
	return out
}
