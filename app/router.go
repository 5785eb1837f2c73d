// Package app wires the read-only catalog API.
package app

import (
	"net/http"

	"github.com/catalog-app/catalog/app/catalog"
	"github.com/catalog-app/catalog/app/categories"
	"github.com/catalog-app/catalog/app/users"
	"github.com/catalog-app/catalog/models"
)

func NewRouter(repo *models.CatalogRepository) *http.ServeMux {
	categoryHandler := categories.NewCategoryHandler(repo)
	catalogHandler := catalog.NewCatalogHandler(repo)
	userHandler := users.NewUserHandler(repo)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /categories/{id}", categoryHandler.HandleGet)
	mux.HandleFunc("GET /items", catalogHandler.HandleGet)
	mux.HandleFunc("GET /items/{id}", catalogHandler.HandleGetItem)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)
	return mux
}
