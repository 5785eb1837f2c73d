package categories

import (
	"errors"
	"net/http"

	"github.com/catalog-app/catalog/app/api"
	"github.com/catalog-app/catalog/models"
)

type CategoryDetailResponse struct {
	api.Category
	Items []api.Item `json:"items"`
	Users []api.User `json:"users"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	response := make([]api.Category, len(categories))
	for i, c := range categories {
		response[i] = api.NewCategory(c)
	}

	api.WriteJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.repo.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	api.WriteJSON(w, http.StatusOK, CategoryDetailResponse{
		Category: api.NewCategory(*category),
		Items:    api.NewItems(category.Items),
		Users:    api.NewUsers(category.Users),
	})
}
