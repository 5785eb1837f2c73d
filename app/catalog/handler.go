package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/catalog-app/catalog/app/api"
	"github.com/catalog-app/catalog/models"
)

type Response struct {
	Total int        `json:"total"`
	Items []api.Item `json:"items"`
}

type ItemDetailResponse struct {
	api.Item
	Categories []string `json:"categories"`
}

type ItemProvider interface {
	GetFilteredItems(offset, limit int, filters models.ItemFilters) ([]models.Item, int64, error)
	GetItemByID(id uint) (*models.Item, error)
}

type CatalogHandler struct {
	repo ItemProvider
}

func NewCatalogHandler(r ItemProvider) *CatalogHandler {
	return &CatalogHandler{
		repo: r,
	}
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	filters := models.ItemFilters{
		CategoryName: r.URL.Query().Get("category"),
	}

	res, total, err := h.repo.GetFilteredItems(offset, limit, filters)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}

	api.WriteJSON(w, http.StatusOK, Response{
		Total: int(total),
		Items: api.NewItems(res),
	})
}

func (h *CatalogHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := api.PathID(r)
	if !ok {
		api.WriteError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.repo.GetItemByID(id)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			api.WriteError(w, http.StatusNotFound, "item not found")
			return
		}
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}

	categories := make([]string, len(item.Categories))
	for i, c := range item.Categories {
		categories[i] = c.Name
	}

	api.WriteJSON(w, http.StatusOK, ItemDetailResponse{
		Item:       api.NewItem(*item),
		Categories: categories,
	})
}
