package users

import (
	"net/http"

	"github.com/catalog-app/catalog/app/api"
	"github.com/catalog-app/catalog/models"
)

type UserProvider interface {
	GetAllUsers() ([]models.User, error)
}

type UserHandler struct {
	repo UserProvider
}

func NewUserHandler(r UserProvider) *UserHandler {
	return &UserHandler{repo: r}
}

func (h *UserHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.GetAllUsers()
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	api.WriteJSON(w, http.StatusOK, api.NewUsers(users))
}
