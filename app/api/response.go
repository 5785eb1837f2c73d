// Package api holds the JSON response helpers shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes body as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError writes {"error": msg} with the given status code.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// PathID parses the {id} path value of r.
func PathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Category is the serialized form of a category.
type Category struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Created     time.Time `json:"created"`
}

// Item is the serialized form of an item. Price is the stored text as is;
// PriceValue is null when that text is not a number.
type Item struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price"`
	PriceValue  *float64  `json:"price_value"`
	Created     time.Time `json:"created"`
}

// User is the serialized form of a user. Profile is true for administrators.
type User struct {
	ID      uint      `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Picture *string   `json:"picture"`
	Profile bool      `json:"profile"`
	Created time.Time `json:"created"`
}
