// Package handlers contains one HTTP handler per API endpoint. Each handler
// declares the narrow service interface it depends on.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vshelest/bookfinder/internal/models"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers
//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers
//go:generate mockgen -source=show.go -destination=show_mock.go -package=handlers
//go:generate mockgen -source=search.go -destination=search_mock.go -package=handlers
//go:generate mockgen -source=favorites_list.go -destination=favorites_list_mock.go -package=handlers
//go:generate mockgen -source=favorites_add.go -destination=favorites_add_mock.go -package=handlers
//go:generate mockgen -source=favorites_remove.go -destination=favorites_remove_mock.go -package=handlers
//go:generate mockgen -source=favorites_check.go -destination=favorites_check_mock.go -package=handlers

// writeJSON writes v as the JSON response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the shared error body.
func writeError(w http.ResponseWriter, status int, message string, fields ...models.FieldError) {
	writeJSON(w, status, models.ErrorResponse{Message: message, Errors: fields})
}

// AuthResponse is returned by signup and login.
// swagger:model AuthResponse
type AuthResponse struct {
	// Public user view
	User models.UserResponse `json:"user"`

	// Signed bearer token, valid for 7 days
	Token string `json:"token"`
}
