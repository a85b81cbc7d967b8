package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

// Registerer defines the interface that the auth service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username, 3-20 characters, letters/digits/underscores
	// example: alice1
	Username string `json:"username"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`

	// Password, at least 8 characters with lower, upper and digit
	// example: Secret12
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username and email. The password is hashed before storing. Returns the public user view and a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Registration request"
// @Success 201 {object} handlers.AuthResponse "User registered"
// @Failure 400 {object} models.ErrorResponse "Validation failure or duplicate username/email"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			var vErr *services.ValidationError
			switch {
			case errors.As(err, &vErr):
				writeError(w, http.StatusBadRequest, "Validation failed", vErr.Fields...)
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, "User already exists",
					models.FieldError{Field: "username", Message: "Username already exists"})
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, "User already exists",
					models.FieldError{Field: "email", Message: "Email already exists"})
			default:
				logger.Log.Errorw("signup failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			User:  models.NewUserResponse(user),
			Token: token,
		})
	}
}
