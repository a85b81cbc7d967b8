package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
	"github.com/vshelest/bookfinder/internal/validation"
)

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, usernameOrEmail, password string) (*models.UserDB, string, error)
}

// LoginRequest represents the JSON body for user login. The username field
// also accepts the account email.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username or email
	// example: alice1
	Username string `json:"username"`

	// Password
	// example: Secret12
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by username or email and returns the public user view and a fresh bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.AuthResponse "Authenticated"
// @Failure 400 {object} models.ErrorResponse "Missing credentials"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if fields := validation.ValidateLogin(req.Username, req.Password); len(fields) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", fields...)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			// Unknown user and wrong password are indistinguishable on purpose.
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid credentials",
					models.FieldError{Field: "username", Message: "Username or password is incorrect"})
				return
			}
			logger.Log.Errorw("login failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			User:  models.NewUserResponse(user),
			Token: token,
		})
	}
}
