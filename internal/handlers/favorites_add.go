package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

// FavoritesAdder defines the interface that the favorites service must implement.
type FavoritesAdder interface {
	Add(ctx context.Context, userID uuid.UUID, bookID, title, author string, year int, cover *string) (*models.FavoriteBookDB, error)
}

// AddFavoriteRequest represents the JSON body for favoriting a book. The
// fields are a snapshot of the catalog entry at the time of the add.
// swagger:model AddFavoriteRequest
type AddFavoriteRequest struct {
	// External catalog identifier
	// example: /works/OL26656889W
	BookID string `json:"bookId"`

	// Title
	// example: 1984
	Title string `json:"title"`

	// Author
	// example: George Orwell
	Author string `json:"author"`

	// Publication year
	// example: 1949
	Year int `json:"year"`

	// Cover image URL
	Cover *string `json:"cover"`
}

// AddFavoriteResponse confirms the created favorite.
// swagger:model AddFavoriteResponse
type AddFavoriteResponse struct {
	// Created record
	Book models.FavoriteBookResponse `json:"book"`

	// Human-readable status
	// example: Book added to favorites successfully
	Message string `json:"message"`
}

// validateAddFavorite checks the presence of required snapshot fields.
func validateAddFavorite(req AddFavoriteRequest) []models.FieldError {
	var fields []models.FieldError
	if req.BookID == "" {
		fields = append(fields, models.FieldError{Field: "bookId", Message: "Book ID is required"})
	}
	if req.Title == "" {
		fields = append(fields, models.FieldError{Field: "title", Message: "Book title is required"})
	}
	if req.Author == "" {
		fields = append(fields, models.FieldError{Field: "author", Message: "Book author is required"})
	}
	if req.Year == 0 {
		fields = append(fields, models.FieldError{Field: "year", Message: "Book year is required"})
	}
	return fields
}

// NewAddFavoriteHandler returns an HTTP handler that favorites a book.
// @Summary Add a book to favorites
// @Description Stores a snapshot of the catalog entry as a favorite of the authenticated user. A book can be favorited at most once per user.
// @Tags favorites
// @Accept json
// @Produce json
// @Param addFavoriteRequest body handlers.AddFavoriteRequest true "Book snapshot"
// @Success 201 {object} handlers.AddFavoriteResponse "Favorite created"
// @Failure 400 {object} models.ErrorResponse "Validation failure or already favorited"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /books/favorites [post]
// @Security BearerAuth
func NewAddFavoriteHandler(svc FavoritesAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddFavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if fields := validateAddFavorite(req); len(fields) > 0 {
			writeError(w, http.StatusBadRequest, "Validation failed", fields...)
			return
		}

		book, err := svc.Add(r.Context(), userID, req.BookID, req.Title, req.Author, req.Year, req.Cover)
		if err != nil {
			if errors.Is(err, services.ErrFavoriteExists) {
				writeError(w, http.StatusBadRequest, "Book is already in your favorites",
					models.FieldError{Field: "bookId", Message: "This book is already in your favorites"})
				return
			}
			logger.Log.Errorw("failed to add favorite", "user_id", userID, "book_id", req.BookID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to add book to favorites. Please try again later")
			return
		}

		writeJSON(w, http.StatusCreated, AddFavoriteResponse{
			Book:    models.NewFavoriteBookResponse(book),
			Message: "Book added to favorites successfully",
		})
	}
}
