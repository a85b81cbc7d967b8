package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
)

// FavoritesLister defines the interface that the favorites service must implement.
type FavoritesLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteBookDB, error)
}

// FavoritesResponse carries the caller's favorite books.
// swagger:model FavoritesResponse
type FavoritesResponse struct {
	// Favorites owned by the caller, newest first
	Books []models.FavoriteBookResponse `json:"books"`

	// Human-readable status
	// example: Found 2 favorite books
	Message string `json:"message"`
}

// NewListFavoritesHandler returns an HTTP handler listing the caller's favorites.
// @Summary List favorite books
// @Description Returns all books favorited by the authenticated user, newest first.
// @Tags favorites
// @Produce json
// @Success 200 {object} handlers.FavoritesResponse "Favorite books"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /books/favorites [get]
// @Security BearerAuth
func NewListFavoritesHandler(svc FavoritesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		favorites, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list favorites", "user_id", userID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch favorite books. Please try again later")
			return
		}

		books := make([]models.FavoriteBookResponse, 0, len(favorites))
		for i := range favorites {
			books = append(books, models.NewFavoriteBookResponse(&favorites[i]))
		}

		writeJSON(w, http.StatusOK, FavoritesResponse{
			Books:   books,
			Message: fmt.Sprintf("Found %d favorite books", len(books)),
		})
	}
}
