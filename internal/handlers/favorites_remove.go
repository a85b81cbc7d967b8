package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

// FavoritesRemover defines the interface that the favorites service must implement.
type FavoritesRemover interface {
	Remove(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error)
}

// RemoveFavoriteResponse confirms the deleted favorite.
// swagger:model RemoveFavoriteResponse
type RemoveFavoriteResponse struct {
	// Human-readable status
	// example: Book removed from favorites successfully
	Message string `json:"message"`

	// Summary of the removed record
	RemovedBook models.BookSummary `json:"removedBook"`
}

// NewRemoveFavoriteHandler returns an HTTP handler that unfavorites a book.
// Catalog identifiers contain slashes, so clients send them percent-encoded.
// @Summary Remove a book from favorites
// @Description Deletes the authenticated user's favorite identified by the percent-encoded catalog book ID.
// @Tags favorites
// @Produce json
// @Param bookId path string true "Percent-encoded catalog book ID"
// @Success 200 {object} handlers.RemoveFavoriteResponse "Favorite removed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Not in favorites"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /books/favorites/{bookId} [delete]
// @Security BearerAuth
func NewRemoveFavoriteHandler(svc FavoritesRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		bookID := chi.URLParam(r, "bookId")
		if decoded, err := url.PathUnescape(bookID); err == nil {
			bookID = decoded
		}
		if bookID == "" {
			writeError(w, http.StatusBadRequest, "Book ID is required",
				models.FieldError{Field: "bookId", Message: "Book ID is required"})
			return
		}

		removed, err := svc.Remove(r.Context(), userID, bookID)
		if err != nil {
			if errors.Is(err, services.ErrFavoriteNotFound) {
				writeError(w, http.StatusNotFound, "Book not found in favorites",
					models.FieldError{Field: "bookId", Message: "This book is not in your favorites"})
				return
			}
			logger.Log.Errorw("failed to remove favorite", "user_id", userID, "book_id", bookID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to remove book from favorites. Please try again later")
			return
		}

		writeJSON(w, http.StatusOK, RemoveFavoriteResponse{
			Message:     "Book removed from favorites successfully",
			RemovedBook: models.NewBookSummary(removed),
		})
	}
}
