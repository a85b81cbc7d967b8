package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
)

// FavoritesChecker defines the interface that the favorites service must implement.
type FavoritesChecker interface {
	IsFavorited(ctx context.Context, userID uuid.UUID, bookID string) (bool, *models.FavoriteBookDB, error)
}

// CheckFavoriteResponse reports whether a book is favorited by the caller.
// swagger:model CheckFavoriteResponse
type CheckFavoriteResponse struct {
	// Whether the book is in the caller's favorites
	IsFavorited bool `json:"isFavorited"`

	// Summary of the favorite, present only when favorited
	Book *models.BookSummary `json:"book,omitempty"`
}

// NewCheckFavoriteHandler returns an HTTP handler for favorite membership checks.
// @Summary Check favorite status
// @Description Reports whether the book identified by the percent-encoded catalog ID is in the authenticated user's favorites.
// @Tags favorites
// @Produce json
// @Param bookId path string true "Percent-encoded catalog book ID"
// @Success 200 {object} handlers.CheckFavoriteResponse "Favorite status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /books/favorites/check/{bookId} [get]
// @Security BearerAuth
func NewCheckFavoriteHandler(svc FavoritesChecker) http.HandlerFunc {
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

		favorited, favorite, err := svc.IsFavorited(r.Context(), userID, bookID)
		if err != nil {
			logger.Log.Errorw("failed to check favorite", "user_id", userID, "book_id", bookID, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to check favorite status. Please try again later")
			return
		}

		resp := CheckFavoriteResponse{IsFavorited: favorited}
		if favorite != nil {
			summary := models.NewBookSummary(favorite)
			resp.Book = &summary
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
