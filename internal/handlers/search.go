package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vshelest/bookfinder/internal/models"
)

// BookSearcher defines the interface that the catalog service must implement.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]models.Book, int, error)
}

// SearchBooksResponse carries normalized catalog search results.
// swagger:model SearchBooksResponse
type SearchBooksResponse struct {
	// Normalized results
	Books []models.Book `json:"books"`

	// Total matches reported by the catalog
	// example: 137
	Total int `json:"total"`

	// Echoed query
	// example: orwell
	Query string `json:"query"`

	// Human-readable status
	// example: Found 20 books for "orwell"
	Message string `json:"message"`
}

// NewSearchBooksHandler returns an HTTP handler for catalog search.
// @Summary Search the book catalog
// @Description Forwards a free-text query to the external catalog and returns normalized results.
// @Tags books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} handlers.SearchBooksResponse "Search results"
// @Failure 400 {object} models.ErrorResponse "Missing query"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Catalog unavailable"
// @Router /books/search [get]
// @Security BearerAuth
func NewSearchBooksHandler(svc BookSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			writeError(w, http.StatusBadRequest, "Query parameter is required",
				models.FieldError{Field: "q", Message: "Please provide a search query"})
			return
		}

		books, total, err := svc.Search(r.Context(), query)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to search books. Please try again later")
			return
		}

		writeJSON(w, http.StatusOK, SearchBooksResponse{
			Books:   books,
			Total:   total,
			Query:   query,
			Message: fmt.Sprintf("Found %d books for %q", len(books), query),
		})
	}
}
