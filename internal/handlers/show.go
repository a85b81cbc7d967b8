package handlers

import (
	"context"
	"net/http"

	"github.com/vshelest/bookfinder/internal/models"
)

// sampleSize is how many curated titles the landing page shows.
const sampleSize = 10

// BookSampler defines the interface that the catalog service must implement.
type BookSampler interface {
	Sample(ctx context.Context, n int) []models.Book
}

// ShowBooksResponse carries the landing-page book sample.
// swagger:model ShowBooksResponse
type ShowBooksResponse struct {
	// Sampled books, best effort
	Books []models.Book `json:"books"`

	// Human-readable status
	// example: Random books for landing page
	Message string `json:"message"`
}

// NewShowBooksHandler returns an HTTP handler for the landing-page sample.
// Individual catalog failures are absorbed upstream, so this endpoint always
// answers with a full list.
// @Summary Landing-page books
// @Description Returns a random sample of curated titles resolved against the catalog. Lookups that fail are replaced with placeholder entries.
// @Tags books
// @Produce json
// @Success 200 {object} handlers.ShowBooksResponse "Sampled books"
// @Router /books/show [get]
func NewShowBooksHandler(svc BookSampler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books := svc.Sample(r.Context(), sampleSize)

		writeJSON(w, http.StatusOK, ShowBooksResponse{
			Books:   books,
			Message: "Random books for landing page",
		})
	}
}
