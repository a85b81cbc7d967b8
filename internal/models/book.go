package models

import (
	"time"

	"github.com/google/uuid"
)

// Book is the normalized shape of a catalog entry returned by the
// OpenLibrary proxy endpoints.
// swagger:model Book
type Book struct {
	// External catalog identifier
	// example: /works/OL26656889W
	ID string `json:"id"`

	// Title
	// example: 1984
	Title string `json:"title"`

	// Author names joined with ", ", or "Unknown Author"
	// example: George Orwell
	Author string `json:"author"`

	// First publication year
	// example: 1949
	Year int `json:"year"`

	// Cover image URL, null when the catalog has none
	Cover *string `json:"cover"`
}

// FavoriteBookDB represents a favorite book row in the database
type FavoriteBookDB struct {
	FavoriteID uuid.UUID `json:"favorite_id" db:"favorite_id"` // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	BookID     string    `json:"book_id" db:"book_id"`         // External catalog identifier
	Title      string    `json:"title" db:"title"`             // Snapshot of the title at add time
	Author     string    `json:"author" db:"author"`           // Snapshot of the author at add time
	Year       int       `json:"year" db:"year"`               // Snapshot of the publication year
	Cover      *string   `json:"cover" db:"cover"`             // Snapshot of the cover URL, nullable
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // When the book was favorited
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// FavoriteBookResponse is the API view of a favorite book.
// swagger:model FavoriteBookResponse
type FavoriteBookResponse struct {
	// Favorite record identifier
	ID string `json:"id"`

	// Owning user identifier
	UserID string `json:"userId"`

	// External catalog identifier
	// example: /works/OL26656889W
	BookID string `json:"bookId"`

	// Title
	Title string `json:"title"`

	// Author
	Author string `json:"author"`

	// Publication year
	Year int `json:"year"`

	// Cover image URL, null when absent
	Cover *string `json:"cover"`

	// When the book was favorited, RFC 3339
	CreatedAt string `json:"createdAt"`

	// Last update timestamp, RFC 3339
	UpdatedAt string `json:"updatedAt"`
}

// NewFavoriteBookResponse builds the API view from a database record.
func NewFavoriteBookResponse(b *FavoriteBookDB) FavoriteBookResponse {
	return FavoriteBookResponse{
		ID:        b.FavoriteID.String(),
		UserID:    b.UserID.String(),
		BookID:    b.BookID,
		Title:     b.Title,
		Author:    b.Author,
		Year:      b.Year,
		Cover:     b.Cover,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// BookSummary is the short favorite view used by the removal response and
// the favorited-check endpoint.
// swagger:model BookSummary
type BookSummary struct {
	// Favorite record identifier
	ID string `json:"id"`

	// External catalog identifier
	BookID string `json:"bookId"`

	// Title
	Title string `json:"title"`

	// Author
	Author string `json:"author"`
}

// NewBookSummary builds the short view from a database record.
func NewBookSummary(b *FavoriteBookDB) BookSummary {
	return BookSummary{
		ID:     b.FavoriteID.String(),
		BookID: b.BookID,
		Title:  b.Title,
		Author: b.Author,
	}
}
