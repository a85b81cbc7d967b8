// Package facades wraps external services behind narrow interfaces so the
// rest of the application only sees normalized domain shapes.
package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
)

// Defaults substituted when the catalog omits a field.
const (
	UnknownAuthor = "Unknown Author"
	DefaultYear   = 2024
)

const coverURLFormat = "https://covers.openlibrary.org/b/id/%d-M.jpg"

// searchFields is the field projection requested from the catalog.
const searchFields = "title,author_name,first_publish_year,cover_i,key"

// OpenLibraryFacade queries the OpenLibrary search API and maps its
// documents into the normalized book shape.
type OpenLibraryFacade struct {
	baseURL string
	client  *http.Client
}

// NewOpenLibraryFacade creates a facade for the catalog at baseURL using the
// provided HTTP client.
func NewOpenLibraryFacade(baseURL string, client *http.Client) *OpenLibraryFacade {
	return &OpenLibraryFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// searchResponse mirrors the subset of the OpenLibrary search.json payload
// this service reads.
type searchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int64    `json:"cover_i"`
}

// Search runs a free-text query against the catalog and returns the
// normalized results along with the catalog's total match count.
func (f *OpenLibraryFacade) Search(ctx context.Context, query string, limit int) ([]models.Book, int, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", searchFields)

	reqURL := fmt.Sprintf("%s/search.json?%s", f.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog request failed", "url", reqURL, "error", err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("catalog returned unexpected status", "url", reqURL, "status", resp.StatusCode)
		return nil, 0, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("catalog response malformed", "url", reqURL, "error", err)
		return nil, 0, err
	}

	books := make([]models.Book, 0, len(payload.Docs))
	for _, doc := range payload.Docs {
		books = append(books, mapDoc(doc))
	}

	return books, payload.NumFound, nil
}

// mapDoc normalizes a catalog document, filling in the documented defaults
// for missing authors, years and covers.
func mapDoc(doc searchDoc) models.Book {
	book := models.Book{
		ID:     doc.Key,
		Title:  doc.Title,
		Author: UnknownAuthor,
		Year:   DefaultYear,
	}

	if len(doc.AuthorName) > 0 {
		book.Author = strings.Join(doc.AuthorName, ", ")
	}
	if doc.FirstPublishYear != 0 {
		book.Year = doc.FirstPublishYear
	}
	if doc.CoverID != 0 {
		cover := fmt.Sprintf(coverURLFormat, doc.CoverID)
		book.Cover = &cover
	}

	return book
}
