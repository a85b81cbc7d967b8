package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenLibraryFacade_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "the hobbit", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, searchFields, r.URL.Query().Get("fields"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"numFound": 42,
			"docs": [
				{
					"key": "/works/OL262758W",
					"title": "The Hobbit",
					"author_name": ["J.R.R. Tolkien"],
					"first_publish_year": 1937,
					"cover_i": 14625765
				},
				{
					"key": "/works/OL99W",
					"title": "The Hobbit Companion"
				}
			]
		}`))
	}))
	defer srv.Close()

	facade := NewOpenLibraryFacade(srv.URL, srv.Client())

	books, total, err := facade.Search(context.Background(), "the hobbit", 2)
	assert.NoError(t, err)
	assert.Equal(t, 42, total)
	assert.Len(t, books, 2)

	assert.Equal(t, "/works/OL262758W", books[0].ID)
	assert.Equal(t, "The Hobbit", books[0].Title)
	assert.Equal(t, "J.R.R. Tolkien", books[0].Author)
	assert.Equal(t, 1937, books[0].Year)
	assert.NotNil(t, books[0].Cover)
	assert.Equal(t, "https://covers.openlibrary.org/b/id/14625765-M.jpg", *books[0].Cover)

	assert.Equal(t, UnknownAuthor, books[1].Author)
	assert.Equal(t, DefaultYear, books[1].Year)
	assert.Nil(t, books[1].Cover)
}

func TestOpenLibraryFacade_Search_MultipleAuthors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"numFound": 1, "docs": [{"key": "/works/OL1W", "title": "Good Omens", "author_name": ["Terry Pratchett", "Neil Gaiman"]}]}`))
	}))
	defer srv.Close()

	facade := NewOpenLibraryFacade(srv.URL, srv.Client())

	books, _, err := facade.Search(context.Background(), "good omens", 1)
	assert.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, "Terry Pratchett, Neil Gaiman", books[0].Author)
}

func TestOpenLibraryFacade_Search_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	facade := NewOpenLibraryFacade(srv.URL, srv.Client())

	books, total, err := facade.Search(context.Background(), "anything", 1)
	assert.Error(t, err)
	assert.Zero(t, total)
	assert.Nil(t, books)
}

func TestOpenLibraryFacade_Search_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	facade := NewOpenLibraryFacade(srv.URL, http.DefaultClient)

	_, _, err := facade.Search(context.Background(), "anything", 1)
	assert.Error(t, err)
}
