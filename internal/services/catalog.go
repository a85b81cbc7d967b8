package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/vshelest/bookfinder/internal/facades"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
)

// ErrCatalogUnavailable is returned when the external catalog cannot serve a search.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// SearchLimit is the number of results requested from the catalog per search.
const SearchLimit = 20

// landingTitles is the curated list the landing page samples from.
var landingTitles = []string{
	"The Great Gatsby",
	"To Kill a Mockingbird",
	"1984",
	"Pride and Prejudice",
	"The Catcher in the Rye",
	"Lord of the Flies",
	"Animal Farm",
	"The Hobbit",
	"Brave New World",
	"The Alchemist",
	"The Little Prince",
	"The Book Thief",
	"The Kite Runner",
	"Life of Pi",
	"The Road",
	"The Help",
	"Gone Girl",
	"The Fault in Our Stars",
	"The Hunger Games",
	"Harry Potter",
}

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=services

// CatalogSearcher queries the external catalog.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Book, int, error)
}

// BookCache caches per-title catalog lookups.
type BookCache interface {
	GetBook(ctx context.Context, title string) (*models.Book, error)
	SetBook(ctx context.Context, title string, book models.Book) error
}

// CatalogService proxies the external book catalog.
type CatalogService struct {
	searcher CatalogSearcher
	cache    BookCache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(searcher CatalogSearcher, cache BookCache) *CatalogService {
	return &CatalogService{
		searcher: searcher,
		cache:    cache,
	}
}

// Sample picks n random curated titles and resolves each against the catalog.
// A title whose lookup fails is replaced with a placeholder entry, so the
// result always has n items and the call never fails wholesale.
func (svc *CatalogService) Sample(ctx context.Context, n int) []models.Book {
	if n > len(landingTitles) {
		n = len(landingTitles)
	}

	shuffled := make([]string, len(landingTitles))
	copy(shuffled, landingTitles)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	books := make([]models.Book, 0, n)
	for i, title := range shuffled[:n] {
		books = append(books, svc.lookupTitle(ctx, i, title))
	}

	return books
}

// lookupTitle resolves one curated title: cache, then catalog, then placeholder.
func (svc *CatalogService) lookupTitle(ctx context.Context, i int, title string) models.Book {
	if cached, err := svc.cache.GetBook(ctx, title); err == nil && cached != nil {
		return *cached
	}

	results, _, err := svc.searcher.Search(ctx, title, 1)
	if err != nil || len(results) == 0 {
		logger.Log.Warnw("catalog lookup failed, using placeholder", "title", title, "err", err)
		return models.Book{
			ID:     fmt.Sprintf("fallback-%d", i),
			Title:  title,
			Author: facades.UnknownAuthor,
			Year:   facades.DefaultYear,
		}
	}

	book := results[0]
	if err := svc.cache.SetBook(ctx, title, book); err != nil {
		logger.Log.Warnw("failed to cache catalog lookup", "title", title, "err", err)
	}

	return book
}

// Search forwards a free-text query to the catalog. Upstream failures are
// collapsed to ErrCatalogUnavailable; the caller-facing path has no per-item
// recovery.
func (svc *CatalogService) Search(ctx context.Context, query string) ([]models.Book, int, error) {
	books, total, err := svc.searcher.Search(ctx, query, SearchLimit)
	if err != nil {
		logger.Log.Errorw("catalog search failed", "query", query, "err", err)
		return nil, 0, ErrCatalogUnavailable
	}

	return books, total, nil
}
