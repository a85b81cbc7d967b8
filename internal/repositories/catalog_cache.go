package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
)

// CatalogCacheRepository caches normalized catalog lookups for the curated
// landing-page titles in Redis. Free-text search results are never cached.
type CatalogCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached lookups
}

// NewCatalogCacheRepository creates a new repository instance with the given TTL.
func NewCatalogCacheRepository(client *redis.Client, expiration time.Duration) *CatalogCacheRepository {
	return &CatalogCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func catalogCacheKey(title string) string {
	return fmt.Sprintf("catalog:title:%s", strings.ToLower(title))
}

// GetBook returns the cached catalog entry for a title, or nil on a miss.
func (r *CatalogCacheRepository) GetBook(ctx context.Context, title string) (*models.Book, error) {
	key := catalogCacheKey(title)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("catalog cache read failed", "key", key, "error", err)
		return nil, err
	}

	var book models.Book
	if err := json.Unmarshal([]byte(val), &book); err != nil {
		logger.Log.Errorw("catalog cache entry malformed", "key", key, "value", val, "error", err)
		return nil, err
	}

	return &book, nil
}

// SetBook caches a catalog entry for a title with the repository TTL.
func (r *CatalogCacheRepository) SetBook(ctx context.Context, title string, book models.Book) error {
	key := catalogCacheKey(title)

	data, err := json.Marshal(book)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, key, data, r.exp).Err(); err != nil {
		logger.Log.Errorw("catalog cache write failed", "key", key, "error", err)
		return err
	}

	return nil
}
