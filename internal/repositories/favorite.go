package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
)

// Favorite repository errors. The unique index on (user_id, book_id)
// guarantees at most one winner when two adds for the same book race.
var (
	ErrFavoriteExists   = errors.New("favorite already exists")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteReadRepository provides read access to favorite book records.
type FavoriteReadRepository struct {
	db *sqlx.DB
}

// NewFavoriteReadRepository creates a new FavoriteReadRepository.
func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// ListByUserID returns all favorites owned by the user, newest first.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteBookDB, error) {
	const query = `
		SELECT favorite_id, user_id, book_id, title, author, year, cover, created_at, updated_at
		FROM favorite_books
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	books := []models.FavoriteBookDB{}
	if err := r.db.SelectContext(ctx, &books, query, userID); err != nil {
		logger.Log.Errorw("favorites list failed",
			"query", strings.Join(strings.Fields(query), " "),
			"user_id", userID,
			"error", err,
		)
		return nil, err
	}

	return books, nil
}

// GetByUserIDAndBookID returns the user's favorite for the given catalog
// identifier, or nil when the book is not favorited.
func (r *FavoriteReadRepository) GetByUserIDAndBookID(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error) {
	const query = `
		SELECT favorite_id, user_id, book_id, title, author, year, cover, created_at, updated_at
		FROM favorite_books
		WHERE user_id = $1 AND book_id = $2
	`

	var book models.FavoriteBookDB
	err := r.db.GetContext(ctx, &book, query, userID, bookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("favorite lookup failed",
			"query", strings.Join(strings.Fields(query), " "),
			"user_id", userID,
			"book_id", bookID,
			"error", err,
		)
		return nil, err
	}

	return &book, nil
}

// FavoriteWriteRepository provides write access to favorite book records.
type FavoriteWriteRepository struct {
	db *sqlx.DB
}

// NewFavoriteWriteRepository creates a new FavoriteWriteRepository.
func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Save inserts a new favorite and returns the stored record. A duplicate
// (user, book) pair is reported as ErrFavoriteExists.
func (r *FavoriteWriteRepository) Save(ctx context.Context, userID uuid.UUID, bookID, title, author string, year int, cover *string) (*models.FavoriteBookDB, error) {
	const query = `
		INSERT INTO favorite_books (favorite_id, user_id, book_id, title, author, year, cover, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING favorite_id, user_id, book_id, title, author, year, cover, created_at, updated_at
	`

	var book models.FavoriteBookDB
	err := r.db.GetContext(ctx, &book, query, uuid.New(), userID, bookID, title, author, year, cover)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrFavoriteExists
		}
		logger.Log.Errorw("favorite insert failed",
			"query", strings.Join(strings.Fields(query), " "),
			"user_id", userID,
			"book_id", bookID,
			"error", err,
		)
		return nil, err
	}

	return &book, nil
}

// Delete removes the user's favorite for the given catalog identifier and
// returns the removed record. ErrFavoriteNotFound is returned when the user
// has no such favorite.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error) {
	const query = `
		DELETE FROM favorite_books
		WHERE user_id = $1 AND book_id = $2
		RETURNING favorite_id, user_id, book_id, title, author, year, cover, created_at, updated_at
	`

	var book models.FavoriteBookDB
	err := r.db.GetContext(ctx, &book, query, userID, bookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFavoriteNotFound
	}
	if err != nil {
		logger.Log.Errorw("favorite delete failed",
			"query", strings.Join(strings.Fields(query), " "),
			"user_id", userID,
			"book_id", bookID,
			"error", err,
		)
		return nil, err
	}

	return &book, nil
}
