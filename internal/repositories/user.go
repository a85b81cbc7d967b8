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

// Duplicate-key errors surfaced by the user repository. The unique indexes
// on users.username and users.email are what reject the losing writer when
// two registrations race.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

const pgUniqueViolation = "23505"

// UserReadRepository provides read access to user records.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given identifier, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("user lookup by id failed",
			"query", strings.Join(strings.Fields(query), " "),
			"user_id", userID,
			"error", err,
		)
		return nil, err
	}

	return &user, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetByEmail returns the user with the given email, compared case-insensitively,
// or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = LOWER($1)
	`
	return r.getOne(ctx, query, email)
}

// GetByUsernameOrEmail resolves the login identifier: a record matches when
// its username equals the identifier exactly or its email equals the
// identifier case-folded.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1 OR email = LOWER($1)
		LIMIT 1
	`
	return r.getOne(ctx, query, usernameOrEmail)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("user lookup failed",
			"query", strings.Join(strings.Fields(query), " "),
			"error", err,
		)
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record. The email is
// lowercased on the way in. A duplicate username or email is reported as
// ErrUsernameExists or ErrEmailExists respectively.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, LOWER($3), $4, NOW(), NOW())
		RETURNING user_id, username, email, password_hash, created_at, updated_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, uuid.New(), username, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, ErrEmailExists
			}
			return nil, ErrUsernameExists
		}
		logger.Log.Errorw("user insert failed",
			"query", strings.Join(strings.Fields(query), " "),
			"username", username,
			"error", err,
		)
		return nil, err
	}

	return &user, nil
}
