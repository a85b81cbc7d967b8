package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/repositories"
	"github.com/vshelest/bookfinder/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError carries the per-field failures of a rejected registration.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, usernameOrEmail string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating bearer tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register validates the input, persists a new user with a hashed password
// and returns the stored record along with a fresh token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, string, error) {
	if fields := validation.ValidateRegistration(username, email, password); len(fields) > 0 {
		return nil, "", &ValidationError{Fields: fields}
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", username, "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameExists
	}

	existing, err = svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", email, "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		// The unique indexes catch registrations racing past the pre-checks.
		switch {
		case errors.Is(err, repositories.ErrUsernameExists):
			return nil, "", ErrUsernameExists
		case errors.Is(err, repositories.ErrEmailExists):
			return nil, "", ErrEmailExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.UserID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user by username or email and returns a fresh token.
// Unknown identity and wrong password both collapse to ErrInvalidCredentials
// so the response cannot be used to enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, usernameOrEmail, password string) (*models.UserDB, string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		logger.Log.Errorw("failed to get user", "login", usernameOrEmail, "err", err)
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.UserID, "err", err)
		return nil, "", err
	}

	return user, token, nil
}
