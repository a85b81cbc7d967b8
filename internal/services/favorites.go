package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/vshelest/bookfinder/internal/logger"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/repositories"
)

// Error variables
var (
	ErrFavoriteExists   = errors.New("book is already in favorites")
	ErrFavoriteNotFound = errors.New("book not found in favorites")
)

//go:generate mockgen -source=favorites.go -destination=favorites_mock.go -package=services

// FavoriteReader defines read-only operations for favorite books.
type FavoriteReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteBookDB, error)
	GetByUserIDAndBookID(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error)
}

// FavoriteWriter defines write operations for favorite books.
type FavoriteWriter interface {
	Save(ctx context.Context, userID uuid.UUID, bookID, title, author string, year int, cover *string) (*models.FavoriteBookDB, error)
	Delete(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FavoritesService handles per-user favorite books. Every operation is
// scoped by the caller identity resolved from the verified token.
type FavoritesService struct {
	reader      FavoriteReader
	writer      FavoriteWriter
	kafkaWriter KafkaWriter
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(reader FavoriteReader, writer FavoriteWriter, kafkaWriter KafkaWriter) *FavoritesService {
	return &FavoritesService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a favorites activity event to Kafka. Publishing is
// best effort and never fails the request.
func (s *FavoritesService) publishEvent(ctx context.Context, action string, book *models.FavoriteBookDB) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.FavoriteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    book.UserID.String(),
		BookID:    book.BookID,
		Title:     book.Title,
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal favorite event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish favorite event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("favorite event published", "event_id", event.EventID, "action", action)
	}
}

// List returns all favorites owned by the user, newest first.
func (s *FavoritesService) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteBookDB, error) {
	books, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}
	return books, nil
}

// Add favorites a catalog book for the user. Adding a book that is already
// favorited returns ErrFavoriteExists.
func (s *FavoritesService) Add(ctx context.Context, userID uuid.UUID, bookID, title, author string, year int, cover *string) (*models.FavoriteBookDB, error) {
	book, err := s.writer.Save(ctx, userID, bookID, title, author, year, cover)
	if err != nil {
		if errors.Is(err, repositories.ErrFavoriteExists) {
			return nil, ErrFavoriteExists
		}
		logger.Log.Errorw("failed to add favorite", "user_id", userID, "book_id", bookID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.FavoriteAdded, book)

	return book, nil
}

// Remove deletes the user's favorite and returns the removed record.
func (s *FavoritesService) Remove(ctx context.Context, userID uuid.UUID, bookID string) (*models.FavoriteBookDB, error) {
	book, err := s.writer.Delete(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return nil, ErrFavoriteNotFound
		}
		logger.Log.Errorw("failed to remove favorite", "user_id", userID, "book_id", bookID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, models.FavoriteRemoved, book)

	return book, nil
}

// IsFavorited reports whether the user has favorited the book, along with
// the record when present.
func (s *FavoritesService) IsFavorited(ctx context.Context, userID uuid.UUID, bookID string) (bool, *models.FavoriteBookDB, error) {
	book, err := s.reader.GetByUserIDAndBookID(ctx, userID, bookID)
	if err != nil {
		logger.Log.Errorw("failed to check favorite", "user_id", userID, "book_id", bookID, "error", err)
		return false, nil, err
	}
	return book != nil, book, nil
}
