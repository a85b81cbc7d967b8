package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

func TestRemoveFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	removed := &models.FavoriteBookDB{
		FavoriteID: uuid.New(),
		UserID:     userID,
		BookID:     "/works/OL1W",
		Title:      "1984",
		Author:     "George Orwell",
		Year:       1949,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	tests := []struct {
		name       string
		target     string
		authorized bool
		setup      func(svc *MockFavoritesRemover)
		wantStatus int
		wantMsg    string
	}{
		{
			// Catalog IDs contain slashes, so the client escapes them.
			name:       "success",
			target:     "/api/books/favorites/%2Fworks%2FOL1W",
			authorized: true,
			setup: func(svc *MockFavoritesRemover) {
				svc.EXPECT().
					Remove(gomock.Any(), userID, "/works/OL1W").
					Return(removed, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthorized",
			target:     "/api/books/favorites/%2Fworks%2FOL1W",
			authorized: false,
			setup:      func(svc *MockFavoritesRemover) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized",
		},
		{
			name:       "not in favorites",
			target:     "/api/books/favorites/%2Fworks%2FOL9W",
			authorized: true,
			setup: func(svc *MockFavoritesRemover) {
				svc.EXPECT().
					Remove(gomock.Any(), userID, "/works/OL9W").
					Return(nil, services.ErrFavoriteNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    "Book not found in favorites",
		},
		{
			name:       "service failure",
			target:     "/api/books/favorites/%2Fworks%2FOL1W",
			authorized: true,
			setup: func(svc *MockFavoritesRemover) {
				svc.EXPECT().
					Remove(gomock.Any(), userID, "/works/OL1W").
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to remove book from favorites. Please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockFavoritesRemover(ctrl)
			tt.setup(svc)

			router := chi.NewRouter()
			router.Delete("/api/books/favorites/{bookId}", NewRemoveFavoriteHandler(svc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.authorized {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp RemoveFavoriteResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Book removed from favorites successfully", resp.Message)
				assert.Equal(t, "/works/OL1W", resp.RemovedBook.BookID)
				assert.Equal(t, "1984", resp.RemovedBook.Title)
				return
			}

			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantMsg, errResp.Message)
		})
	}
}
