package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vshelest/bookfinder/internal/middlewares"
	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

func TestAddFavoriteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	cover := "https://covers.openlibrary.org/b/id/7222246-M.jpg"
	saved := &models.FavoriteBookDB{
		FavoriteID: uuid.New(),
		UserID:     userID,
		BookID:     "/works/OL1W",
		Title:      "1984",
		Author:     "George Orwell",
		Year:       1949,
		Cover:      &cover,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	validBody := `{"bookId":"/works/OL1W","title":"1984","author":"George Orwell","year":1949,"cover":"` + cover + `"}`

	tests := []struct {
		name       string
		authorized bool
		body       string
		setup      func(svc *MockFavoritesAdder)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success",
			authorized: true,
			body:       validBody,
			setup: func(svc *MockFavoritesAdder) {
				svc.EXPECT().
					Add(gomock.Any(), userID, "/works/OL1W", "1984", "George Orwell", 1949, &cover).
					Return(saved, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unauthorized",
			authorized: false,
			body:       validBody,
			setup:      func(svc *MockFavoritesAdder) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Unauthorized",
		},
		{
			name:       "malformed body",
			authorized: true,
			body:       `{"bookId":`,
			setup:      func(svc *MockFavoritesAdder) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "missing fields",
			authorized: true,
			body:       `{"bookId":"/works/OL1W"}`,
			setup:      func(svc *MockFavoritesAdder) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation failed",
		},
		{
			name:       "already favorited",
			authorized: true,
			body:       validBody,
			setup: func(svc *MockFavoritesAdder) {
				svc.EXPECT().
					Add(gomock.Any(), userID, "/works/OL1W", "1984", "George Orwell", 1949, &cover).
					Return(nil, services.ErrFavoriteExists)
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Book is already in your favorites",
		},
		{
			name:       "service failure",
			authorized: true,
			body:       validBody,
			setup: func(svc *MockFavoritesAdder) {
				svc.EXPECT().
					Add(gomock.Any(), userID, "/works/OL1W", "1984", "George Orwell", 1949, &cover).
					Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to add book to favorites. Please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockFavoritesAdder(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/books/favorites", strings.NewReader(tt.body))
			if tt.authorized {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			w := httptest.NewRecorder()

			NewAddFavoriteHandler(svc)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp AddFavoriteResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Book added to favorites successfully", resp.Message)
				assert.Equal(t, "/works/OL1W", resp.Book.BookID)
				return
			}

			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantMsg, errResp.Message)
		})
	}
}

func TestAddFavoriteHandler_DuplicateAfterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	saved := &models.FavoriteBookDB{
		FavoriteID: uuid.New(),
		UserID:     userID,
		BookID:     "/works/OL1W",
		Title:      "1984",
		Author:     "George Orwell",
		Year:       1949,
	}

	svc := NewMockFavoritesAdder(ctrl)
	gomock.InOrder(
		svc.EXPECT().
			Add(gomock.Any(), userID, "/works/OL1W", "1984", "George Orwell", 1949, nil).
			Return(saved, nil),
		svc.EXPECT().
			Add(gomock.Any(), userID, "/works/OL1W", "1984", "George Orwell", 1949, nil).
			Return(nil, services.ErrFavoriteExists),
	)

	handler := NewAddFavoriteHandler(svc)
	body := `{"bookId":"/works/OL1W","title":"1984","author":"George Orwell","year":1949}`

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/books/favorites", strings.NewReader(body))
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	assert.Equal(t, http.StatusCreated, do().Code)

	second := do()
	assert.Equal(t, http.StatusBadRequest, second.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &errResp))
	assert.Equal(t, "Book is already in your favorites", errResp.Message)
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "bookId", errResp.Errors[0].Field)
}
