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

	"github.com/vshelest/bookfinder/internal/models"
	"github.com/vshelest/bookfinder/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{
		UserID:    uuid.New(),
		Username:  "alice1",
		Email:     "alice@example.com",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name       string
		body       string
		setup      func(svc *MockLoginer)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success with username",
			body: `{"username":"alice1","password":"Secret12"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice1", "Secret12").
					Return(user, "signed.token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "success with email",
			body: `{"username":"alice@example.com","password":"Secret12"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "Secret12").
					Return(user, "signed.token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed body",
			body:       `{"username"`,
			setup:      func(svc *MockLoginer) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid request body",
		},
		{
			name:       "missing credentials",
			body:       `{"username":"","password":""}`,
			setup:      func(svc *MockLoginer) {},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation failed",
		},
		{
			name: "invalid credentials",
			body: `{"username":"alice1","password":"WrongPass1"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice1", "WrongPass1").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name: "service failure",
			body: `{"username":"alice1","password":"Secret12"}`,
			setup: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "alice1", "Secret12").
					Return(nil, "", errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockLoginer(ctrl)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			NewLoginHandler(svc)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp AuthResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "signed.token", resp.Token)
				assert.Equal(t, "alice1", resp.User.Username)
				return
			}

			var errResp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantMsg, errResp.Message)
		})
	}
}
