package jwt_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vshelest/bookfinder/internal/jwt"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := jwt.New("secret", 7*24*time.Hour)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_GetUserID_WrongSecret(t *testing.T) {
	issuer := jwt.New("secret", time.Hour)
	verifier := jwt.New("another-secret", time.Hour)

	token, err := issuer.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	got, err := verifier.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_GetUserID_Expired(t *testing.T) {
	j := jwt.New("secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	got, err := j.GetUserID(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	assert.Equal(t, uuid.Nil, got)
}

func TestJWT_GetUserID_Garbage(t *testing.T) {
	j := jwt.New("secret", time.Hour)

	_, err := j.GetUserID(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := jwt.New("secret", time.Hour)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{
			name:   "valid bearer header",
			header: "Bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:   "lowercase scheme",
			header: "bearer abc.def.ghi",
			want:   "abc.def.ghi",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic abc",
			wantErr: true,
		},
		{
			name:    "no token",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}
