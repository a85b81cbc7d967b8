package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vshelest/bookfinder/internal/validation"
)

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		email      string
		password   string
		wantFields []string
	}{
		{
			name:     "valid input",
			username: "alice1",
			email:    "a@x.com",
			password: "Secret12",
		},
		{
			name:       "username too short",
			username:   "ab",
			email:      "a@x.com",
			password:   "Secret12",
			wantFields: []string{"username"},
		},
		{
			name:       "username too long",
			username:   "abcdefghijklmnopqrstu",
			email:      "a@x.com",
			password:   "Secret12",
			wantFields: []string{"username"},
		},
		{
			name:       "username with illegal characters",
			username:   "alice-1",
			email:      "a@x.com",
			password:   "Secret12",
			wantFields: []string{"username"},
		},
		{
			name:       "missing email",
			username:   "alice1",
			email:      "",
			password:   "Secret12",
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			username:   "alice1",
			email:      "not-an-email",
			password:   "Secret12",
			wantFields: []string{"email"},
		},
		{
			name:       "password too short",
			username:   "alice1",
			email:      "a@x.com",
			password:   "Sec1",
			wantFields: []string{"password"},
		},
		{
			name:       "password without digit",
			username:   "alice1",
			email:      "a@x.com",
			password:   "Secretss",
			wantFields: []string{"password"},
		},
		{
			name:       "password without uppercase",
			username:   "alice1",
			email:      "a@x.com",
			password:   "secret12",
			wantFields: []string{"password"},
		},
		{
			name:       "everything wrong",
			username:   "a",
			email:      "bad",
			password:   "short",
			wantFields: []string{"username", "email", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateRegistration(tt.username, tt.email, tt.password)

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
				assert.NotEmpty(t, e.Message)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Empty(t, validation.ValidateLogin("alice1", "Secret12"))

	errs := validation.ValidateLogin("", "")
	assert.Len(t, errs, 2)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)
}
