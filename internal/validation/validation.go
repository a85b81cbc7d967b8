// Package validation checks auth input against the field rules enforced
// at the API boundary, before any business logic runs.
package validation

import (
	"regexp"

	"github.com/vshelest/bookfinder/internal/models"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	digitRe    = regexp.MustCompile(`\d`)
)

// ValidateRegistration checks registration input. An empty slice means the
// input is acceptable.
func ValidateRegistration(username, email, password string) []models.FieldError {
	var errs []models.FieldError

	switch {
	case len(username) < 3:
		errs = append(errs, models.FieldError{Field: "username", Message: "Username must be at least 3 characters"})
	case len(username) > 20:
		errs = append(errs, models.FieldError{Field: "username", Message: "Username must be less than 20 characters"})
	case !usernameRe.MatchString(username):
		errs = append(errs, models.FieldError{Field: "username", Message: "Username can only contain letters, numbers, and underscores"})
	}

	switch {
	case email == "":
		errs = append(errs, models.FieldError{Field: "email", Message: "Email is required"})
	case !emailRe.MatchString(email):
		errs = append(errs, models.FieldError{Field: "email", Message: "Invalid email address"})
	}

	switch {
	case len(password) < 8:
		errs = append(errs, models.FieldError{Field: "password", Message: "Password must be at least 8 characters"})
	case !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !digitRe.MatchString(password):
		errs = append(errs, models.FieldError{Field: "password", Message: "Password must contain at least one lowercase letter, one uppercase letter, and one number"})
	}

	return errs
}

// ValidateLogin checks that login input is present.
func ValidateLogin(username, password string) []models.FieldError {
	var errs []models.FieldError

	if username == "" {
		errs = append(errs, models.FieldError{Field: "username", Message: "Username is required"})
	}
	if password == "" {
		errs = append(errs, models.FieldError{Field: "password", Message: "Password is required"})
	}

	return errs
}
