package models

// FieldError points a client at the input field that caused a failure.
// swagger:model FieldError
type FieldError struct {
	// Offending field name
	// example: username
	Field string `json:"field"`

	// Human-readable reason
	// example: Username must be at least 3 characters
	Message string `json:"message"`
}

// ErrorResponse is the error body shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Summary message
	// example: Validation failed
	Message string `json:"message"`

	// Per-field details, omitted when not applicable
	Errors []FieldError `json:"errors,omitempty"`
}
