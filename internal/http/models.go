package http

import "time"

// Common Response Models

// FieldError is one rejected request field or calendar rule
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Week    int    `json:"week,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response
// @Description	Error response with details
type ErrorResponse struct {
	Error      string       `json:"error"`
	Message    string       `json:"message,omitempty"`
	Code       int          `json:"code"`
	Reason     string       `json:"reason,omitempty"`
	EligibleAt *time.Time   `json:"eligible_at,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// HealthResponse represents a health check response
// @Description	Health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}
