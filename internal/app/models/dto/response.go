package dto

import "time"

// APIResponse is the standard success envelope for API endpoints. The
// rendering layer receives the view-model under Data untouched.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps a view-model in the standard envelope.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a simple message-only success response
type SuccessResponse struct {
	Message string `json:"message"`
}
