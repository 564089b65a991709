package api

// Common request/response structures

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"access_token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// Status is optional and defaults to "pending" when omitted.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Status      string `json:"status"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// MessageResponse carries a human-readable success message.
type MessageResponse struct {
	Message string `json:"message"`
}
