package dto

// GenerateRequest carries the prompt forwarded to the model endpoint.
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// SaveResponseRequest stores a generated advice text for a user.
type SaveResponseRequest struct {
	Response string `json:"response" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
}

// CreateUserRequest registers a new account.
type CreateUserRequest struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
}
