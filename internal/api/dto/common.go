package dto

// MessageResponse is the body of every successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}
