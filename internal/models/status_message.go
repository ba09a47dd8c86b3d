package models

// StatusMessage is the JSON body of every POST /users response.
// swagger:model StatusMessage
type StatusMessage struct {
	// Application-level status id, not the HTTP status code
	// example: 1
	ID uint64 `json:"id"`

	// Human readable description
	// example: alice created
	Description string `json:"description"`
}
