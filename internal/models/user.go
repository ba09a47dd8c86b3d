package models

import "github.com/google/uuid"

// User is built for every accepted CreateUser request. It is never stored.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
