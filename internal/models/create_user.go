package models

// CreateUser is the JSON body accepted by POST /users.
// Username is a pointer so that a missing or null field can be told apart
// from an empty string; empty strings are accepted.
// swagger:model CreateUser
type CreateUser struct {
	// Username
	// required: true
	// example: alice
	Username *string `json:"username" validate:"required"`
}
