package model

import "github.com/google/uuid"

// Account is a read-only reference to one of the user's accounts.
type Account struct {
	ID   uuid.UUID
	Name string
}
