package entity

import "github.com/google/uuid"

// Category represents a coarse event label for data transfer between layers.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
