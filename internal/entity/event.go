package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents an event for data transfer between layers.
type Event struct {
	ID                   uuid.UUID  `json:"id"`
	ProfileID            uuid.UUID  `json:"profile_id"`
	Title                string     `json:"title"`
	EventDate            time.Time  `json:"event_date"`
	StartTime            *string    `json:"start_time,omitempty"`
	EndTime              *string    `json:"end_time,omitempty"`
	Venue                *string    `json:"venue,omitempty"`
	Address              *string    `json:"address,omitempty"`
	Fee                  *string    `json:"fee,omitempty"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	RegistrationLink     *string    `json:"registration_link,omitempty"`
	ContactName1         *string    `json:"contact_name1,omitempty"`
	ContactPhone1        *string    `json:"contact_phone1,omitempty"`
	ContactName2         *string    `json:"contact_name2,omitempty"`
	ContactTitle2        *string    `json:"contact_title2,omitempty"`
	Organization         *string    `json:"organization,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
	Categories           []string   `json:"categories"`
	CategoryName         string     `json:"category_name"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
