package entities

import "time"

// Note represents a note entity in the database
type Note struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"` // UUID
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"` // Pointer allows nil (description is optional)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
