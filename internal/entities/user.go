package entities

import "time"

// User represents a registered user in the database
type User struct {
	ID          string    `json:"id"` // UUID
	AccountID   string    `json:"account_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CountryCode string    `json:"country_code"`
	Mobile      string    `json:"mobile"`
	Email       *string   `json:"email,omitempty"` // Pointer allows nil (email is optional at registration)
	Role        string    `json:"role"`
	Status      string    `json:"status"` // "Active" or "Inactive"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName returns the user's display name used in email signatures.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// MobileNumber is the contact-discovery projection of a user: only the
// dialable number leaves the store.
type MobileNumber struct {
	CountryCode string `json:"country_code"`
	Mobile      string `json:"mobile"`
}
