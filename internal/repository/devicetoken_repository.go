package repository

import (
	"database/sql"
	"fmt"
)

// DeviceTokenRepository defines the interface for device-token bookkeeping
type DeviceTokenRepository interface {
	Upsert(userID, token string) error
	Delete(userID, token string) error
}

type deviceTokenRepository struct {
	db *sql.DB
}

// NewDeviceTokenRepository creates a new device-token repository
func NewDeviceTokenRepository(db *sql.DB) DeviceTokenRepository {
	return &deviceTokenRepository{db: db}
}

// Upsert registers a device token for a user, replacing a previous row for
// the same token.
func (r *deviceTokenRepository) Upsert(userID, token string) error {
	query := `
		INSERT INTO user_device_tokens (user_id, token)
		VALUES ($1, $2)
		ON CONFLICT (user_id, token) DO UPDATE SET created_at = NOW()
	`
	if _, err := r.db.Exec(query, userID, token); err != nil {
		return fmt.Errorf("failed to store device token: %w", err)
	}
	return nil
}

// Delete removes a device token for a user. Deleting a token that is not
// registered is not an error.
func (r *deviceTokenRepository) Delete(userID, token string) error {
	query := `DELETE FROM user_device_tokens WHERE user_id = $1 AND token = $2`
	if _, err := r.db.Exec(query, userID, token); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	return nil
}
