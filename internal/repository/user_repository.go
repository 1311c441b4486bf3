package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"teamhours-be/internal/entities"
)

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(accountID, firstName, lastName, countryCode, mobile string, email *string) (*entities.User, error)
	FindByID(id string) (*entities.User, error)
	FindByMobile(countryCode, mobile string) (*entities.User, error)
	ListActiveMobiles() ([]entities.MobileNumber, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, account_id, first_name, last_name, country_code, mobile, email, role, status, created_at, updated_at`

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.AccountID,
		&user.FirstName,
		&user.LastName,
		&user.CountryCode,
		&user.Mobile,
		&user.Email,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user into the database
func (r *userRepository) Create(accountID, firstName, lastName, countryCode, mobile string, email *string) (*entities.User, error) {
	query := `
		INSERT INTO users (account_id, first_name, last_name, country_code, mobile, email, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'User', 'Active')
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, accountID, firstName, lastName, countryCode, mobile, email))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(id string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND status = 'Active'
	`
	return scanUser(r.db.QueryRow(query, id))
}

// ListActiveMobiles returns the mobile numbers of every active end user,
// for the contact-discovery listing. Admin and deactivated accounts are
// excluded.
func (r *userRepository) ListActiveMobiles() ([]entities.MobileNumber, error) {
	query := `
		SELECT country_code, mobile
		FROM users
		WHERE role = 'User' AND status = 'Active'
		ORDER BY created_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mobile numbers: %w", err)
	}
	defer rows.Close()

	var numbers []entities.MobileNumber
	for rows.Next() {
		var n entities.MobileNumber
		if err := rows.Scan(&n.CountryCode, &n.Mobile); err != nil {
			return nil, fmt.Errorf("failed to scan mobile number: %w", err)
		}
		numbers = append(numbers, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mobile numbers: %w", err)
	}

	return numbers, nil
}

// FindByMobile finds a user by country code and mobile number
func (r *userRepository) FindByMobile(countryCode, mobile string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE country_code = $1 AND mobile = $2
	`
	return scanUser(r.db.QueryRow(query, countryCode, mobile))
}
