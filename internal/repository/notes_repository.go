package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"teamhours-be/internal/entities"
)

// NotesRepository defines the interface for note database operations.
// Lookup, update and delete are scoped to the owning user: an id that
// exists but belongs to someone else behaves exactly like a missing id.
type NotesRepository interface {
	Create(userID, title string, description *string) (*entities.Note, error)
	ListByUser(userID string) ([]*entities.Note, error)
	FindByID(id int64, userID string) (*entities.Note, error)
	Update(id int64, userID, title string, description *string) (*entities.Note, error)
	Delete(id int64, userID string) (*entities.Note, error)
}

type notesRepository struct {
	db *sql.DB
}

// NewNotesRepository creates a new notes repository
func NewNotesRepository(db *sql.DB) NotesRepository {
	return &notesRepository{db: db}
}

const noteColumns = `id, user_id, title, description, created_at, updated_at`

func scanNote(row *sql.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Description,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan note: %w", err)
	}
	return &note, nil
}

// Create inserts a new note into the database
func (r *notesRepository) Create(userID, title string, description *string) (*entities.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + noteColumns

	note, err := scanNote(r.db.QueryRow(query, userID, title, description))
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

// ListByUser retrieves all notes for a specific user
func (r *notesRepository) ListByUser(userID string) ([]*entities.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*entities.Note
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Description,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// FindByID finds a note by id, scoped to its owner
func (r *notesRepository) FindByID(id int64, userID string) (*entities.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes
		WHERE id = $1 AND user_id = $2
	`
	return scanNote(r.db.QueryRow(query, id, userID))
}

// Update overwrites title and description of an owned note
func (r *notesRepository) Update(id int64, userID, title string, description *string) (*entities.Note, error) {
	query := `
		UPDATE notes
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING ` + noteColumns

	return scanNote(r.db.QueryRow(query, title, description, id, userID))
}

// Delete removes an owned note and returns the deleted record
func (r *notesRepository) Delete(id int64, userID string) (*entities.Note, error) {
	query := `
		DELETE FROM notes
		WHERE id = $1 AND user_id = $2
		RETURNING ` + noteColumns

	return scanNote(r.db.QueryRow(query, id, userID))
}
