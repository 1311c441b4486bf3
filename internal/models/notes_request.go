package models

// AddNoteRequest represents the request body for creating a note
type AddNoteRequest struct {
	Title       string  `form:"title" json:"title" binding:"required"`
	Description *string `form:"description" json:"description,omitempty"`
}

func (AddNoteRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"Title.required": "Title is required",
	}
}

// NoteIDRequest identifies a single note for details and delete
type NoteIDRequest struct {
	ID int64 `form:"id" json:"id" binding:"required"`
}

func (NoteIDRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"ID.required": "Note ID is required.",
	}
}

// EditNoteRequest represents the request body for editing a note
type EditNoteRequest struct {
	ID          int64   `form:"id" json:"id" binding:"required"`
	Title       string  `form:"title" json:"title" binding:"required"`
	Description *string `form:"description" json:"description,omitempty"`
}

func (EditNoteRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"ID.required":    "Note ID is required.",
		"Title.required": "Title is required.",
	}
}
