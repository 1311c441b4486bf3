package service

import (
	"teamhours-be/internal/entities"
	"teamhours-be/internal/models"
	"teamhours-be/internal/repository"
)

// NotesService defines the interface for note business logic. All lookups
// are scoped to the requesting owner.
type NotesService interface {
	Add(userID string, req *models.AddNoteRequest) (*entities.Note, error)
	List(userID string) ([]*entities.Note, error)
	Details(id int64, userID string) (*entities.Note, error)
	Edit(userID string, req *models.EditNoteRequest) (*entities.Note, error)
	Delete(id int64, userID string) (*entities.Note, error)
}

type notesService struct {
	repo repository.NotesRepository
}

// NewNotesService creates a new notes service
func NewNotesService(repo repository.NotesRepository) NotesService {
	return &notesService{repo: repo}
}

func (s *notesService) Add(userID string, req *models.AddNoteRequest) (*entities.Note, error) {
	return s.repo.Create(userID, req.Title, req.Description)
}

func (s *notesService) List(userID string) ([]*entities.Note, error) {
	notes, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*entities.Note{}
	}
	return notes, nil
}

func (s *notesService) Details(id int64, userID string) (*entities.Note, error) {
	return s.repo.FindByID(id, userID)
}

func (s *notesService) Edit(userID string, req *models.EditNoteRequest) (*entities.Note, error) {
	return s.repo.Update(req.ID, userID, req.Title, req.Description)
}

func (s *notesService) Delete(id int64, userID string) (*entities.Note, error) {
	return s.repo.Delete(id, userID)
}
