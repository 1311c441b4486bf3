package service_test

import (
	"testing"
	"time"

	"teamhours-be/internal/entities"
	"teamhours-be/internal/models"
	"teamhours-be/internal/repository"
	"teamhours-be/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotesRepo struct {
	nextID int64
	notes  []*entities.Note
}

func (f *fakeNotesRepo) Create(userID, title string, description *string) (*entities.Note, error) {
	f.nextID++
	n := &entities.Note{
		ID:          f.nextID,
		UserID:      userID,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeNotesRepo) ListByUser(userID string) ([]*entities.Note, error) {
	var out []*entities.Note
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotesRepo) FindByID(id int64, userID string) (*entities.Note, error) {
	for _, n := range f.notes {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeNotesRepo) Update(id int64, userID, title string, description *string) (*entities.Note, error) {
	n, err := f.FindByID(id, userID)
	if err != nil {
		return nil, err
	}
	n.Title = title
	n.Description = description
	return n, nil
}

func (f *fakeNotesRepo) Delete(id int64, userID string) (*entities.Note, error) {
	for i, n := range f.notes {
		if n.ID == id && n.UserID == userID {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return n, nil
		}
	}
	return nil, repository.ErrNotFound
}

func TestNotesRoundTrip(t *testing.T) {
	svc := service.NewNotesService(&fakeNotesRepo{})

	created, err := svc.Add("user-1", &models.AddNoteRequest{
		Title:       "Standup notes",
		Description: strptr("Discussed the release plan."),
	})
	require.NoError(t, err)

	got, err := svc.Details(created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Standup notes", got.Title)
	assert.Equal(t, "Discussed the release plan.", *got.Description)

	_, err = svc.Edit("user-1", &models.EditNoteRequest{
		ID:    created.ID,
		Title: "Standup notes (rev)",
	})
	require.NoError(t, err)

	got, err = svc.Details(created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Standup notes (rev)", got.Title)
	assert.Nil(t, got.Description)

	_, err = svc.Delete(created.ID, "user-1")
	require.NoError(t, err)

	_, err = svc.Details(created.ID, "user-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNotesOwnerScoping(t *testing.T) {
	svc := service.NewNotesService(&fakeNotesRepo{})

	created, err := svc.Add("user-1", &models.AddNoteRequest{Title: "mine"})
	require.NoError(t, err)

	// Another user sees NotFound for an id that exists but is not theirs.
	_, err = svc.Details(created.ID, "user-2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.Delete(created.ID, "user-2")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	notes, err := svc.List("user-2")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
