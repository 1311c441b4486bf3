package controllers

import (
	"teamhours-be/internal/models"
	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
)

type NotesController struct {
	notes service.NotesService
}

func NewNotesController(notes service.NotesService) *NotesController {
	return &NotesController{notes: notes}
}

// Add handles POST /api/v1/add-note
func (nc *NotesController) Add(c *gin.Context) {
	var req models.AddNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	note, err := nc.notes.Add(userID, &req)
	if err != nil {
		respondServiceError(c, "NotesController.Add", err, "Note Not Found!")
		return
	}

	respondOK(c, "Note Successfully Add!", gin.H{"note": note})
}

// List handles POST /api/v1/note
func (nc *NotesController) List(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	notes, err := nc.notes.List(userID)
	if err != nil {
		respondServiceError(c, "NotesController.List", err, "Note Not Found!")
		return
	}

	respondOK(c, "Note get Successfully!", gin.H{"notes": notes})
}

// Details handles POST /api/v1/note-details
func (nc *NotesController) Details(c *gin.Context) {
	var req models.NoteIDRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	note, err := nc.notes.Details(req.ID, userID)
	if err != nil {
		respondServiceError(c, "NotesController.Details", err, "The specified Note does not exist.")
		return
	}

	respondOK(c, "Note Successfully get!", gin.H{"note": note})
}

// Edit handles POST /api/v1/edit-note
func (nc *NotesController) Edit(c *gin.Context) {
	var req models.EditNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	note, err := nc.notes.Edit(userID, &req)
	if err != nil {
		respondServiceError(c, "NotesController.Edit", err, "The specified Note does not exist.")
		return
	}

	respondOK(c, "Note Successfully Updated!", gin.H{"note": note})
}

// Delete handles POST /api/v1/delete-note
func (nc *NotesController) Delete(c *gin.Context) {
	var req models.NoteIDRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	note, err := nc.notes.Delete(req.ID, userID)
	if err != nil {
		respondServiceError(c, "NotesController.Delete", err, "The specified Note does not exist.")
		return
	}

	respondOK(c, "Note Successfully Deleted!", gin.H{"note": note})
}
