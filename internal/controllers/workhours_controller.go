package controllers

import (
	"teamhours-be/internal/models"
	"teamhours-be/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkHoursController struct {
	workHours  service.WorkHoursService
	reportMail service.ReportMailService
}

func NewWorkHoursController(workHours service.WorkHoursService, reportMail service.ReportMailService) *WorkHoursController {
	return &WorkHoursController{
		workHours:  workHours,
		reportMail: reportMail,
	}
}

// Add handles POST /api/v1/add-work-hours
func (wc *WorkHoursController) Add(c *gin.Context) {
	var req models.AddWorkHoursRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	if _, err := wc.workHours.Add(c.Request.Context(), userID, &req); err != nil {
		respondServiceError(c, "WorkHoursController.Add", err, "Work Hours Not Found!")
		return
	}

	respondOK(c, "Work Hours Successfully Add!", []interface{}{})
}

// List handles POST /api/v1/work-hours
func (wc *WorkHoursController) List(c *gin.Context) {
	var req models.ListWorkHoursRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	workHours, err := wc.workHours.ListMonth(c.Request.Context(), userID, req.Month)
	if err != nil {
		respondServiceError(c, "WorkHoursController.List", err, "Work Hours Not Found!")
		return
	}

	respondOK(c, "Work Hours Successfully get!", gin.H{"workHours": workHours})
}

// EditSummary handles POST /api/v1/edit-work-hours-summary
func (wc *WorkHoursController) EditSummary(c *gin.Context) {
	var req models.EditWorkHoursSummaryRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	if _, _, ok := callerIdentity(c); !ok {
		return
	}

	workHour, err := wc.workHours.EditSummary(c.Request.Context(), req.ID, req.Summary)
	if err != nil {
		respondServiceError(c, "WorkHoursController.EditSummary", err, "Work Hours Not Found!")
		return
	}

	respondOK(c, "Work Hours Successfully Updated!", gin.H{"workHours": workHour})
}

// SendEmail handles POST /api/v1/send-work-hours-email
func (wc *WorkHoursController) SendEmail(c *gin.Context) {
	var req models.SendWorkHoursEmailRequest
	if err := c.ShouldBind(&req); err != nil {
		respondValidationError(c, err, req.ValidationMessages())
		return
	}

	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	result, err := wc.reportMail.SendWorkHoursReport(c.Request.Context(), userID, req.ID, req.Month, req.Summary)
	if err != nil {
		respondServiceError(c, "WorkHoursController.SendEmail", err, "Work Hours Not Found!")
		return
	}

	respondOK(c, "Work Hours sent Successfully!", result)
}
