package models

// AddWorkHoursRequest represents the request body for logging work hours.
// End is required: the total duration is computed once at creation and an
// open-ended entry would have nothing to compute from.
type AddWorkHoursRequest struct {
	StartDateTime string  `form:"start_date_time" json:"start_date_time" binding:"required"`
	EndDateTime   string  `form:"end_date_time" json:"end_date_time" binding:"required"`
	Summary       *string `form:"summary" json:"summary,omitempty"`
	Timezone      string  `form:"timezone" json:"timezone" binding:"required"`
}

func (AddWorkHoursRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"StartDateTime.required": "Start Date Time is required.",
		"EndDateTime.required":   "End Date Time is required.",
		"Timezone.required":      "Timezone is required.",
	}
}

// ListWorkHoursRequest represents the month filter for the work-hours list.
// Month is "YYYY-MM"; omitted means the current calendar month.
type ListWorkHoursRequest struct {
	Month *string `form:"month" json:"month,omitempty"`
}

func (ListWorkHoursRequest) ValidationMessages() map[string]string {
	return map[string]string{}
}

// EditWorkHoursSummaryRequest represents the request body for editing an
// entry's summary. A missing summary clears it.
type EditWorkHoursSummaryRequest struct {
	ID      int64   `form:"id" json:"id" binding:"required"`
	Summary *string `form:"summary" json:"summary,omitempty"`
}

func (EditWorkHoursSummaryRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"ID.required": "Id is required",
	}
}

// SendWorkHoursEmailRequest represents the bulk report-email request. ID is
// a comma-separated list of recipient user ids.
type SendWorkHoursEmailRequest struct {
	ID      string  `form:"id" json:"id" binding:"required"`
	Month   string  `form:"month" json:"month" binding:"required"`
	Summary *string `form:"summary" json:"summary,omitempty"`
}

func (SendWorkHoursEmailRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"ID.required":    "Id is required",
		"Month.required": "Month is required",
	}
}
