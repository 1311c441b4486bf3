package models

// WorkHourResponse is the display form of a work-hour entry. Start and end
// are formatted "2006-01-02 15:04:05"; the stored values are not mutated.
type WorkHourResponse struct {
	ID            int64   `json:"id"`
	StartDateTime string  `json:"start_date_time"`
	EndDateTime   string  `json:"end_date_time"`
	TotalHours    string  `json:"total_hours"`
	Summary       *string `json:"summary,omitempty"`
}

// AuthResponse is returned after successful registration
type AuthResponse struct {
	UserID    string  `json:"user_id"` // UUID
	AccountID string  `json:"account_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email,omitempty"`
	Token     string  `json:"token"` // JWT token
	TokenType string  `json:"token_type"`
}

// SendReportResponse reports per-recipient outcome counts for the bulk
// work-hours email.
type SendReportResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
