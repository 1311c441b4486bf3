package entities

import "time"

// WorkHour represents a single logged work-hours entry in the database.
// TotalHours is computed once from StartTime/EndTime when the entry is
// created and is never recomputed afterwards.
type WorkHour struct {
	ID         int64      `json:"id"`
	UserID     string     `json:"user_id"` // UUID
	StartTime  time.Time  `json:"-"`
	EndTime    time.Time  `json:"-"`
	Summary    *string    `json:"summary,omitempty"`
	Timezone   string     `json:"timezone"`
	TotalHours string     `json:"total_hours"` // formatted "02h15min"
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"-"` // Pointer allows nil (soft delete marker)
}

// location resolves the entry's stored zone, falling back to UTC when the
// label no longer resolves on this host.
func (w *WorkHour) location() *time.Location {
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DisplayStart returns the start instant in the zone the entry was logged in.
func (w *WorkHour) DisplayStart() time.Time {
	return w.StartTime.In(w.location())
}

// DisplayEnd returns the end instant in the zone the entry was logged in.
func (w *WorkHour) DisplayEnd() time.Time {
	return w.EndTime.In(w.location())
}
