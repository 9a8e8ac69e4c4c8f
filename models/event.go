// event-app10/models/event.go

package models

// Candidate is a proposed practice slot. Dates are validated against the
// Gregorian calendar at create/edit time, so stored rows always format
// cleanly. Start and End are "HH:MM" local times of day.
type Candidate struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Gym   string `json:"gym"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Confirmed marks one candidate as the chosen event. At most one row per
// candidate, guarded by lookup-before-insert so a repeated confirm is a no-op.
type Confirmed struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CandidateID uint `gorm:"index" json:"candidate_id"`
}

// Attendance is one member's RSVP for a confirmed event. Status is always one
// of the canonical attend/absent/pending tokens. The composite unique index
// makes the registration upsert atomic per (event, name).
type Attendance struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	EventID uint   `gorm:"uniqueIndex:idx_attendance_event_name" json:"event_id"`
	Name    string `gorm:"uniqueIndex:idx_attendance_event_name;size:64" json:"name"`
	Status  string `json:"status"`
}
