package models

import "time"

// TimeWindow is a time-of-day pair in "HH:MM" 24h format. Start < End is
// validated by the management API before an attendant is stored.
type TimeWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Attendant represents a staff member who can receive auto-distributed
// appointments.
type Attendant struct {
	ID     string `bson:"id" json:"id"`         // Unique attendant identifier (e.g., UUID)
	Name   string `bson:"name" json:"name"`     // Display name
	Email  string `bson:"email" json:"email"`   // Work email
	Sector string `bson:"sector" json:"sector"` // Eligibility gate for automatic distribution
	Active bool   `bson:"active" json:"active"` // Inactive attendants never receive work

	// Schedule maps weekday keys ("mon".."sun") to the on-duty window for
	// that day. A missing or nil entry means day off.
	Schedule map[string]*TimeWindow `bson:"schedule" json:"schedule"`

	// Pauses maps weekday keys to breaks inside the on-duty window. The UI
	// creates at most two per day but any count is honored here.
	Pauses map[string][]TimeWindow `bson:"pauses" json:"pauses"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RankedAttendant holds attendant data along with the computed load used for
// distribution ordering.
type RankedAttendant struct {
	Attendant Attendant `json:"attendant"`
	Load      int       `json:"load"`
}
