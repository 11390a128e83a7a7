package models

import "time"

// Appointment statuses. Only StatusPending counts toward load and conflicts;
// every other status is inert for distribution.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusExpired   = "expired"
)

// Appointment types. TypeClosing and TypeUpgrade run 45 minutes; TypePersonal
// is self-booked time that blocks the slot but does not count toward load.
const (
	TypeConsultation = "consultation"
	TypeClosing      = "closing"
	TypeUpgrade      = "upgrade"
	TypePersonal     = "personal"
)

// Appointment represents a booked slot.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`                     // Unique appointment identifier (e.g., UUID)
	AttendantID string    `bson:"attendant_id" json:"attendant_id"` // Attendant who was assigned
	Date        string    `bson:"date" json:"date"`                 // Calendar date in "YYYY-MM-DD" format
	Time        string    `bson:"time" json:"time"`                 // Time of day in "HH:MM", on a 15-minute grid
	Type        string    `bson:"type" json:"type"`                 // Determines slot duration
	Status      string    `bson:"status" json:"status"`             // e.g., "pending", "cancelled"
	Customer    string    `bson:"customer" json:"customer"`         // Customer display name
	Contact     string    `bson:"contact,omitempty" json:"contact,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingRequest is the input accepted by the booking endpoint. The attendant
// is chosen by the distribution engine, never by the client.
type BookingRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Customer string `json:"customer" binding:"required"`
	Contact  string `json:"contact"`
	Notes    string `json:"notes"`
}
