package appointmentRepo

import "agendly/models"

// AppointmentRepository defines methods for appointment data access. The
// distribution engine itself never writes appointments; only the booking
// workflow and the expiry sweep do.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetActiveByDate returns the non-cancelled appointments for a calendar date.
	GetActiveByDate(date string) ([]models.Appointment, error)
	// ListByDate returns every appointment for a calendar date, any status.
	ListByDate(date string) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// UpdateStatus transitions an appointment to the given status.
	UpdateStatus(id, status string) error
	// ExpireStalePending marks pending appointments dated strictly before the
	// cutoff date as expired and returns how many were updated.
	ExpireStalePending(cutoffDate string) (int64, error)
}
