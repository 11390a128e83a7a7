package booking

import "agendly/models"

// BookingService defines the interface for the booking workflow around the
// distribution engine.
type BookingService interface {
	// CreateAppointment picks an attendant for the requested slot and
	// persists the appointment.
	CreateAppointment(req models.BookingRequest) (*models.Appointment, error)
	// CancelAppointment transitions an appointment to cancelled, freeing its
	// slot for distribution.
	CancelAppointment(id string) error
	// ListByDate returns the appointments for a calendar date.
	ListByDate(date string) ([]models.Appointment, error)
	// PreviewAttendant runs selection without persisting anything, for
	// optimistic UI. The result is advisory; booking re-validates.
	PreviewAttendant(date, timeOfDay, apptType string) (*models.Attendant, error)
}
