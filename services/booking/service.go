package booking

import (
	"fmt"
	"time"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/services/distribution"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Distributor     distribution.DistributionService
	Engine          *distribution.Engine
	AppointmentRepo appointmentRepo.AppointmentRepository
}

// CreateAppointment validates the slot request, selects an attendant and
// persists the appointment. Selection is only a hint: the conflict check runs
// again on a fresh snapshot right before the insert, and a lost race comes
// back as ErrSlotTaken rather than a double booking.
func (s *DefaultBookingService) CreateAppointment(req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()
	if err := validateSlotRequest(req); err != nil {
		return nil, err
	}

	attendant, err := s.Distributor.SelectAttendant(req.Date, req.Time, req.Type)
	if err != nil {
		return nil, err
	}

	// Commit-time recheck against a fresh snapshot.
	snapshot, err := s.AppointmentRepo.GetActiveByDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch appointments for %s: %w", req.Date, err)
	}
	if s.Engine.HasConflict(attendant.ID, req.Date, req.Time, req.Type, snapshot) {
		logger.Warn("booking: slot taken between selection and commit",
			zap.String("attendantID", attendant.ID),
			zap.String("date", req.Date),
			zap.String("time", req.Time))
		return nil, ErrSlotTaken
	}

	now := time.Now()
	appointment := &models.Appointment{
		ID:          uuid.New().String(),
		AttendantID: attendant.ID,
		Date:        req.Date,
		Time:        req.Time,
		Type:        req.Type,
		Status:      models.StatusPending,
		Customer:    req.Customer,
		Contact:     req.Contact,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.AppointmentRepo.Create(appointment); err != nil {
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	logger.Info("booking: appointment created",
		zap.String("appointmentID", appointment.ID),
		zap.String("attendantID", attendant.ID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.String("type", req.Type))
	return appointment, nil
}

func (s *DefaultBookingService) CancelAppointment(id string) error {
	return s.AppointmentRepo.UpdateStatus(id, models.StatusCancelled)
}

func (s *DefaultBookingService) ListByDate(date string) ([]models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, NewValidationError("date must be in YYYY-MM-DD format")
	}
	return s.AppointmentRepo.ListByDate(date)
}

func (s *DefaultBookingService) PreviewAttendant(date, timeOfDay, apptType string) (*models.Attendant, error) {
	return s.Distributor.SelectAttendant(date, timeOfDay, apptType)
}

// validateSlotRequest checks the slot fields the engine assumes well-formed:
// calendar date, "HH:MM" time on the 15-minute grid, non-empty type.
func validateSlotRequest(req models.BookingRequest) error {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return NewValidationError("date must be in YYYY-MM-DD format")
	}
	t, err := time.Parse("15:04", req.Time)
	if err != nil {
		return NewValidationError("time must be in HH:MM format")
	}
	if t.Minute()%15 != 0 {
		return NewValidationError("time must fall on the 15-minute grid")
	}
	if req.Type == "" {
		return NewValidationError("appointment type is required")
	}
	return nil
}
