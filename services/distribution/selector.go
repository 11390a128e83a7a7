package distribution

import (
	"fmt"
	"sync"

	appointmentRepo "agendly/database/repository/appointment"
	"agendly/models"
	"agendly/utils"

	"go.uber.org/zap"
)

// AttendantPool supplies the candidate attendants for a set of sectors. It is
// satisfied by the attendant service, which fronts the repository with a cache.
type AttendantPool interface {
	PoolBySectors(sectors []string) ([]models.Attendant, error)
}

// DistributionService selects an attendant for a requested slot.
type DistributionService interface {
	SelectAttendant(date, timeOfDay, apptType string) (*models.Attendant, error)
}

// SectorPolicy holds the sector sets eligible for automatic distribution.
// Upgrade appointments draw from a narrower pool than the general case.
type SectorPolicy struct {
	General []string
	Upgrade []string
}

// For returns the eligible sectors for the given appointment type.
func (p SectorPolicy) For(apptType string) []string {
	if apptType == models.TypeUpgrade && len(p.Upgrade) > 0 {
		return p.Upgrade
	}
	return p.General
}

// DefaultDistributionService implements DistributionService on top of the pure
// engine. It owns the two snapshot reads and nothing else; selection is a hint
// and the booking workflow re-validates before commit.
type DefaultDistributionService struct {
	Engine          *Engine
	Attendants      AttendantPool
	AppointmentRepo appointmentRepo.AppointmentRepository
	Sectors         SectorPolicy
}

// SelectAttendant fetches the sector-eligible pool and the day's appointment
// snapshot, then runs the engine pipeline. The two reads have no ordering
// dependency and are issued concurrently.
func (s *DefaultDistributionService) SelectAttendant(date, timeOfDay, apptType string) (*models.Attendant, error) {
	logger := utils.GetLogger()
	sectors := s.Sectors.For(apptType)

	var (
		wg           sync.WaitGroup
		pool         []models.Attendant
		appointments []models.Appointment
		poolErr      error
		apptErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pool, poolErr = s.Attendants.PoolBySectors(sectors)
	}()
	go func() {
		defer wg.Done()
		appointments, apptErr = s.AppointmentRepo.GetActiveByDate(date)
	}()
	wg.Wait()

	if poolErr != nil {
		return nil, fmt.Errorf("failed to fetch attendant pool: %w", poolErr)
	}
	if apptErr != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %s: %w", date, apptErr)
	}

	attendant, err := s.Engine.SelectAttendant(pool, date, timeOfDay, apptType, appointments)
	if err != nil {
		logger.Info("distribution: no attendant selected",
			zap.String("date", date),
			zap.String("time", timeOfDay),
			zap.String("type", apptType),
			zap.Error(err))
		return nil, err
	}
	logger.Debug("distribution: attendant selected",
		zap.String("attendantID", attendant.ID),
		zap.String("date", date),
		zap.String("time", timeOfDay))
	return attendant, nil
}
