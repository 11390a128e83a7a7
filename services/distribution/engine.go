package distribution

import (
	"math/rand"
	"sync"
	"time"

	"agendly/models"
)

// Engine evaluates schedules, detects conflicts and ranks attendants by load.
// Every method operates on the snapshot passed by the caller; the only mutable
// piece is the injected random source used for tie-breaking.
type Engine struct {
	Durations DurationTable
	Location  *time.Location

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine pinned to the given business timezone. A nil rng
// gets a time-seeded source; tests inject a deterministic one.
func NewEngine(durations DurationTable, loc *time.Location, rng *rand.Rand) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{Durations: durations, Location: loc, rng: rng}
}

// SelectAttendant runs the full pipeline over the supplied snapshot: filter to
// active attendants on duty, rank by load, return the first candidate without
// a conflicting appointment. Failure is a business outcome, signaled by
// ErrNoAttendantOnDuty or ErrAllAttendantsBusy, never a panic.
func (e *Engine) SelectAttendant(pool []models.Attendant, date, timeOfDay, apptType string, appointments []models.Appointment) (*models.Attendant, error) {
	var onDuty []models.Attendant
	for _, att := range pool {
		if att.Active && e.IsWithinSchedule(att, date, timeOfDay) {
			onDuty = append(onDuty, att)
		}
	}
	if len(onDuty) == 0 {
		return nil, ErrNoAttendantOnDuty
	}

	for _, ranked := range e.RankByLoad(onDuty, date, appointments) {
		if !e.HasConflict(ranked.Attendant.ID, date, timeOfDay, apptType, appointments) {
			att := ranked.Attendant
			return &att, nil
		}
	}
	return nil, ErrAllAttendantsBusy
}
